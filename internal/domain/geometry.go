package domain

import "math"

// CircleMetrics holds the derived measurements of a circle.
type CircleMetrics struct {
	Area          float64
	Circumference float64
}

// RectangleMetrics holds the derived measurements of a rectangle.
type RectangleMetrics struct {
	Area      float64
	Perimeter float64
}

// PowerResult is base raised to exponent, plus the square root of base when requested.
type PowerResult struct {
	Result float64
	Root   *float64
}

// Circle computes area and circumference for radius r.
func Circle(r float64) (CircleMetrics, error) {
	if err := requireNonNegative("r", r); err != nil {
		return CircleMetrics{}, err
	}

	m := CircleMetrics{
		Area:          math.Pi * r * r,
		Circumference: 2 * math.Pi * r,
	}

	if err := requireFiniteResult(m.Area, m.Circumference); err != nil {
		return CircleMetrics{}, err
	}

	return m, nil
}

// Rectangle computes area and perimeter for the given sides.
func Rectangle(width, height float64) (RectangleMetrics, error) {
	if err := requireNonNegative("width", width); err != nil {
		return RectangleMetrics{}, err
	}

	if err := requireNonNegative("height", height); err != nil {
		return RectangleMetrics{}, err
	}

	m := RectangleMetrics{
		Area:      width * height,
		Perimeter: 2 * (width + height),
	}

	if err := requireFiniteResult(m.Area, m.Perimeter); err != nil {
		return RectangleMetrics{}, err
	}

	return m, nil
}

// Power computes base^exponent. When withRoot is set the square root of base
// is included, which requires a non-negative base.
func Power(base, exponent float64, withRoot bool) (PowerResult, error) {
	if err := requireFinite("base", base); err != nil {
		return PowerResult{}, err
	}

	if err := requireFinite("exponent", exponent); err != nil {
		return PowerResult{}, err
	}

	if withRoot && base < 0 {
		return PowerResult{}, NewValidationError("base", "square root requires a non-negative base")
	}

	result := math.Pow(base, exponent)
	if err := requireFiniteResult(result); err != nil {
		return PowerResult{}, err
	}

	out := PowerResult{Result: result}

	if withRoot {
		root := math.Sqrt(base)
		out.Root = &root
	}

	return out, nil
}

// requireFiniteResult rejects results JSON cannot carry.
func requireFiniteResult(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValidationError("", "result is not a finite number")
		}
	}

	return nil
}

func requireFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewValidationError(field, "must be a finite number")
	}

	return nil
}

func requireNonNegative(field string, v float64) error {
	if err := requireFinite(field, v); err != nil {
		return err
	}

	if v < 0 {
		return NewValidationError(field, "must not be negative")
	}

	return nil
}
