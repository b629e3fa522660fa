package domain

import "strings"

// EntityQuote names the quote entity in errors and logs.
const EntityQuote = "quote"

// Field names as they appear in requests, responses and validation errors.
const (
	FieldCategory = "category"
	FieldQuote    = "quote"
	FieldAuthor   = "author"
	FieldID       = "id"
)

// Quote is the single persisted entity of the quotebook.
// A Quote returned by the store always satisfies the invariants checked by
// NewQuoteDraft: non-empty fields and a normalized category.
type Quote struct {
	// ID is assigned by the store on creation and never changes.
	ID string

	// Category is the lowercase, trimmed grouping label.
	Category string

	// Text is the quotation itself, stored verbatim.
	Text string

	// Author is who said or wrote the quote, stored verbatim.
	Author string
}

// QuoteDraft is a validated, normalized quote that has not been persisted yet.
type QuoteDraft struct {
	Category string
	Text     string
	Author   string
}

// QuotePatch is a partial update. Nil fields are left untouched.
type QuotePatch struct {
	Category *string
	Text     *string
	Author   *string
}

// NormalizeCategory returns the stored form of a category label.
// Writes and category-scoped reads must both go through it.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// NewQuoteDraft validates raw input and returns a draft ready to be stored.
// The category is normalized; text and author are kept exactly as given.
func NewQuoteDraft(category, text, author string) (QuoteDraft, error) {
	draft := QuoteDraft{
		Category: NormalizeCategory(category),
		Text:     text,
		Author:   author,
	}

	if err := requireText(FieldCategory, draft.Category); err != nil {
		return QuoteDraft{}, err
	}

	if err := requireText(FieldQuote, draft.Text); err != nil {
		return QuoteDraft{}, err
	}

	if err := requireText(FieldAuthor, draft.Author); err != nil {
		return QuoteDraft{}, err
	}

	return draft, nil
}

// IsEmpty reports whether the patch carries no fields at all.
func (p QuotePatch) IsEmpty() bool {
	return p.Category == nil && p.Text == nil && p.Author == nil
}

// Normalize validates every supplied field and returns a patch whose category,
// if present, is in stored form.
func (p QuotePatch) Normalize() (QuotePatch, error) {
	if p.IsEmpty() {
		return QuotePatch{}, NewValidationError("", "at least one of category, quote or author is required")
	}

	out := QuotePatch{Text: p.Text, Author: p.Author}

	if p.Category != nil {
		category := NormalizeCategory(*p.Category)
		if err := requireText(FieldCategory, category); err != nil {
			return QuotePatch{}, err
		}

		out.Category = &category
	}

	if p.Text != nil {
		if err := requireText(FieldQuote, *p.Text); err != nil {
			return QuotePatch{}, err
		}
	}

	if p.Author != nil {
		if err := requireText(FieldAuthor, *p.Author); err != nil {
			return QuotePatch{}, err
		}
	}

	return out, nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "must not be empty")
	}

	return nil
}
