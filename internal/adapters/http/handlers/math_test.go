package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/dto"
)

func setupMathRouter() *gin.Engine {
	engine := gin.New()
	NewMathHandler().RegisterMathRoutes(engine)

	return engine
}

func TestMathHandler_Circle(t *testing.T) {
	engine := setupMathRouter()

	w := doRequest(engine, http.MethodGet, "/math/circle/2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CircleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, math.Pi*4, resp.Area, 1e-9)
	assert.InDelta(t, math.Pi*4, resp.Circumference, 1e-9)
}

func TestMathHandler_Rectangle(t *testing.T) {
	engine := setupMathRouter()

	w := doRequest(engine, http.MethodGet, "/math/rectangle/3/4.5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"area":13.5,"perimeter":15}`, w.Body.String())
}

func TestMathHandler_Power(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "integer power", path: "/math/power/2/10", expectedStatus: http.StatusOK, expectedBody: `{"result":1024}`},
		{name: "with root", path: "/math/power/9/2?root=true", expectedStatus: http.StatusOK, expectedBody: `{"result":81,"root":3}`},
		{name: "root false", path: "/math/power/9/2?root=false", expectedStatus: http.StatusOK, expectedBody: `{"result":81}`},
		{name: "root flag other than true is ignored", path: "/math/power/9/2?root=yes", expectedStatus: http.StatusOK, expectedBody: `{"result":81}`},
		{name: "root ignored for negative base", path: "/math/power/-4/2?root=maybe", expectedStatus: http.StatusOK, expectedBody: `{"result":16}`},
		{name: "negative base without root", path: "/math/power/-4/2", expectedStatus: http.StatusOK, expectedBody: `{"result":16}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(setupMathRouter(), http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestMathHandler_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		field string
	}{
		{name: "non-numeric radius", path: "/math/circle/abc", field: "r"},
		{name: "trailing garbage", path: "/math/circle/12abc", field: "r"},
		{name: "NaN radius", path: "/math/circle/NaN", field: "r"},
		{name: "infinite radius", path: "/math/circle/Inf", field: "r"},
		{name: "negative radius", path: "/math/circle/-1", field: "r"},
		{name: "non-numeric height", path: "/math/rectangle/3/x", field: "height"},
		{name: "negative width", path: "/math/rectangle/-3/4", field: "width"},
		{name: "non-numeric exponent", path: "/math/power/2/ten", field: "exponent"},
		{name: "root of negative base", path: "/math/power/-4/2?root=true", field: "base"},
		{name: "overflow", path: "/math/power/10/1000"},
		{name: "circle overflow", path: "/math/circle/1e200"},
		{name: "rectangle overflow", path: "/math/rectangle/1e200/1e200"},
		{name: "rectangle perimeter overflow", path: "/math/rectangle/1e308/1e308"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(setupMathRouter(), http.MethodGet, tt.path, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)

			resp := decodeError(t, w)
			if tt.field != "" {
				assert.Contains(t, resp.Error.Details, tt.field)
			}
		})
	}
}
