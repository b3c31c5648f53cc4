package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "quicktransit/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/get-trip-price/", GetTripPrice)
	return r
}

func TestGetTripPriceInvalidInput(t *testing.T) {
	r := priceRouter()

	for _, query := range []string{
		"",
		"origin_id=abc&destination_id=2",
		"origin_id=1",
		"origin_id=0&destination_id=2",
		"origin_id=-1&destination_id=2",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/get-trip-price/?"+query, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
		assert.JSONEq(t, `{"error": "Invalid input"}`, w.Body.String(), "query %q", query)
	}
}

func TestGetTripPriceNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("SELECT price FROM route_prices").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"price"}))

	r := priceRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/get-trip-price/?origin_id=1&destination_id=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Price not found"}`, w.Body.String())
}

func TestGetTripPriceFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("SELECT price FROM route_prices").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(1450.0))

	r := priceRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/get-trip-price/?origin_id=1&destination_id=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"price": 1450}`, w.Body.String())
}
