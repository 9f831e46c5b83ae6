package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/tehran"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarTestRouter(now time.Time) *chi.Mux {
	handler := &CalendarHandlerImpl{
		clock: tehran.Tehran,
		now:   func() time.Time { return now },
	}

	r := chi.NewRouter()
	r.Get("/calendar/today", handler.Today)
	r.Get("/calendar/jalali/{year}/{month}", handler.MonthInfo)
	r.Post("/calendar/convert", handler.Convert)
	return r
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.True(t, body.Success)
	return body.Data
}

func TestCalendarToday(t *testing.T) {
	t.Parallel()
	// 22:00 UTC is already the next Tehran calendar day.
	now := time.Date(2024, 3, 19, 22, 0, 0, 0, time.UTC)
	router := newCalendarTestRouter(now)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar/today", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "1403/01/01", data["jalali_date"])
	assert.Equal(t, "۱۴۰۳/۰۱/۰۱", data["jalali_display"])
	assert.Equal(t, "2024-03-20", data["gregorian_date"])
	assert.Equal(t, "فروردین", data["month_name"])
}

func TestCalendarMonthInfo(t *testing.T) {
	t.Parallel()
	router := newCalendarTestRouter(time.Now())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar/jalali/1403/12", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, float64(30), data["days"])
	assert.Equal(t, true, data["leap_year"])
	assert.Equal(t, "اسفند", data["month_name"])
	assert.Equal(t, "2025-02-19", data["gregorian_first"])
	assert.Equal(t, "2025-03-20", data["gregorian_last"])
}

func TestCalendarMonthInfoInvalid(t *testing.T) {
	t.Parallel()
	router := newCalendarTestRouter(time.Now())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar/jalali/1403/13", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendarConvert(t *testing.T) {
	t.Parallel()
	router := newCalendarTestRouter(time.Now())

	body, _ := json.Marshal(map[string]int{"year": 1403, "month": 1, "day": 1})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calendar/convert", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "2024-03-20", data["gregorian_date"])
	assert.Equal(t, "2024-03-19T20:30:00Z", data["day_start_utc"])
	assert.Equal(t, "2024-03-20T20:30:00Z", data["day_end_utc"])
}

func TestCalendarConvertInvalidDay(t *testing.T) {
	t.Parallel()
	router := newCalendarTestRouter(time.Now())

	// 1402 is a common year, so Esfand 30 does not exist.
	body, _ := json.Marshal(map[string]int{"year": 1402, "month": 12, "day": 30})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calendar/convert", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
