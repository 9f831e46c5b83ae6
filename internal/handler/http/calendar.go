package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/timesheet"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/handler/http/response"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/jalali"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/tehran"
)

type CalendarHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	MonthInfo(w http.ResponseWriter, r *http.Request)
	Convert(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	clock tehran.Clock
	now   func() time.Time
}

func NewCalendarHandler(clock tehran.Clock) CalendarHandler {
	return &CalendarHandlerImpl{clock: clock, now: time.Now}
}

type todayResponse struct {
	JalaliDate    string `json:"jalali_date"`
	JalaliDisplay string `json:"jalali_display"`
	GregorianDate string `json:"gregorian_date"`
	MonthName     string `json:"month_name"`
}

// Today implements CalendarHandler. "Today" is the current Tehran wall
// clock day, not the UTC day.
func (c *CalendarHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	greg := c.clock.LocalDate(c.now())

	jal, err := jalali.ToJalali(greg)
	if err != nil {
		slog.Error("Today conversion error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, todayResponse{
		JalaliDate:    jal.String(),
		JalaliDisplay: timesheet.PersianDigits(jal.String()),
		GregorianDate: greg.String(),
		MonthName:     jalali.MonthName(jal.Month),
	})
}

type monthInfoResponse struct {
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	MonthName      string `json:"month_name"`
	Days           int    `json:"days"`
	LeapYear       bool   `json:"leap_year"`
	GregorianFirst string `json:"gregorian_first"`
	GregorianLast  string `json:"gregorian_last"`
}

// MonthInfo implements CalendarHandler. It describes one Jalali month so a
// date picker can render it without calendar logic of its own.
func (c *CalendarHandlerImpl) MonthInfo(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be an integer", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "month must be an integer", nil)
		return
	}

	days := jalali.DaysInJalaliMonth(year, month)
	if year < 1 || days == 0 {
		response.HandleError(w, jalali.ErrInvalidDate)
		return
	}

	first, err := jalali.ToGregorian(jalali.JalaliDate{Year: year, Month: month, Day: 1})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	last, err := jalali.ToGregorian(jalali.JalaliDate{Year: year, Month: month, Day: days})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthInfoResponse{
		Year:           year,
		Month:          month,
		MonthName:      jalali.MonthName(month),
		Days:           days,
		LeapYear:       jalali.IsJalaliLeapYear(year),
		GregorianFirst: first.String(),
		GregorianLast:  last.String(),
	})
}

type convertRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type convertResponse struct {
	JalaliDate    string `json:"jalali_date"`
	GregorianDate string `json:"gregorian_date"`
	DayStartUTC   string `json:"day_start_utc"`
	DayEndUTC     string `json:"day_end_utc"`
}

// Convert implements CalendarHandler. It turns a Jalali day from a date
// picker into the Gregorian date and half-open UTC window used by storage
// filters.
func (c *CalendarHandlerImpl) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Convert decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	jal := jalali.JalaliDate{Year: req.Year, Month: req.Month, Day: req.Day}
	greg, err := jalali.ToGregorian(jal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start, err := c.clock.Instant(greg, 0, 0)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	end := start.Add(24 * time.Hour)

	response.Success(w, convertResponse{
		JalaliDate:    jal.String(),
		GregorianDate: greg.String(),
		DayStartUTC:   start.UTC().Format(time.RFC3339),
		DayEndUTC:     end.UTC().Format(time.RFC3339),
	})
}
