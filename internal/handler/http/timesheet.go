package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/config"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/timesheet"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	DailyReport(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	reportConfig     config.ReportConfig
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService, reportConfig config.ReportConfig) TimesheetHandler {
	return &TimesheetHandlerImpl{
		timesheetService: timesheetService,
		reportConfig:     reportConfig,
	}
}

// MonthlyReport implements TimesheetHandler.
func (h *TimesheetHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "year must be an integer Jalali year", nil)
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		response.BadRequest(w, "month must be an integer between 1 and 12", nil)
		return
	}

	req := timesheet.MonthlyReportRequest{
		Year:          year,
		Month:         month,
		EntryStandard: h.standardOr(r, "entry_standard", h.reportConfig.DefaultEntryStandard),
		ExitStandard:  h.standardOr(r, "exit_standard", h.reportConfig.DefaultExitStandard),
	}

	report, err := h.timesheetService.MonthlyReport(r.Context(), req)
	if err != nil {
		slog.Error("MonthlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// DailyReport implements TimesheetHandler.
func (h *TimesheetHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")
	dayStr := r.URL.Query().Get("day")

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "year must be an integer Jalali year", nil)
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		response.BadRequest(w, "month must be an integer between 1 and 12", nil)
		return
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		response.BadRequest(w, "day must be an integer day of month", nil)
		return
	}

	req := timesheet.DailyReportRequest{
		Year:          year,
		Month:         month,
		Day:           day,
		EntryStandard: h.standardOr(r, "entry_standard", h.reportConfig.DefaultEntryStandard),
		ExitStandard:  h.standardOr(r, "exit_standard", h.reportConfig.DefaultExitStandard),
	}

	report, err := h.timesheetService.DailyReport(r.Context(), req)
	if err != nil {
		slog.Error("DailyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// standardOr reads an optional HH:MM query override, falling back to the
// office-wide default from configuration.
func (h *TimesheetHandlerImpl) standardOr(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}
