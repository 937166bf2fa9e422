package http

import (
	"net/http"
	"strconv"

	"grandstay-backend/internal/service"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Financial(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.FinancialSummary(r.Context(), roleFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) RoomStatus(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.RoomStatusSummary(r.Context(), roleFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	series, err := h.reports.DailyOccupancy(r.Context(), roleFrom(r), int32(days))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}
