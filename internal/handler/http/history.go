package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/staffgate/attendance-gate-go/internal/domain/history"
	"github.com/staffgate/attendance-gate-go/internal/handler/http/response"
	"github.com/staffgate/attendance-gate-go/internal/pkg/export"
)

type HistoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type historyHandlerImpl struct {
	historyService history.HistoryService
}

func NewHistoryHandler(historyService history.HistoryService) HistoryHandler {
	return &historyHandlerImpl{
		historyService: historyService,
	}
}

// filterFromQuery reads month and year, defaulting to the current month.
func filterFromQuery(r *http.Request) history.Filter {
	now := time.Now()
	filter := history.Filter{
		Month: int(now.Month()),
		Year:  now.Year(),
	}

	if v := r.URL.Query().Get("month"); v != "" {
		if month, err := strconv.Atoi(v); err == nil {
			filter.Month = month
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.Year = year
		}
	}

	return filter
}

// List implements HistoryHandler.
func (h *historyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.historyService.ListMine(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements HistoryHandler.
func (h *historyHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	result, err := h.historyService.ListMine(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.xlsx", filter.Year, filter.Month)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	sheetName := fmt.Sprintf("%04d-%02d", filter.Year, filter.Month)
	if err := export.WriteHistoryXLSX(w, sheetName, result.Rows); err != nil {
		// Headers are already out; all we can do is log.
		slog.Error("Failed to write history export", "error", err)
	}
}
