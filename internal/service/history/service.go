package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffgate/attendance-gate-go/internal/domain/history"
	"github.com/staffgate/attendance-gate-go/internal/pkg/formapi"
	"github.com/staffgate/attendance-gate-go/internal/pkg/validator"
)

type HistoryServiceImpl struct {
	formClient *formapi.Client
}

func NewHistoryService(formClient *formapi.Client) history.HistoryService {
	return &HistoryServiceImpl{formClient: formClient}
}

// ListMine implements history.HistoryService.
func (h *HistoryServiceImpl) ListMine(ctx context.Context, filter history.Filter) (history.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return history.ListResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return history.ListResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	name, ok := claims["name"].(string)
	if !ok || name == "" {
		return history.ListResponse{}, fmt.Errorf("name claim is missing or invalid")
	}
	normalized := validator.NormalizeName(name)

	raw, err := h.formClient.FetchHistory(ctx)
	if err != nil {
		var transportErr *formapi.TransportError
		if errors.As(err, &transportErr) {
			return history.ListResponse{}, history.ErrSourceUnavailable
		}
		return history.ListResponse{}, err
	}

	rows := make([]history.Row, 0)
	for _, r := range raw {
		if validator.NormalizeName(r.Name) != normalized {
			continue
		}

		// Date formats vary between rows; rows whose date cannot be read
		// at all are skipped rather than failing the whole listing.
		parsed, err := validator.ParseFlexibleDate(r.Date)
		if err != nil {
			slog.Debug("Skipping history row with unreadable date", "date", r.Date)
			continue
		}

		if int(parsed.Month()) != filter.Month || parsed.Year() != filter.Year {
			continue
		}

		rows = append(rows, history.Row{
			Name:           r.Name,
			Date:           parsed.Format("2006-01-02"),
			CheckInTime:    r.CheckInTime,
			CheckOutTime:   r.CheckOutTime,
			TotalWorkHours: r.TotalWorkHours,
			WorkMinutes:    r.WorkMinutes,
			Remark:         r.Remark,
			Location:       r.Location,
		})
	}

	return history.ListResponse{
		Month: filter.Month,
		Year:  filter.Year,
		Rows:  rows,
	}, nil
}
