package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffgate/attendance-gate-go/internal/config"
	"github.com/staffgate/attendance-gate-go/internal/domain/history"
	"github.com/staffgate/attendance-gate-go/internal/pkg/formapi"
	"github.com/staffgate/attendance-gate-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedContext(t *testing.T, name string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := tokenAuth.Encode(map[string]interface{}{
		"staff_id": "staff-1",
		"name":     name,
	})
	require.NoError(t, err)

	token, err := tokenAuth.Decode(tokenString)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newService(t *testing.T, rows []map[string]string) (history.HistoryService, func()) {
	t.Helper()

	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(rows))
	}))

	svc := NewHistoryService(formapi.NewClient(
		config.SinkConfig{URL: "http://unused.invalid"},
		config.HistoryConfig{URL: source.URL},
	))

	return svc, source.Close
}

func TestListMine_FiltersByNameAndMonth(t *testing.T) {
	svc, closeSource := newService(t, []map[string]string{
		{"Name": "Jane Tan", "Date": "2025-04-26", "Check-In Time": "09:00:00", "Remark": "Used GPS"},
		{"Name": "jane tan", "Date": "26/04/2025", "Check-In Time": "08:45:00", "Remark": "No GPS"},
		{"Name": "Jane Tan", "Date": "2025-05-02", "Check-In Time": "09:10:00"},
		{"Name": "Someone Else", "Date": "2025-04-26", "Check-In Time": "09:00:00"},
	})
	defer closeSource()

	ctx := authedContext(t, "Jane Tan")

	resp, err := svc.ListMine(ctx, history.Filter{Month: 4, Year: 2025})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 2)
	for _, row := range resp.Rows {
		assert.Equal(t, "2025-04-26", row.Date)
		assert.Equal(t, "jane tan", validator.NormalizeName(row.Name))
	}
}

func TestListMine_SkipsUnreadableDates(t *testing.T) {
	svc, closeSource := newService(t, []map[string]string{
		{"Name": "Jane Tan", "Date": "not a date", "Check-In Time": "09:00:00"},
		{"Name": "Jane Tan", "Date": "2025-04-26", "Check-In Time": "09:00:00"},
	})
	defer closeSource()

	ctx := authedContext(t, "Jane Tan")

	resp, err := svc.ListMine(ctx, history.Filter{Month: 4, Year: 2025})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
}

func TestListMine_InvalidFilter(t *testing.T) {
	svc, closeSource := newService(t, nil)
	defer closeSource()

	ctx := authedContext(t, "Jane Tan")

	_, err := svc.ListMine(ctx, history.Filter{Month: 13, Year: 2025})
	assert.Error(t, err)
}

func TestListMine_SourceUnavailable(t *testing.T) {
	svc, closeSource := newService(t, nil)
	closeSource()

	ctx := authedContext(t, "Jane Tan")

	_, err := svc.ListMine(ctx, history.Filter{Month: 4, Year: 2025})
	assert.ErrorIs(t, err, history.ErrSourceUnavailable)
}
