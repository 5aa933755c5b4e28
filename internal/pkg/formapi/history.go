package formapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// HistoryRow is one raw row from the history endpoint. Column names are
// fixed by the provider; the date format varies between rows.
type HistoryRow struct {
	Name           string `json:"Name"`
	Date           string `json:"Date"`
	CheckInTime    string `json:"Check-In Time"`
	CheckOutTime   string `json:"Check-Out Time"`
	TotalWorkHours string `json:"Total Work Hours"`
	WorkMinutes    string `json:"Work in Minutes"`
	Remark         string `json:"Remark"`
	Location       string `json:"Location"`
}

// FetchHistory retrieves all rows from the history endpoint.
func (c *Client) FetchHistory(ctx context.Context) ([]HistoryRow, error) {
	if c.historyURL == "" {
		return nil, fmt.Errorf("history endpoint not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.historyURL, nil)
	if err != nil {
		return nil, &TransportError{Op: "history", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "history", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("history endpoint returned status %d", resp.StatusCode)
	}

	var rows []HistoryRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode history rows: %w", err)
	}

	return rows, nil
}
