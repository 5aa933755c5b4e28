package history

import "context"

// HistoryService defines read access to the external attendance sheet
type HistoryService interface {
	// ListMine fetches and filters rows for the authenticated staff.
	ListMine(ctx context.Context, filter Filter) (ListResponse, error)
}
