package formapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/staffgate/attendance-gate-go/internal/config"
)

// Client talks to the external form provider: the record sink (write) and
// the history endpoint (read). Field identifiers on the sink side are
// opaque and come from configuration.
type Client struct {
	httpClient *http.Client
	sinkURL    string
	fieldMap   map[string]string
	historyURL string
}

// NewClient creates a form provider client from configuration
func NewClient(sink config.SinkConfig, history config.HistoryConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		sinkURL:    sink.URL,
		fieldMap:   sink.FieldMap,
		historyURL: history.URL,
	}
}

// TransportError distinguishes "request threw" from every other outcome;
// the sink integration deliberately never inspects response content.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("form provider %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
