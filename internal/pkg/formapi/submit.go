package formapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/staffgate/attendance-gate-go/internal/domain/attendance"
)

// Logical field names the sink mapping may bind. A logical field with no
// mapping entry is not sent, mirroring the provider's silent-drop
// behavior for unknown identifiers.
const (
	FieldName         = "name"
	FieldAction       = "action"
	FieldRemark       = "remark"
	FieldLocation     = "location"
	FieldDate         = "date"
	FieldCheckInTime  = "check_in_time"
	FieldCheckOutTime = "check_out_time"
	FieldWorkMinutes  = "work_minutes"
)

// SubmitRecord delivers an attendance record to the sink, fire-and-forget:
// the response body and status are discarded unread, and only a transport
// failure is reported.
func (c *Client) SubmitRecord(ctx context.Context, record attendance.Record) error {
	values := url.Values{}
	c.setMapped(values, FieldName, record.StaffName)
	c.setMapped(values, FieldAction, string(record.Action))
	c.setMapped(values, FieldRemark, string(record.Remark))
	c.setMapped(values, FieldLocation, record.Location)
	c.setMapped(values, FieldDate, record.Date)
	c.setMapped(values, FieldCheckInTime, record.CheckInTime)
	c.setMapped(values, FieldCheckOutTime, record.CheckOutTime)
	if record.WorkMinutes != nil {
		c.setMapped(values, FieldWorkMinutes, strconv.Itoa(*record.WorkMinutes))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sinkURL,
		strings.NewReader(values.Encode()))
	if err != nil {
		return &TransportError{Op: "submit", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "submit", Err: err}
	}
	defer resp.Body.Close()

	// Response content is ignored; drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	slog.Debug("Attendance record dispatched", "action", record.Action, "status", resp.StatusCode)
	return nil
}

func (c *Client) setMapped(values url.Values, logical, value string) {
	external, ok := c.fieldMap[logical]
	if !ok {
		return
	}
	values.Set(external, value)
}

// ValidateFieldMap logs any unbound logical field once at startup; a
// mismatch would otherwise drop data silently since responses go unread.
func (c *Client) ValidateFieldMap() {
	for _, logical := range []string{
		FieldName, FieldAction, FieldRemark, FieldLocation,
		FieldDate, FieldCheckInTime, FieldCheckOutTime, FieldWorkMinutes,
	} {
		if _, ok := c.fieldMap[logical]; !ok {
			slog.Warn("Sink field mapping missing; field will not be sent", "field", logical)
		}
	}
}
