package formapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/staffgate/attendance-gate-go/internal/config"
	"github.com/staffgate/attendance-gate-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFieldMap() map[string]string {
	return map[string]string{
		FieldName:     "entry.1001",
		FieldAction:   "entry.1002",
		FieldRemark:   "entry.1003",
		FieldLocation: "entry.1004",
		FieldDate:     "entry.1005",
	}
}

func newTestClient(sinkURL, historyURL string) *Client {
	return NewClient(
		config.SinkConfig{URL: sinkURL, FieldMap: testFieldMap()},
		config.HistoryConfig{URL: historyURL},
	)
}

func TestSubmitRecord_PostsMappedFields(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	err := client.SubmitRecord(context.Background(), attendance.Record{
		StaffName: "Jane Lim",
		Action:    attendance.ActionCheckIn,
		Remark:    attendance.RemarkUsedGPS,
		Location:  "Latitude: 3.1925444, Longitude: 101.6110718",
		Date:      "2025-04-26",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Lim", got.Get("entry.1001"))
	assert.Equal(t, "Check-In", got.Get("entry.1002"))
	assert.Equal(t, "Used GPS", got.Get("entry.1003"))
	// Unmapped logical fields are silently not sent.
	assert.NotContains(t, got, "check_in_time")
}

func TestSubmitRecord_IgnoresResponseStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong form id", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	err := client.SubmitRecord(context.Background(), attendance.Record{
		StaffName: "Jane Lim",
		Action:    attendance.ActionCheckOut,
	})

	// Dispatched is dispatched; only a transport failure is an error.
	assert.NoError(t, err)
}

func TestSubmitRecord_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(server.URL, "")
	err := client.SubmitRecord(context.Background(), attendance.Record{StaffName: "Jane Lim"})

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "submit", transportErr.Op)
}

func TestFetchHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"Name":"Jane Lim","Date":"2025-04-26","Check-In Time":"09:00:00","Check-Out Time":"18:00:00","Total Work Hours":"8.00","Work in Minutes":"480","Remark":"Used GPS","Location":"Latitude: 3.19, Longitude: 101.61"},
			{"Name":"Adam Tan","Date":"26/04/2025","Remark":"No GPS","Location":"No Location"}
		]`))
	}))
	defer server.Close()

	client := newTestClient("", server.URL)
	rows, err := client.FetchHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane Lim", rows[0].Name)
	assert.Equal(t, "26/04/2025", rows[1].Date)
}

func TestFetchHistory_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient("", server.URL)
	_, err := client.FetchHistory(context.Background())
	assert.Error(t, err)
}
