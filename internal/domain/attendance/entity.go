package attendance

import "time"

// Action is the attendance event recorded on a submit.
type Action string

const (
	ActionCheckIn  Action = "Check-In"
	ActionCheckOut Action = "Check-Out"
)

// Remark tags whether the location was verified at submission time.
type Remark string

const (
	RemarkUsedGPS Remark = "Used GPS"
	RemarkNoGPS   Remark = "No GPS"
)

// NoLocation is the location string recorded when no verified coordinate
// accompanies a submission.
const NoLocation = "No Location"

// State is the per-staff persisted attendance state. It is loaded from and
// written back to the key-value store; the state machine itself only ever
// sees this value.
type State struct {
	StaffName        string
	LastActionDate   string // "2006-01-02", empty when unset
	CheckInTime      string // "15:04:05", empty when unset
	CheckOutTime     string // "15:04:05", empty when unset
	PreviousLocation string // accumulated location strings
}

// Phase is the derived position in the check-in/check-out cycle.
type Phase string

const (
	NeedsCheckIn  Phase = "needs_check_in"
	NeedsCheckOut Phase = "needs_check_out"
)

// Record is a completed attendance event handed to the external sink.
type Record struct {
	StaffName    string
	Action       Action
	Remark       Remark
	Location     string
	Date         string
	CheckInTime  string
	CheckOutTime string
	WorkMinutes  *int
}

// Submission is the local dispatch-log entry for a Record.
type Submission struct {
	ID            string
	StaffID       string
	StaffName     string
	Action        string
	Remark        string
	Location      string
	Date          string
	CheckInTime   string
	CheckOutTime  string
	WorkMinutes   *int
	Dispatched    bool
	DispatchError *string
	CreatedAt     time.Time
}
