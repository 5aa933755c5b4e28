package staff

import "time"

type Staff struct {
	ID             string
	Name           string
	NormalizedName string
	PINHash        *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasPIN reports whether the staff protected their identity with a PIN.
func (s Staff) HasPIN() bool {
	return s.PINHash != nil && *s.PINHash != ""
}
