package staff

import "errors"

// Staff domain errors
var (
	ErrStaffNotFound = errors.New("staff not found")
	ErrNameTaken     = errors.New("staff name is already registered")
	ErrInvalidPIN    = errors.New("invalid PIN")
	ErrPINRequired   = errors.New("this staff name is PIN protected")
)
