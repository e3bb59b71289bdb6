package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUserName = errors.New("user name is required")
	ErrEmptyPasscode = errors.New("passcode is required")
	ErrLongPasscode  = errors.New("passcode is too long")
	ErrInvalidUserID = errors.New("invalid user ID")
	ErrInvalidCarID  = errors.New("invalid car ID")
)
