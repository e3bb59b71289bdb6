package validators

// Field names accepted by the validators of this package.
const (
	FieldUserName = "user_name"
	FieldPasscode = "passcode"
	FieldUserID   = "user_id"
	FieldCarID    = "car_id"
)
