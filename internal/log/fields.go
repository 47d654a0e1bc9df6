package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldComponent = "component"
	FieldSessionID = "session_id"
	FieldLaunchID  = "launch_id"
	FieldRequestID = "request_id"

	// Media fields
	FieldPath    = "path"
	FieldAccount = "account"
	FieldMime    = "mime"

	// Playback fields
	FieldToken      = "token"
	FieldGeneration = "generation"
	FieldPosition   = "position_ms"
	FieldCode       = "code"
	FieldExtra      = "extra"

	// State fields
	FieldOldState = "old_state"
	FieldNewState = "new_state"
)
