package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRecordNotFound = errors.New("leave record not found")
)
