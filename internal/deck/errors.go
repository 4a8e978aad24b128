package deck

import "errors"

// Errors returned by Collection and Composer. They are wrapped with
// context, so compare with errors.Is.
var (
	ErrNotFound     = errors.New("deck: not found")
	ErrOutOfRange   = errors.New("deck: slot out of range")
	ErrNoActiveEdit = errors.New("deck: no slot edit in progress")
	ErrUnknownCard  = errors.New("deck: card not in catalog")
)
