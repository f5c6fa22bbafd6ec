package convert

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput  = errors.New("datetime must be timezone-aware")
	ErrInvalidFormat = errors.New("invalid datetime format")
	ErrUnknownZone   = errors.New("unknown time zone")
)

// ItemError reports the failure of a single element of a batch.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
