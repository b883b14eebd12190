package store

import (
	"errors"
	"fmt"
)

// ErrDuplicateTitle is matched by errors.Is on a *DuplicateTitleError.
var ErrDuplicateTitle = errors.New("task title already registered")

// DuplicateTitleError rejects an add whose title is already in the list.
type DuplicateTitleError struct {
	Title      string
	ExistingID int64
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("%s: %q (id %d)", ErrDuplicateTitle, e.Title, e.ExistingID)
}

func (e *DuplicateTitleError) Is(target error) bool { return target == ErrDuplicateTitle }
