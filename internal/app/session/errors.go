package session

import "errors"

// ErrAlreadyCommitted is returned when adding actions to, or committing, a
// session that has already been committed.
var ErrAlreadyCommitted = errors.New("session already committed")
