package domain

// ValidationError is an input fault: a missing field, an out-of-range value,
// a date range in the wrong order. The message is returned to API clients verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError is returned by operations that need an entity to exist.
// Plain lookups return nil instead.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// ConflictError reports a request that is well formed but clashes with the
// current state: an occupied slot or an illegal status transition.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// ErrSlotUnavailable is returned when the requested nights are already taken
// by a confirmed booking, either by the service check or by the store.
var ErrSlotUnavailable = NewConflictError("A propriedade não está disponível para as datas selecionadas")

// ErrConcurrentUpdate is returned when the store gave up on a write because
// another request held the same rows. The client may retry.
var ErrConcurrentUpdate = NewConflictError("A reserva foi alterada por outra operação, tente novamente")
