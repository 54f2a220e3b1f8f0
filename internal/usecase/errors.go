package usecase

import "errors"

// Sentinel errors the handlers translate into HTTP statuses with errors.Is.
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrAlreadyExists = errors.New("already exists")
)

// isOwner is the single ownership predicate applied before every mutating
// operation on user-owned content; reads never go through it.
func isOwner(actorID, ownerID string) bool {
	return actorID != "" && actorID == ownerID
}
