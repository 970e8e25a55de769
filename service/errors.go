package service

import "errors"

var (
	// ErrInvalidWeapon is returned when a supplied short code is not in
	// the catalog; the caller renders a rejection without mutating state
	ErrInvalidWeapon = errors.New("weapon not in catalog")

	// ErrEmptyCandidateSet is returned when a draw is requested over an
	// empty candidate set; callers are expected to check preconditions
	// (such as "no favorites") and render a dedicated message instead
	ErrEmptyCandidateSet = errors.New("no candidate weapons to draw from")
)
