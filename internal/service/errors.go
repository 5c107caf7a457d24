package service

import "errors"

var (
	// ErrNotFound covers both a genuinely missing resource and an
	// ownership mismatch. The two are deliberately indistinguishable so
	// responses never leak whether a resource exists under another owner.
	ErrNotFound = errors.New("resource not found")

	// ErrProfileMissing means a valid identity has no profile row. This is
	// an inconsistency state, distinct from an admin denial.
	ErrProfileMissing = errors.New("no profile for authenticated user")

	// ErrInvalidRole is returned for role values outside {user, admin}.
	ErrInvalidRole = errors.New("invalid role")
)
