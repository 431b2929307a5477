package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Common repository errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUser is returned when the username or email is already taken
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrDuplicateSession is returned when a generated session token collides with an existing one
	ErrDuplicateSession = errors.New("session token already exists")

	// ErrDuplicateFavorite is returned when the user already saved the place
	ErrDuplicateFavorite = errors.New("place already in favorites")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
