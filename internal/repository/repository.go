package repository

import (
	"github.com/prperemyshlev/localmaps-api/pkg/database"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User     UserRepository
	Session  SessionRepository
	Favorite FavoriteRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Postgres) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Session:  NewSessionRepository(db),
		Favorite: NewFavoriteRepository(db),
	}
}
