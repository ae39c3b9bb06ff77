package repository

import (
	"itemsapi/internal/server"
)

// Repositories is the container for all repository instances, built
// once at startup and handed to the service layer.
type Repositories struct {
	Items ItemRepository
}

// NewRepositories constructs the repository container against the
// server's database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Items: NewPostgresItemRepository(s.DB),
	}
}
