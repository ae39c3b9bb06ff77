package service

import (
	"itemsapi/internal/repository"
	"itemsapi/internal/server"
)

// Services is the container for all business services, built once at
// startup and shared by every request.
type Services struct {
	Items *ItemService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Items: NewItemService(repos.Items),
	}, nil
}
