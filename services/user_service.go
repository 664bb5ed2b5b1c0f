package services

import (
	"context"

	"github.com/google/uuid"

	"booking-backend/domain"
	"booking-backend/dto"
	"booking-backend/repositories"
)

type UserService struct {
	Users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{Users: users}
}

// CreateUser builds the user with a fresh id and stores it. Validation errors
// come straight from the entity.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	user, err := domain.NewUser(uuid.NewString(), req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.Users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindUserByID returns nil, nil when the user does not exist.
func (s *UserService) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.Users.FindByID(ctx, id)
}
