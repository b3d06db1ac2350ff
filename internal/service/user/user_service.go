package user

import (
	"context"
	"errors"

	"github.com/explorex/reservations/internal/auth"
	"github.com/explorex/reservations/internal/domain"
	"github.com/explorex/reservations/internal/repository"
	"github.com/explorex/reservations/internal/validation"
)

type UserUseCase interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input *validation.UserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input *validation.UserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// Create stores the user with a bcrypt hash in place of the plaintext
// password. The returned record still carries the hash for internal use;
// the JSON boundary never serializes it.
func (s *UserService) Create(ctx context.Context, input *validation.UserInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: input.Username,
		Password: hash,
		Email:    input.Email,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, input *validation.UserInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       id,
		Username: input.Username,
		Password: hash,
		Email:    input.Email,
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// Login authenticates by email and password. Unknown email and wrong
// password both come back as ErrAuthFailed; the stored hash is stripped
// from the returned record.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAuthFailed
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, domain.ErrAuthFailed
	}

	user.Password = ""
	return user, nil
}

var _ UserUseCase = (*UserService)(nil)
