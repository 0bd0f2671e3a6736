package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stayease/booking-api/internal/core/domain"
	"github.com/stayease/booking-api/internal/core/ports"
)

// UserService implements registration, login and the self-read endpoint.
type UserService struct {
	users    ports.UserRepository
	bookings ports.BookingRepository
	tokens   *TokenProvider
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, bookings ports.BookingRepository, tokens *TokenProvider, logger zerolog.Logger) *UserService {
	return &UserService{users: users, bookings: bookings, tokens: tokens, logger: logger}
}

// Register creates an account and returns a signed token for it.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	if input.Email == "" || input.Password == "" {
		return "", domain.ErrInvalidCredentials
	}

	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")

	return s.tokens.Issue(created.Email, created.Role)
}

// Login verifies credentials and returns a signed token. Both an unknown
// email and a wrong password yield ErrInvalidCredentials so the response
// never reveals which one failed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("email", email).Msg("login rejected")
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Email, user.Role)
}

// GetByID returns the user view when requesterEmail matches the target
// user's email, ErrForbidden otherwise.
func (s *UserService) GetByID(ctx context.Context, id, requesterEmail string) (*ports.UserView, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Email != requesterEmail {
		return nil, domain.ErrForbidden
	}

	bookings, err := s.bookings.FindByUserEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	return &ports.UserView{
		ID:         user.ID,
		Name:       user.FullName(),
		Email:      user.Email,
		BookingIDs: ids,
	}, nil
}
