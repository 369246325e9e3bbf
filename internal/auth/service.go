package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	userdomain "github.com/BruksfildServices01/barber-finder/internal/domain/user"
	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/models"
	"github.com/BruksfildServices01/barber-finder/internal/validators"
)

// invalidCredentials is shared by the unknown-email and wrong-password paths
// so responses never reveal which one failed.
func invalidCredentials() error {
	return httperr.ErrUnauthorized("invalid_credentials", "Invalid credentials.")
}

type Service struct {
	users      userdomain.Repository
	secret     string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewService(users userdomain.Repository, secret string, tokenTTLHours, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = 12
	}
	if tokenTTLHours == 0 {
		tokenTTLHours = 168
	}
	return &Service{
		users:      users,
		secret:     secret,
		tokenTTL:   time.Duration(tokenTTLHours) * time.Hour,
		bcryptCost: bcryptCost,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmailValid(email) {
		return nil, "", httperr.ErrValidation("invalid_email", "Invalid email format.")
	}

	role := in.Role
	if role == "" {
		role = models.RoleClient
	}
	if role != models.RoleClient && role != models.RoleBarber {
		return nil, "", httperr.ErrValidation("invalid_role", "Role must be either client or barber.")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", httperr.ErrConflict("email_already_registered", "User with this email already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     in.FullName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := GenerateToken(user, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindActiveByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", invalidCredentials()
	}

	token, err := GenerateToken(user, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ValidateToken verifies the signature and expiry, then re-fetches the user so
// role and active-state changes take effect on the next request.
func (s *Service) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := ParseToken(token, s.secret)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindActiveByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.ErrUnauthorized("invalid_token", "Invalid token.")
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.ErrNotFound("user_not_found", "User not found.")
	}
	return user, nil
}

// UpdateProfile only touches non-sensitive fields; email, role, password and
// active flag have their own flows.
func (s *Service) UpdateProfile(ctx context.Context, id, fullName string) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return httperr.ErrNotFound("user_not_found", "User not found.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return httperr.ErrUnauthorized("invalid_credentials", "Current password is incorrect.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashed)
	return s.users.Update(ctx, user)
}
