package services

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/pllus/videotube/internal/models"
	"github.com/pllus/videotube/internal/repository"
	"github.com/pllus/videotube/utils"
)

const MsgInvalidCredentials = "Invalid credentials"

type UserStore interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	Users  UserStore
	Secret []byte
	TTL    time.Duration
	// Now is overridable in tests.
	Now func() time.Time
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,notblank,min=3,max=32"`
	Email    string `json:"email"    validate:"required,notblank,email"`
	Password string `json:"password" validate:"required,notblank,min=6,max=72"`
}

type LoginInput struct {
	Email    string `json:"email"    validate:"required,notblank"`
	Password string `json:"password" validate:"required,notblank"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	u, err := s.Users.Create(ctx, &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
	})
	if errors.Is(err, repository.ErrDuplicateUser) {
		return nil, utils.NewAPIError(http.StatusConflict, "User already exists")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Login returns a signed access token for a matching email/password pair.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, *models.User, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return "", nil, err
	}
	u, err := s.Users.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, utils.NewAPIError(http.StatusUnauthorized, MsgInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)); err != nil {
		return "", nil, utils.NewAPIError(http.StatusUnauthorized, MsgInvalidCredentials)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	tok, err := utils.GenerateToken(u.ID.Hex(), s.Secret, s.TTL, now())
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}
