package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
	"github.com/clubhub-app/clubhub/internal/domain/utils/validator"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	GetWithPagination(ctx context.Context, limit, offset int, order string) ([]entity.User, error)
	Count(ctx context.Context) (int64, error)
}

type UserService struct {
	storage UserStorage

	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUserService(storage UserStorage, jwtSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		storage:   storage,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// SignUp creates an account and returns it with a fresh token.
func (s *UserService) SignUp(ctx context.Context, email, firstName, lastName, password string) (*entity.User, string, error) {
	if !validator.Email(email) {
		return nil, "", fmt.Errorf("%w: invalid email", errorz.ErrValidation)
	}
	if !validator.Name(firstName) || !validator.Name(lastName) {
		return nil, "", fmt.Errorf("%w: first and last name are required", errorz.ErrValidation)
	}
	if !validator.Password(password) {
		return nil, "", fmt.Errorf("%w: password must be at least 8 characters", errorz.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.storage.Create(ctx, &entity.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns a bearer token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := s.storage.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", errorz.ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", errorz.ErrNotFound
	}
	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.storage.Get(ctx, id)
}

// UpdateProfile updates name and the external profile links.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update entity.User) (*entity.User, error) {
	user, err := s.storage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !validator.Name(update.FirstName) || !validator.Name(update.LastName) {
		return nil, fmt.Errorf("%w: first and last name are required", errorz.ErrValidation)
	}
	if !validator.StravaURL(update.StravaURL) {
		return nil, fmt.Errorf("%w: invalid Strava profile URL", errorz.ErrValidation)
	}
	if !validator.TrailforksURL(update.TrailforksURL) {
		return nil, fmt.Errorf("%w: invalid TrailForks profile URL", errorz.ErrValidation)
	}
	if !validator.ProfileURL(update.OutsideURL, "") {
		return nil, fmt.Errorf("%w: invalid Outside profile URL", errorz.ErrValidation)
	}
	if !validator.ProfileURL(update.AthlinksURL, "") {
		return nil, fmt.Errorf("%w: invalid Athlinks profile URL", errorz.ErrValidation)
	}

	user.FirstName = update.FirstName
	user.LastName = update.LastName
	user.StravaURL = update.StravaURL
	user.TrailforksURL = update.TrailforksURL
	user.OutsideURL = update.OutsideURL
	user.AthlinksURL = update.AthlinksURL
	return s.storage.Update(ctx, user)
}

// Delete removes the account. Owned clubs, their events and
// registrations, and the user's memberships all go with it. Self-service
// or admin only.
func (s *UserService) Delete(ctx context.Context, actorID, userID string) error {
	if actorID != userID {
		actor, err := s.storage.Get(ctx, actorID)
		if err != nil {
			return err
		}
		if !actor.Admin {
			return errorz.ErrForbidden
		}
	}
	return s.storage.Delete(ctx, userID)
}

func (s *UserService) GetWithPagination(ctx context.Context, limit, offset int, order string) ([]entity.User, error) {
	return s.storage.GetWithPagination(ctx, limit, offset, order)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.storage.Count(ctx)
}

// ParseToken validates a bearer token and returns the subject user id.
func (s *UserService) ParseToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errorz.ErrForbidden
	}
	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errorz.ErrForbidden
	}
	return subject, nil
}

func (s *UserService) issueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})
	return token.SignedString(s.jwtSecret)
}
