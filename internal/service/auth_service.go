package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"personal_blog/internal/models"
	"personal_blog/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

// Auth errors. ErrUserNotFound and ErrInvalidPassword stay internal-facing:
// handlers collapse both into one generic response so login failures do not
// reveal whether a handle exists.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService handles registration, login, and token parsing.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.Users, cfg Config) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		users:      users,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
	}
}

// SignUpParams is the registration payload after handler-level binding.
type SignUpParams struct {
	Name     string
	Handle   string
	Password string
	Photo    string
}

// SignUp hashes the password and creates a new user. A taken handle fails
// with ErrDuplicateHandle; the pre-check gives a clean error for the common
// case, the UNIQUE constraint settles concurrent registrations.
func (s *AuthService) SignUp(ctx context.Context, p SignUpParams) (models.User, error) {
	hash, err := hashPassword(p.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid password: %w", err)
	}

	existing, err := s.users.FindByHandle(ctx, p.Handle)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, ErrDuplicateHandle
	}

	u := models.User{
		Name:         p.Name,
		Handle:       p.Handle,
		PasswordHash: hash,
		Photo:        p.Photo,
	}
	id, err := s.users.Insert(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateHandle) {
			return models.User{}, ErrDuplicateHandle
		}
		return models.User{}, err
	}
	u.ID = id
	return u, nil
}

// Claims defines JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// GenerateToken validates credentials and returns a signed JWT.
func (s *AuthService) GenerateToken(ctx context.Context, handle, password string) (string, error) {
	u, err := s.users.FindByHandle(ctx, handle)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(u.ID)
}

// ParseToken parses a JWT and returns the embedded user id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// issueToken signs a time-bounded JWT for a user.
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
