package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskflow/internal/apperrors"
	"taskflow/internal/config"
	"taskflow/internal/models"
	"taskflow/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

const minPasswordLen = 6

var validate = validator.New()

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "invalid credentials")
	ErrDuplicateEmail     = apperrors.New(apperrors.CodeDuplicateEmail, "email already registered")
	ErrTokenMissing       = apperrors.New(apperrors.CodeTokenMissing, "token missing")
	ErrTokenMalformed     = apperrors.New(apperrors.CodeTokenMalformed, "token malformed")
	ErrTokenSignature     = apperrors.New(apperrors.CodeTokenSignature, "token signature invalid")
	ErrTokenExpired       = apperrors.New(apperrors.CodeTokenExpired, "token expired")
	ErrTokenInvalid       = apperrors.New(apperrors.CodeTokenInvalid, "token invalid")

	errInvalidEmail = apperrors.New(apperrors.CodeValidation, "a valid email is required")
)

// AuthService handles registration, login and token issuance/verification.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(users repository.Users, cfg config.AuthConfig) *AuthService {
	return &AuthService{
		users:      users,
		signingKey: []byte(cfg.SecretKey),
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
		now:        time.Now,
	}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      models.User
}

// Register validates input, hashes the password and creates a regular user.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (int, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	switch {
	case in.Name == "":
		return 0, apperrors.New(apperrors.CodeValidation, "nombre is required")
	case !validEmail(in.Email):
		return 0, errInvalidEmail
	case len(in.Password) < minPasswordLen:
		return 0, apperrors.New(apperrors.CodeValidation, fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	return s.createUser(ctx, in, false)
}

// EnsureAdmin creates the admin account if the email is not taken yet.
// It reports whether a new account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, in RegisterInput) (bool, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if !validEmail(in.Email) {
		return false, errInvalidEmail
	}
	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return false, apperrors.Wrap(apperrors.CodeInternal, "look up admin", err)
	}
	if existing != nil {
		return false, nil
	}
	if _, err := s.createUser(ctx, in, true); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			// created concurrently by another instance
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *AuthService) createUser(ctx context.Context, in RegisterInput, admin bool) (int, error) {
	hash, err := hashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeValidation, "invalid password", err)
	}
	id, err := s.users.Create(ctx, models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		IsAdmin:      admin,
		RegisteredAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, apperrors.Wrap(apperrors.CodeDuplicateEmail, ErrDuplicateEmail.Message, err)
		}
		return 0, apperrors.Wrap(apperrors.CodeInternal, "create user", err)
	}
	return id, nil
}

// Login verifies credentials and issues a token. A legacy SHA-256 digest that
// matches is replaced with a bcrypt hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeInternal, "look up user", err)
	}
	if u == nil {
		return Session{}, ErrInvalidCredentials
	}

	ok, legacy := verifyPassword(u.PasswordHash, password)
	if !ok {
		return Session{}, ErrInvalidCredentials
	}
	if legacy {
		if err := s.upgradeDigest(ctx, u, password); err != nil {
			return Session{}, err
		}
	}

	token, exp, err := s.issue(u.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp, User: *u}, nil
}

func (s *AuthService) upgradeDigest(ctx context.Context, u *models.User, password string) error {
	hash, err := hashPassword(password, s.bcryptCost)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, "rehash legacy digest", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, u.ID, hash); err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, "store upgraded digest", err)
	}
	u.PasswordHash = hash
	return nil
}

// IssueToken returns a signed token for userID valid for the configured TTL.
func (s *AuthService) IssueToken(userID int) (string, error) {
	token, _, err := s.issue(userID)
	return token, err
}

func (s *AuthService) issue(userID int) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(apperrors.CodeInternal, "sign token", err)
	}
	return signed, exp, nil
}

// ParseToken verifies signature and expiry and returns the user id. Failures
// are reported as one of the ErrToken* kinds.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	if strings.TrimSpace(accessToken) == "" {
		return 0, ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}

func classifyTokenError(err error) error {
	var kind *apperrors.Error
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		kind = ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		kind = ErrTokenSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		kind = ErrTokenExpired
	default:
		kind = ErrTokenInvalid
	}
	return apperrors.Wrap(kind.Code, kind.Message, err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	return email != "" && validate.Var(email, "email") == nil
}
