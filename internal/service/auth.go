// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/najah-dev/campus-events/internal/model"
	"github.com/najah-dev/campus-events/internal/repository"
)

// ErrInvalidCredentials is returned when the email/password pair does not
// match a user. It deliberately does not say which half was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// emailPattern is a structural check, not RFC validation: something before
// an @, something after it containing a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address passes the structural check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidationError reports which form fields failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "please fix the highlighted fields"
}

// DemoEmail is the account created by the demo login shortcut.
const DemoEmail = "demo@najah.edu"

const demoPassword = "Demo123!"

// AuthService implements registration and login against the user directory.
type AuthService struct {
	users repository.UserStore
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repository.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register validates the request and appends a new user record with the
// password hashed at rest. Duplicate emails (case-insensitive) fail with
// repository.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Role = strings.TrimSpace(req.Role)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	fields := make(map[string]string)
	if len(req.Name) < 3 {
		fields["name"] = "name must be at least 3 characters"
	}
	role := model.Role(req.Role)
	if req.Role == "" {
		fields["role"] = "role is required"
	} else if !role.Valid() {
		fields["role"] = "unknown role"
	}
	if !emailPattern.MatchString(req.Email) {
		fields["email"] = "enter a valid email address"
	}
	if len(req.Password) < MinPasswordLength {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", MinPasswordLength)
	}
	if req.Confirm != req.Password {
		fields["confirm"] = "passwords do not match"
	}
	if !req.AcceptTerms {
		fields["accept_terms"] = "you must accept the terms"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Role:         role,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate returns the user matching the credentials, or
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EnsureDemoUser creates the demo account if it does not exist yet and
// returns it.
func (s *AuthService) EnsureDemoUser(ctx context.Context) (*model.User, error) {
	if user, err := s.users.GetByEmail(ctx, DemoEmail); err == nil {
		return user, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	user := &model.User{
		Name:         "Demo User",
		Role:         model.RoleStudent,
		Email:        DemoEmail,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race against another startup; the account is there now.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return s.users.GetByEmail(ctx, DemoEmail)
		}
		return nil, err
	}
	return user, nil
}

// strengthLabels index by PasswordStrength score.
var strengthLabels = []string{"—", "Weak", "Fair", "Good", "Strong", "Very strong"}

// PasswordStrength scores a password 0–5 and returns a human label. Purely
// advisory; the only hard rule is MinPasswordLength.
func PasswordStrength(p string) (int, string) {
	score := 0
	if len(p) >= 6 {
		score++
	}
	if strings.ContainsFunc(p, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		score++
	}
	if strings.ContainsFunc(p, func(r rune) bool { return r >= '0' && r <= '9' }) {
		score++
	}
	if strings.ContainsFunc(p, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9')
	}) {
		score++
	}
	if len(p) >= 10 {
		score++
	}
	if score > 5 {
		score = 5
	}
	return score, strengthLabels[score]
}
