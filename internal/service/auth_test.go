package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/najah-dev/campus-events/internal/model"
	"github.com/najah-dev/campus-events/internal/repository"
)

func validRegistration() model.RegisterRequest {
	return model.RegisterRequest{
		Name:        "Lina Hasan",
		Role:        "student",
		Email:       "lina@najah.edu",
		Password:    "Sunset42!",
		Confirm:     "Sunset42!",
		AcceptTerms: true,
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewAuthService(repository.NewMemoryUserStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "lina@najah.edu", user.Email)
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "Sunset42!", user.PasswordHash, "password must be hashed at rest")

	got, err := svc.Authenticate(ctx, "Lina@Najah.EDU", "Sunset42!")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "lina@najah.edu", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := NewAuthService(repository.NewMemoryUserStore())

	req := validRegistration()
	req.Email = "  MiXeD@Najah.Edu "
	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "mixed@najah.edu", user.Email)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := NewAuthService(repository.NewMemoryUserStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.Email = "LINA@NAJAH.EDU"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(repository.NewMemoryUserStore())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*model.RegisterRequest)
		field  string
	}{
		{"short name", func(r *model.RegisterRequest) { r.Name = "Al" }, "name"},
		{"missing role", func(r *model.RegisterRequest) { r.Role = "" }, "role"},
		{"unknown role", func(r *model.RegisterRequest) { r.Role = "wizard" }, "role"},
		{"bad email", func(r *model.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *model.RegisterRequest) { r.Password = "abc"; r.Confirm = "abc" }, "password"},
		{"mismatched confirm", func(r *model.RegisterRequest) { r.Confirm = "different" }, "confirm"},
		{"terms not accepted", func(r *model.RegisterRequest) { r.AcceptTerms = false }, "accept_terms"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistration()
			tc.mutate(&req)

			_, err := svc.Register(ctx, req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := NewAuthService(repository.NewMemoryUserStore())

	_, err := svc.Authenticate(context.Background(), "nobody@najah.edu", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureDemoUser(t *testing.T) {
	svc := NewAuthService(repository.NewMemoryUserStore())
	ctx := context.Background()

	first, err := svc.EnsureDemoUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, DemoEmail, first.Email)

	second, err := svc.EnsureDemoUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "demo user must only be created once")

	// The demo account logs in with the documented password.
	_, err = svc.Authenticate(ctx, DemoEmail, "Demo123!")
	assert.NoError(t, err)
}

func TestPasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		score    int
	}{
		{"", 0},
		{"abc", 0},
		{"abcdef", 1},
		{"Abcdef", 2},
		{"Abcde1", 3},
		{"Abcd1!", 4},
		{"Abcdefgh1!", 5},
	}
	for _, tc := range cases {
		score, label := PasswordStrength(tc.password)
		assert.Equal(t, tc.score, score, "password %q", tc.password)
		assert.Equal(t, strengthLabels[tc.score], label)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("someone@najah.edu"))
	assert.True(t, ValidEmail("  padded@najah.edu  "))
	assert.False(t, ValidEmail("someone@najah"))
	assert.False(t, ValidEmail("someone"))
	assert.False(t, ValidEmail("some one@najah.edu"))
	assert.False(t, ValidEmail(""))
}
