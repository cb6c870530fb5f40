package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hridaya423/bookify/pkg/models"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *fakeUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	return err == nil, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func newTestAuthService(repo *fakeUserRepo) AuthService {
	return NewAuthService(repo, "test-secret", "bookify-test", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, models.RegisterRequest{
		Username: "reader_one",
		Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash, "hash must not leak out of the service")

	resp, err := svc.Login(ctx, models.LoginRequest{
		Username: "reader_one",
		Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "reader_one", resp.User.Username)
	assert.Greater(t, resp.ExpiresIn, 0)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "ab", Password: "correcthorse"})
	assert.Error(t, err)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "reader_one", Password: "short"})
	assert.Error(t, err)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "bad name!", Password: "correcthorse"})
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "reader_one", Password: "correcthorse"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "reader_one", Password: "correcthorse"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "reader_one", Password: "correcthorse"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "reader_one", Password: "wrongpassword"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "nobody", Password: "correcthorse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "reader_one", Password: "correcthorse"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, models.LoginRequest{Username: "reader_one", Password: "correcthorse"})
	require.NoError(t, err)

	user, err := svc.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "reader_one", user.Username)

	_, err = svc.ValidateToken(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
