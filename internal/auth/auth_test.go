package auth

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/projectmap/internal/model"
	"github.com/sells-group/projectmap/internal/store"
)

func userStoreWith(t *testing.T, users []model.User) *store.UserStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	data, err := json.Marshal(users)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return store.NewUserStore(path)
}

func TestAuthenticateSuccess(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	users := userStoreWith(t, []model.User{
		{Email: "admin@example.com", Password: hash},
	})

	err = Authenticate(context.Background(), users, "admin@example.com", "s3cret")
	assert.NoError(t, err)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	users := userStoreWith(t, []model.User{
		{Email: "admin@example.com", Password: hash},
	})

	err = Authenticate(context.Background(), users, "admin@example.com", "wrong")
	assert.True(t, eris.Is(err, ErrInvalidCredentials))
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	users := userStoreWith(t, []model.User{
		{Email: "admin@example.com", Password: "$2a$10$whatever"},
	})

	err := Authenticate(context.Background(), users, "nobody@example.com", "s3cret")
	assert.True(t, eris.Is(err, ErrInvalidCredentials))
}

func TestAuthenticateEmailCaseSensitive(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	users := userStoreWith(t, []model.User{
		{Email: "admin@example.com", Password: hash},
	})

	err = Authenticate(context.Background(), users, "ADMIN@example.com", "s3cret")
	assert.True(t, eris.Is(err, ErrInvalidCredentials))
}

func TestAuthenticateUnreadableStore(t *testing.T) {
	users := store.NewUserStore(filepath.Join(t.TempDir(), "missing.json"))

	err := Authenticate(context.Background(), users, "admin@example.com", "s3cret")
	require.Error(t, err)
	assert.False(t, eris.Is(err, ErrInvalidCredentials))
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.Contains(t, hash, "$2a$")
}
