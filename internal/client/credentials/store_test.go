package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/mbs-dev/blogctl/internal/client/models"
	"github.com/mbs-dev/blogctl/internal/client/repositories/localstore"
)

var testKeys = Keys{Token: "tk", User: "usr", RefreshToken: "rtk"}

func setupStore(t *testing.T) (*Store, localstore.Repository) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE local_store (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)

	repo := localstore.NewSQLiteRepository(db)
	return New(repo, "test-secret", testKeys), repo
}

func strptr(s string) *string { return &s }

func TestTokenRoundTrip(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, strptr("jwt-value")))

	got, err := s.GetToken(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "jwt-value", *got)
}

func TestGetToken_UntouchedStoreReturnsNil(t *testing.T) {
	s, _ := setupStore(t)

	got, err := s.GetToken(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetTokenNil_RemovesEntry(t *testing.T) {
	s, repo := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, strptr("jwt-value")))
	require.NoError(t, s.SetToken(ctx, nil))

	got, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	raw, err := repo.Get(ctx, testKeys.Token)
	require.NoError(t, err)
	assert.Nil(t, raw, "nil write must remove the record, not encrypt an empty value")
}

func TestStoredValueIsEncrypted(t *testing.T) {
	s, repo := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, strptr("jwt-value")))

	raw, err := repo.Get(ctx, testKeys.Token)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "jwt-value")
}

func TestGetToken_CorruptRecordReadsAsNil(t *testing.T) {
	s, repo := setupStore(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, testKeys.Token, []byte("garbage")))

	got, err := s.GetToken(ctx)
	require.NoError(t, err, "storage corruption must never propagate")
	assert.Nil(t, got)
}

func TestUserRoundTrip(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	user := &models.User{ID: 7, Email: "a@b.com", FullName: "A B", Roles: []models.Role{models.RoleAuthor}}
	require.NoError(t, s.SetUser(ctx, user))

	got, err := s.GetUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, got)
}

func TestClearAll_RemovesEveryManagedKey(t *testing.T) {
	s, repo := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, strptr("jwt")))
	require.NoError(t, s.SetUser(ctx, &models.User{ID: 1}))
	require.NoError(t, repo.Set(ctx, testKeys.RefreshToken, []byte("stale")))

	require.NoError(t, s.ClearAll(ctx))

	for _, key := range []string{testKeys.Token, testKeys.User, testKeys.RefreshToken} {
		raw, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, raw, "key %s should be gone", key)
	}
}
