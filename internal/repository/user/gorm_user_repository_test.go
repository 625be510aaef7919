// File: internal/repository/user/gorm_user_repository_test.go
package user

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nkarimof/go-dialogue/internal/domain"
)

func newTestRepo(t *testing.T) UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return NewGormUserRepository(db)
}

func TestUpsertByGoogleID_CreatesOnFirstLogin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	u, err := repo.UpsertByGoogleID(ctx, "gid-1", "a@example.com", "Alice", "pic-1")
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.Equal(t, "gid-1", u.GoogleID)
	require.Equal(t, "a@example.com", u.Email)
}

func TestUpsertByGoogleID_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.UpsertByGoogleID(ctx, "gid-1", "a@example.com", "Alice", "pic-1")
	require.NoError(t, err)

	second, err := repo.UpsertByGoogleID(ctx, "gid-1", "a@example.com", "Alice Updated", "pic-2")
	require.NoError(t, err)

	// Same row, refreshed profile fields.
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Alice Updated", second.Name)
	require.Equal(t, "pic-2", second.Picture)

	stored, err := repo.FindByGoogleID(ctx, "gid-1")
	require.NoError(t, err)
	require.Equal(t, first.ID, stored.ID)
	require.Equal(t, "Alice Updated", stored.Name)
}

func TestUpsertByGoogleID_DistinctExternalIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := repo.UpsertByGoogleID(ctx, "gid-a", "a@example.com", "A", "")
	require.NoError(t, err)
	b, err := repo.UpsertByGoogleID(ctx, "gid-b", "b@example.com", "B", "")
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpsertByGoogleID_RejectsMissingFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.UpsertByGoogleID(ctx, "", "a@example.com", "A", "")
	require.Error(t, err)
	_, err = repo.UpsertByGoogleID(ctx, "gid-1", "", "A", "")
	require.Error(t, err)
}
