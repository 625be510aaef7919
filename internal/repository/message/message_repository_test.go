// File: internal/repository/message/message_repository_test.go
package message

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nkarimof/go-dialogue/internal/domain"
)

func newTestRepo(t *testing.T) MessageRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Message{}))
	return NewMessageRepository(db)
}

func TestCreateAndFindByChatID_CreationOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	contents := []string{"one", "two", "three"}
	for i, c := range contents {
		role := domain.MessageRoleUser
		if i%2 == 1 {
			role = domain.MessageRoleAssistant
		}
		_, err := repo.Create(ctx, &domain.Message{ChatID: 1, Role: role, Content: c})
		require.NoError(t, err)
	}
	// A message in another chat must not leak in.
	_, err := repo.Create(ctx, &domain.Message{ChatID: 2, Role: domain.MessageRoleUser, Content: "elsewhere"})
	require.NoError(t, err)

	messages, err := repo.FindByChatID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i, m := range messages {
		require.Equal(t, contents[i], m.Content)
	}

	count, err := repo.CountByChatID(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		message *domain.Message
	}{
		{"missing chat id", &domain.Message{Role: domain.MessageRoleUser, Content: "x"}},
		{"bad role", &domain.Message{ChatID: 1, Role: "system", Content: "x"}},
		{"empty content", &domain.Message{ChatID: 1, Role: domain.MessageRoleUser, Content: "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tc.message)
			require.Error(t, err)
		})
	}
}
