package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-service/internal/domain"
	"account-service/internal/repository"
)

func newTestRepo(t *testing.T) repository.AccountRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewAccountRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func newAccount(email string) *domain.Account {
	return &domain.Account{
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		FirstName:    "Alice",
		LastName:     "Liddell",
		IsActive:     true,
	}
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	account := newAccount("alice@example.com")
	id, err := repo.Create(ctx, account)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.False(t, account.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)
	assert.Equal(t, "Alice", byEmail.FirstName)
	assert.True(t, byEmail.IsActive)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newAccount("alice@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newAccount("alice@example.com"))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestAccountRepository_NotFound(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Update(ctx, 12345, repository.AccountUpdate{})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 12345), repository.ErrNotFound)
}

func TestAccountRepository_PartialUpdate(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	account := newAccount("alice@example.com")
	id, err := repo.Create(ctx, account)
	require.NoError(t, err)

	phone := "123"
	updated, err := repo.Update(ctx, id, repository.AccountUpdate{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "123", updated.Phone)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "Liddell", updated.LastName)
	assert.False(t, updated.UpdatedAt.Before(account.UpdatedAt))

	first := "Bob"
	updated, err = repo.Update(ctx, id, repository.AccountUpdate{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Bob", updated.FirstName)
	assert.Equal(t, "123", updated.Phone)
}

func TestAccountRepository_Delete(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, newAccount("alice@example.com"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
