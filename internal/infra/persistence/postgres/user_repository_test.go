package postgres

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTestRepo(t *testing.T) *userRepository {
	t.Helper()

	repo := newUserRepository(newTestDB(t))
	repo.now = func() time.Time { return fixedNow }

	return repo
}

func mustEmail(t *testing.T, raw string) entity.Email {
	t.Helper()

	email, err := entity.NewEmail(raw)
	require.NoError(t, err)

	return email
}

func addUser(t *testing.T, repo *userRepository, email, name string) *entity.User {
	t.Helper()

	user := entity.NewUser(mustEmail(t, email), name, entity.RoleUser, false)
	_, err := repo.Add(context.Background(), user)
	require.NoError(t, err)

	return user
}

func TestUserRepository_AddAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := entity.NewUser(mustEmail(t, "ann@example.com"), "Ann", entity.RoleAdmin, false)
	id, err := repo.Add(ctx, user)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, uuid.Version(7), id.Version())

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", byID.Email.String())
	assert.Equal(t, "Ann", byID.FullName)
	assert.Equal(t, entity.RoleAdmin, byID.Role)
	assert.False(t, byID.IsActive)
	assert.True(t, fixedNow.Equal(byID.CreatedAt))
	assert.Nil(t, byID.UpdatedAt)

	byEmail, err := repo.GetByEmail(ctx, mustEmail(t, "ANN@example.com"))
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)
}

func TestUserRepository_AddKeepsProvidedID(t *testing.T) {
	repo := newTestRepo(t)
	subject := uuid.MustParse("0190a4f2-7b1c-7c3e-9a55-3f1f0d2b9e11")

	user := entity.NewUser(mustEmail(t, "ann@example.com"), "Ann", entity.RoleUser, false)
	user.ID = subject

	id, err := repo.Add(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, subject, id)
}

func TestUserRepository_AddDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	addUser(t, repo, "ann@example.com", "Ann")

	_, err := repo.Add(context.Background(), entity.NewUser(mustEmail(t, "ann@example.com"), "Other", entity.RoleUser, false))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.GetByEmail(ctx, mustEmail(t, "ghost@example.com"))
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.ErrorIs(t, repo.Deactivate(ctx, uuid.New()), repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.SetActivationToken(ctx, mustEmail(t, "ghost@example.com"), "t", fixedNow), repository.ErrUserNotFound)
}

func TestUserRepository_ActivationToken(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := addUser(t, repo, "ann@example.com", "Ann")

	require.NoError(t, repo.SetActivationToken(ctx, user.Email, "tok", fixedNow.Add(24*time.Hour)))

	found, err := repo.GetByActivationToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, entity.StatePending, found.State())

	ok, err := repo.ActivateByToken(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)

	activated, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.Empty(t, activated.ActivationToken)
	assert.Nil(t, activated.ActivationExpiresAt)
	require.NotNil(t, activated.UpdatedAt)

	// Single use.
	ok, err = repo.ActivateByToken(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.GetByActivationToken(ctx, "tok")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ActivationTokenValidAtExpiry(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := addUser(t, repo, "ann@example.com", "Ann")

	require.NoError(t, repo.SetActivationToken(ctx, user.Email, "tok", fixedNow))

	found, err := repo.GetByActivationToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	ok, err := repo.ActivateByToken(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserRepository_ConcurrentActivation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := addUser(t, repo, "ann@example.com", "Ann")
	require.NoError(t, repo.SetActivationToken(ctx, user.Email, "tok", fixedNow.Add(time.Hour)))

	sqlDB, err := repo.db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	const workers = 8
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.ActivateByToken(ctx, "tok")
			if err != nil {
				errs <- err

				return
			}
			if ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), wins.Load())
}

func TestUserRepository_ExpiredActivationToken(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := addUser(t, repo, "ann@example.com", "Ann")

	require.NoError(t, repo.SetActivationToken(ctx, user.Email, "tok", fixedNow.Add(-time.Second)))

	_, err := repo.GetByActivationToken(ctx, "tok")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	ok, err := repo.ActivateByToken(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.ActivateByToken(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_Deactivate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := addUser(t, repo, "ann@example.com", "Ann")
	require.NoError(t, repo.SetActivationToken(ctx, user.Email, "tok", fixedNow.Add(time.Hour)))

	require.NoError(t, repo.Deactivate(ctx, user.ID))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateDisabled, got.State())

	ok, err := repo.ActivateByToken(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_GetPaged(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	addUser(t, repo, "carol@example.com", "Carol")
	addUser(t, repo, "alice@example.com", "Alice")
	addUser(t, repo, "bob@corp.test", "Bob")
	addUser(t, repo, "alina@example.com", "alina")

	t.Run("orders by full name", func(t *testing.T) {
		page, err := repo.GetPaged(ctx, entity.PageQuery{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(4), page.TotalCount)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "Alice", page.Items[0].FullName)
		assert.Equal(t, "Bob", page.Items[1].FullName)
	})

	t.Run("second page", func(t *testing.T) {
		page, err := repo.GetPaged(ctx, entity.PageQuery{Page: 2, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "Carol", page.Items[0].FullName)
		assert.Equal(t, "alina", page.Items[1].FullName)
		assert.Equal(t, 2, page.Page)
	})

	t.Run("name filter is case sensitive", func(t *testing.T) {
		page, err := repo.GetPaged(ctx, entity.PageQuery{Page: 1, PageSize: 20, NameFilter: "Ali"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.TotalCount)
		assert.Equal(t, "Alice", page.Items[0].FullName)
	})

	t.Run("email filter", func(t *testing.T) {
		page, err := repo.GetPaged(ctx, entity.PageQuery{Page: 1, PageSize: 20, EmailFilter: "corp"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "bob@corp.test", page.Items[0].Email.String())
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		page, err := repo.GetPaged(ctx, entity.PageQuery{Page: 1, PageSize: 20, EmailFilter: "%"})
		require.NoError(t, err)
		assert.Zero(t, page.TotalCount)
		assert.Empty(t, page.Items)
	})

	t.Run("blank filters are ignored", func(t *testing.T) {
		page, err := repo.GetPaged(ctx, entity.PageQuery{Page: 1, PageSize: 20, NameFilter: "  ", EmailFilter: "\t"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), page.TotalCount)
	})

	t.Run("past the end", func(t *testing.T) {
		page, err := repo.GetPaged(ctx, entity.PageQuery{Page: 5, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(4), page.TotalCount)
		assert.Empty(t, page.Items)
	})
}

func TestUserRepository_Credentials(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	email := mustEmail(t, "ann@example.com")

	_, err := repo.GetPasswordHash(ctx, email)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	ok, err := repo.SetPasswordResetToken(ctx, email, "code", fixedNow.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "no credential yet")

	require.NoError(t, repo.SetPasswordHash(ctx, email, "hash-1"))
	require.NoError(t, repo.SetPasswordHash(ctx, email, "hash-2"))

	hash, err := repo.GetPasswordHash(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, "hash-2", hash)

	ok, err = repo.SetPasswordResetToken(ctx, email, "code", fixedNow.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ResetPasswordByToken(ctx, email, "wrong", "hash-3")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.ResetPasswordByToken(ctx, mustEmail(t, "other@example.com"), "code", "hash-3")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.ResetPasswordByToken(ctx, email, "code", "hash-3")
	require.NoError(t, err)
	assert.True(t, ok)

	hash, err = repo.GetPasswordHash(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, "hash-3", hash)

	ok, err = repo.ResetPasswordByToken(ctx, email, "code", "hash-4")
	require.NoError(t, err)
	assert.False(t, ok, "code is single use")
}

func TestUserRepository_ResetTokenValidAtExpiry(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	email := mustEmail(t, "ann@example.com")

	require.NoError(t, repo.SetPasswordHash(ctx, email, "hash-1"))
	ok, err := repo.SetPasswordResetToken(ctx, email, "code", fixedNow)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.ResetPasswordByToken(ctx, email, "code", "hash-2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserRepository_ExpiredResetToken(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	email := mustEmail(t, "ann@example.com")

	require.NoError(t, repo.SetPasswordHash(ctx, email, "hash-1"))
	ok, err := repo.SetPasswordResetToken(ctx, email, "code", fixedNow.Add(-time.Minute))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.ResetPasswordByToken(ctx, email, "code", "hash-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_SetPasswordHashClearsResetToken(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	email := mustEmail(t, "ann@example.com")

	require.NoError(t, repo.SetPasswordHash(ctx, email, "hash-1"))
	_, err := repo.SetPasswordResetToken(ctx, email, "code", fixedNow.Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, repo.SetPasswordHash(ctx, email, "hash-2"))

	ok, err := repo.ResetPasswordByToken(ctx, email, "code", "hash-3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransactionManager(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_, err := factory.UserRepo().Add(ctx, entity.NewUser(mustEmail(t, "ann@example.com"), "Ann", entity.RoleUser, false))

			return err
		})
		require.NoError(t, err)

		_, err = NewUserRepository(db).GetByEmail(ctx, mustEmail(t, "ann@example.com"))
		require.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			repo := factory.UserRepo()
			if _, err := repo.Add(ctx, entity.NewUser(mustEmail(t, "bob@example.com"), "Bob", entity.RoleUser, false)); err != nil {
				return err
			}

			return repo.SetActivationToken(ctx, mustEmail(t, "ghost@example.com"), "tok", time.Now().Add(time.Hour))
		})
		require.ErrorIs(t, err, repository.ErrUserNotFound)

		_, err = NewUserRepository(db).GetByEmail(ctx, mustEmail(t, "bob@example.com"))
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}
