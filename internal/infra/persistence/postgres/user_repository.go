// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return newUserRepository(db)
}

func newUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db, now: time.Now}
}

func (repo *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) GetByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email.String()).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// GetPaged filters by case-sensitive substring and orders by full name.
func (repo *userRepository) GetPaged(ctx context.Context, query entity.PageQuery) (*entity.Page[entity.User], error) {
	filtered := func() *gorm.DB {
		tx := repo.db.WithContext(ctx).Model(&model.UserModel{})
		if strings.TrimSpace(query.NameFilter) != "" {
			tx = tx.Where(repo.containsExpr("full_name"), query.NameFilter)
		}
		if strings.TrimSpace(query.EmailFilter) != "" {
			tx = tx.Where(repo.containsExpr("email"), query.EmailFilter)
		}

		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	var rows []model.UserModel
	if err := filtered().
		Order("full_name ASC").
		Order("id ASC").
		Offset(query.Offset()).
		Limit(query.PageSize).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	items := make([]entity.User, 0, len(rows))
	for i := range rows {
		items = append(items, *toUserDomain(&rows[i]))
	}

	return &entity.Page[entity.User]{
		Items:      items,
		TotalCount: total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}

// containsExpr is a case-sensitive substring predicate. LIKE is avoided
// because it is case-insensitive on SQLite and treats % and _ as wildcards.
func (repo *userRepository) containsExpr(column string) string {
	if repo.db.Dialector.Name() == "sqlite" {
		return "instr(" + column + ", ?) > 0"
	}

	return "strpos(" + column + ", ?) > 0"
}

func (repo *userRepository) Add(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = repo.now().UTC()
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uuid.Nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return uuid.Nil, domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return user.ID, nil
}

func (repo *userRepository) SetActivationToken(ctx context.Context, email entity.Email, token string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email.String()).
		Updates(map[string]any{
			"activation_token":      token,
			"activation_expires_at": expiresAt.UTC(),
			"is_active":             false,
			"updated_at":            repo.now().UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store activation token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) GetByActivationToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("activation_token = ? AND activation_expires_at >= ?", token, repo.now().UTC()).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by activation token")
	}

	return toUserDomain(&userM), nil
}

// ActivateByToken re-checks the token and its expiry inside the UPDATE, so
// two concurrent activations cannot both succeed.
func (repo *userRepository) ActivateByToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	now := repo.now().UTC()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("activation_token = ? AND activation_expires_at >= ?", token, now).
		Updates(map[string]any{
			"is_active":             true,
			"activation_token":      nil,
			"activation_expires_at": nil,
			"updated_at":            now,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to activate user")
	}

	return result.RowsAffected == 1, nil
}

// Deactivate applies the domain transition and persists the fields it touches.
func (repo *userRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user by id")
	}

	user := toUserDomain(&userM)
	user.Deactivate()
	now := repo.now().UTC()
	user.UpdatedAt = &now

	updated := fromUserDomain(user)
	err := repo.db.WithContext(ctx).
		Model(updated).
		Select("is_active", "activation_token", "activation_expires_at", "updated_at").
		Updates(updated).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate user")
	}

	return nil
}

// SetPasswordHash upserts the credential and drops any outstanding reset code.
func (repo *userRepository) SetPasswordHash(ctx context.Context, email entity.Email, hash string) error {
	now := repo.now().UTC()
	credM := &model.CredentialModel{
		Email:        email.String(),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "reset_token", "reset_expires_at", "updated_at"}),
	}).Create(credM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store password hash")
	}

	return nil
}

func (repo *userRepository) GetPasswordHash(ctx context.Context, email entity.Email) (string, error) {
	var credM model.CredentialModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email.String()).First(&credM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrCredentialNotFound
		}

		return "", errors.Wrap(err, "failed to find credential")
	}

	return credM.PasswordHash, nil
}

func (repo *userRepository) SetPasswordResetToken(ctx context.Context, email entity.Email, token string, expiresAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("email = ?", email.String()).
		Updates(map[string]any{
			"reset_token":      token,
			"reset_expires_at": expiresAt.UTC(),
			"updated_at":       repo.now().UTC(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to store reset token")
	}

	return result.RowsAffected == 1, nil
}

func (repo *userRepository) ResetPasswordByToken(ctx context.Context, email entity.Email, token, newHash string) (bool, error) {
	if token == "" {
		return false, nil
	}

	now := repo.now().UTC()
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("email = ? AND reset_token = ? AND reset_expires_at >= ?", email.String(), token, now).
		Updates(map[string]any{
			"password_hash":    newHash,
			"reset_token":      nil,
			"reset_expires_at": nil,
			"updated_at":       now,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to reset password")
	}

	return result.RowsAffected == 1, nil
}

func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:                  userM.ID,
		Email:               entity.RestoreEmail(userM.Email),
		FullName:            userM.FullName,
		Role:                entity.Role(userM.Role),
		IsActive:            userM.IsActive,
		ActivationExpiresAt: userM.ActivationExpiresAt,
		CreatedAt:           userM.CreatedAt,
		UpdatedAt:           userM.UpdatedAt,
	}
	if userM.ActivationToken != nil {
		user.ActivationToken = *userM.ActivationToken
	}

	return user
}

func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:                  user.ID,
		Email:               user.Email.String(),
		FullName:            user.FullName,
		Role:                user.Role.String(),
		IsActive:            user.IsActive,
		ActivationExpiresAt: user.ActivationExpiresAt,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}
	if user.ActivationToken != "" {
		token := user.ActivationToken
		userM.ActivationToken = &token
	}

	return userM
}
