package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mpetrovic-dev/usermgmt/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormUserRepo struct {
	db *gorm.DB
}

func (r *gormUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepo) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepo) Insert(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateDuplicateKey(err, user)
	}
	return nil
}

// Update persists the record and stamps DateModified as part of the same
// write.
func (r *gormUserRepo) Update(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.DateModified = &now
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return translateDuplicateKey(err, user)
	}
	return nil
}

// Delete removes the user together with its client rows.
func (r *gormUserRepo) Delete(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(user).Error
}

func (r *gormUserRepo) UserNameExists(ctx context.Context, userName string, excludeID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.User{}).Where("user_name = ?", userName)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormUserRepo) EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// translateDuplicateKey maps a unique-index violation onto the same duplicate
// error kinds the service-level pre-checks produce. The pre-checks are only a
// fast path; the database constraint is the authoritative guarantee.
func translateDuplicateKey(err error, user *models.User) error {
	var pgErr *pgconn.PgError
	// 23505 is unique_violation
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return &models.DuplicateEmailError{Email: user.Email}
	}
	return &models.DuplicateUserNameError{UserName: user.UserName}
}
