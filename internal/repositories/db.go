package repositories

import (
	"context"
	"fmt"

	"github.com/mpetrovic-dev/usermgmt/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres database and runs migrations.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
	); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

// GormStore is the production Store backed by a *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserRepository {
	return &gormUserRepo{db: s.db}
}

func (s *GormStore) Clients() ClientRepository {
	return &gormClientRepo{db: s.db}
}

func (s *GormStore) Transact(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
