package items

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// GormStore keeps items in a SQL database through GORM.
type GormStore struct {
	db *gorm.DB

	// addMu serialises Add so two requests never read the same count.
	addMu sync.Mutex
}

// NewGormStore creates a store on db. Call Migrate before first use.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the items table.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Item{}); err != nil {
		return fmt.Errorf("failed to migrate items: %w", err)
	}
	return nil
}

// Seed inserts items when the table is empty. It returns the number inserted.
func (s *GormStore) Seed(ctx context.Context, seed ...Item) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Item{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	if count > 0 || len(seed) == 0 {
		return 0, nil
	}
	if err := s.db.WithContext(ctx).Create(&seed).Error; err != nil {
		return 0, fmt.Errorf("failed to seed items: %w", err)
	}
	return len(seed), nil
}

// List returns all items ordered by ID.
func (s *GormStore) List(ctx context.Context) ([]Item, error) {
	var out []Item
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return out, nil
}

// Add inserts a new item with ID count+1 inside a transaction.
// Calls are serialised within the process.
func (s *GormStore) Add(ctx context.Context, name string) (Item, error) {
	s.addMu.Lock()
	defer s.addMu.Unlock()

	var item Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Item{}).Count(&count).Error; err != nil {
			return err
		}
		item = Item{ID: int(count) + 1, Name: name}
		return tx.Create(&item).Error
	})
	if err != nil {
		return Item{}, fmt.Errorf("failed to add item: %w", err)
	}
	return item, nil
}
