package items

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrNameRequired is returned by Add when the item name is empty.
var ErrNameRequired = errors.New("item name is required")

// Service handles item operations.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new item service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// List returns every item in insertion order.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.store.List(ctx)
}

// Add validates name and appends a new item.
func (s *Service) Add(ctx context.Context, name string) (Item, error) {
	if name == "" {
		return Item{}, ErrNameRequired
	}
	item, err := s.store.Add(ctx, name)
	if err != nil {
		return Item{}, err
	}
	s.logger.Debug("Item added", zap.Int("id", item.ID), zap.String("name", item.Name))
	return item, nil
}
