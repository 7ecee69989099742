package contact

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mkk-1817/crm-backend/internal/api/pagination"
	"github.com/mkk-1817/crm-backend/internal/apperr"
	"github.com/mkk-1817/crm-backend/internal/db"
)

type Store interface {
	Create(ctx context.Context, c *db.Contact) error
	List(ctx context.Context, p pagination.Params) ([]db.Contact, int64, error)
	Get(ctx context.Context, id uint) (*db.Contact, error)
	Update(ctx context.Context, id uint, updates map[string]any) (*db.Contact, error)
	Delete(ctx context.Context, id uint) error
}

type GormStore struct {
	db *gorm.DB
}

func NewStore(gdb *gorm.DB) *GormStore {
	return &GormStore{db: gdb}
}

func (s *GormStore) Create(ctx context.Context, c *db.Contact) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("creating contact: %w", err)
	}
	return nil
}

func (s *GormStore) List(ctx context.Context, p pagination.Params) ([]db.Contact, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&db.Contact{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting contacts: %w", err)
	}

	var contacts []db.Contact
	if err := p.Scope(s.db.WithContext(ctx).Preload("Company")).Find(&contacts).Error; err != nil {
		return nil, 0, fmt.Errorf("listing contacts: %w", err)
	}
	return contacts, total, nil
}

func (s *GormStore) Get(ctx context.Context, id uint) (*db.Contact, error) {
	var c db.Contact
	err := s.db.WithContext(ctx).Preload("Company").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: contact %d", apperr.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying contact: %w", err)
	}
	return &c, nil
}

func (s *GormStore) Update(ctx context.Context, id uint, updates map[string]any) (*db.Contact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(c).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("updating contact: %w", err)
		}
	}
	return c, nil
}

func (s *GormStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&db.Contact{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: contact %d", apperr.ErrNotFound, id)
	}
	return nil
}
