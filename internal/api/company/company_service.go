package company

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
	Create(ctx context.Context, c *db.Company) error
	List(ctx context.Context, p pagination.Params) ([]db.Company, int64, error)
	Get(ctx context.Context, id uint) (*db.Company, error)
	Update(ctx context.Context, id uint, updates map[string]any) (*db.Company, error)
	Delete(ctx context.Context, id uint) error
}

type GormStore struct {
	db *gorm.DB
}

func NewStore(gdb *gorm.DB) *GormStore {
	return &GormStore{db: gdb}
}

func (s *GormStore) Create(ctx context.Context, c *db.Company) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("creating company: %w", err)
	}
	return nil
}

func (s *GormStore) List(ctx context.Context, p pagination.Params) ([]db.Company, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&db.Company{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting companies: %w", err)
	}

	var companies []db.Company
	if err := p.Scope(s.db.WithContext(ctx)).Find(&companies).Error; err != nil {
		return nil, 0, fmt.Errorf("listing companies: %w", err)
	}
	return companies, total, nil
}

func (s *GormStore) Get(ctx context.Context, id uint) (*db.Company, error) {
	var c db.Company
	err := s.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: company %d", apperr.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying company: %w", err)
	}
	return &c, nil
}

func (s *GormStore) Update(ctx context.Context, id uint, updates map[string]any) (*db.Company, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(c).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("updating company: %w", err)
		}
	}
	return c, nil
}

func (s *GormStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&db.Company{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting company: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: company %d", apperr.ErrNotFound, id)
	}
	return nil
}
