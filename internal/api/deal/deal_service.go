package deal

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
	Create(ctx context.Context, d *db.Deal, contactIDs []uint) error
	List(ctx context.Context, p pagination.Params) ([]db.Deal, int64, error)
	Get(ctx context.Context, id uint) (*db.Deal, error)
	Update(ctx context.Context, id uint, updates map[string]any, contactIDs []uint) (*db.Deal, error)
	Delete(ctx context.Context, id uint) error
}

type GormStore struct {
	db *gorm.DB
}

func NewStore(gdb *gorm.DB) *GormStore {
	return &GormStore{db: gdb}
}

// Create inserts the deal and links the given contacts. Omit("Contacts.*")
// writes the join rows without touching the contacts table itself.
func (s *GormStore) Create(ctx context.Context, d *db.Deal, contactIDs []uint) error {
	for _, id := range contactIDs {
		d.Contacts = append(d.Contacts, db.Contact{ID: id})
	}
	if err := s.db.WithContext(ctx).Omit("Contacts.*").Create(d).Error; err != nil {
		return fmt.Errorf("creating deal: %w", err)
	}
	return s.reload(ctx, d)
}

func (s *GormStore) List(ctx context.Context, p pagination.Params) ([]db.Deal, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&db.Deal{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting deals: %w", err)
	}

	var deals []db.Deal
	q := s.db.WithContext(ctx).Preload("Company").Preload("Contacts")
	if err := p.Scope(q).Find(&deals).Error; err != nil {
		return nil, 0, fmt.Errorf("listing deals: %w", err)
	}
	return deals, total, nil
}

func (s *GormStore) Get(ctx context.Context, id uint) (*db.Deal, error) {
	var d db.Deal
	err := s.db.WithContext(ctx).Preload("Company").Preload("Contacts").First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: deal %d", apperr.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying deal: %w", err)
	}
	return &d, nil
}

func (s *GormStore) Update(ctx context.Context, id uint, updates map[string]any, contactIDs []uint) (*db.Deal, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(d).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("updating deal: %w", err)
		}
	}

	if contactIDs != nil {
		contacts := make([]db.Contact, 0, len(contactIDs))
		for _, cid := range contactIDs {
			contacts = append(contacts, db.Contact{ID: cid})
		}
		if err := s.db.WithContext(ctx).Model(d).Association("Contacts").Replace(contacts); err != nil {
			return nil, fmt.Errorf("replacing deal contacts: %w", err)
		}
	}

	if err := s.reload(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *GormStore) Delete(ctx context.Context, id uint) error {
	// join rows go with the deal via ON DELETE CASCADE
	res := s.db.WithContext(ctx).Delete(&db.Deal{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting deal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: deal %d", apperr.ErrNotFound, id)
	}
	return nil
}

func (s *GormStore) reload(ctx context.Context, d *db.Deal) error {
	if err := s.db.WithContext(ctx).Preload("Company").Preload("Contacts").First(d, d.ID).Error; err != nil {
		return fmt.Errorf("reloading deal: %w", err)
	}
	return nil
}
