package dashboard

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mkk-1817/crm-backend/internal/db"
)

// Stats is the aggregate snapshot served at /dashboard.
type Stats struct {
	Companies     int64            `json:"companies" example:"12"`
	Contacts      int64            `json:"contacts" example:"57"`
	Deals         int64            `json:"deals" example:"23"`
	Users         int64            `json:"users" example:"4"`
	PipelineValue float64          `json:"pipelineValue" example:"1250000"`
	DealsByStage  map[string]int64 `json:"dealsByStage"`
}

type Store interface {
	Stats(ctx context.Context) (*Stats, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewStore(gdb *gorm.DB) *GormStore {
	return &GormStore{db: gdb}
}

func (s *GormStore) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{DealsByStage: map[string]int64{}}

	counts := []struct {
		model any
		dst   *int64
	}{
		{&db.Company{}, &stats.Companies},
		{&db.Contact{}, &stats.Contacts},
		{&db.Deal{}, &stats.Deals},
		{&db.User{}, &stats.Users},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("counting records: %w", err)
		}
	}

	err := s.db.WithContext(ctx).
		Model(&db.Deal{}).
		Where("stage NOT IN ?", []string{"closed-won", "closed-lost"}).
		Select("COALESCE(SUM(value), 0)").
		Scan(&stats.PipelineValue).Error
	if err != nil {
		return nil, fmt.Errorf("summing pipeline value: %w", err)
	}

	var rows []struct {
		Stage string
		Count int64
	}
	err = s.db.WithContext(ctx).
		Model(&db.Deal{}).
		Select("stage, COUNT(*) AS count").
		Group("stage").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("grouping deals by stage: %w", err)
	}
	for _, row := range rows {
		stats.DealsByStage[row.Stage] = row.Count
	}

	return stats, nil
}
