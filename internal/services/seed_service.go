package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const contentSeedName = "content"

// errAlreadySeeded aborts the seeding transaction without reporting a failure.
var errAlreadySeeded = errors.New("content already seeded")

type SeedResult struct {
	Seeded       bool
	Services     int
	Projects     int
	Testimonials int
	Pricing      int
}

type SeedService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewSeedService(db *gorm.DB, m *metrics.Metrics) *SeedService {
	return &SeedService{db: db, metrics: m, now: time.Now}
}

// Seed fills an empty catalog with the baseline content. It is a no-op when
// any service row exists. The seed marker row is locked before counting so
// concurrent seeders run one after another. All rows are written in one
// transaction.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.SeedRun{Name: contentSeedName}).Error; err != nil {
			return storeErr("create seed marker", err)
		}
		var marker models.SeedRun
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&marker, "name = ?", contentSeedName).Error; err != nil {
			return storeErr("lock seed marker", err)
		}

		var count int64
		if err := tx.Model(&models.Service{}).Count(&count).Error; err != nil {
			return storeErr("count services", err)
		}
		if count > 0 {
			return errAlreadySeeded
		}

		base := s.now().UTC()
		services := ascending(base, append(cloneSlice(SeedHouseTypes), SeedConstructionServices...), func(m *models.Service, t time.Time) { m.CreatedAt = t })
		projects := descending(base, cloneSlice(SeedProjects), func(m *models.Project, t time.Time) { m.CreatedAt = t })
		testimonials := descending(base, cloneSlice(SeedTestimonials), func(m *models.Testimonial, t time.Time) { m.CreatedAt = t })
		pricing := ascending(base, cloneSlice(SeedPricing), func(m *models.PricingItem, t time.Time) { m.CreatedAt = t })

		if err := tx.CreateInBatches(&services, 50).Error; err != nil {
			return storeErr("create services", err)
		}
		if err := tx.CreateInBatches(&projects, 50).Error; err != nil {
			return storeErr("create projects", err)
		}
		if err := tx.CreateInBatches(&testimonials, 50).Error; err != nil {
			return storeErr("create testimonials", err)
		}
		if err := tx.CreateInBatches(&pricing, 50).Error; err != nil {
			return storeErr("create pricing", err)
		}

		result.Seeded = true
		result.Services = len(services)
		result.Projects = len(projects)
		result.Testimonials = len(testimonials)
		result.Pricing = len(pricing)
		return nil
	})

	switch {
	case errors.Is(err, errAlreadySeeded):
		s.metrics.SeedRun("skipped")
		slog.Info("content already seeded")
		return &SeedResult{}, nil
	case err != nil:
		s.metrics.SeedRun("failed")
		return nil, err
	}

	s.metrics.SeedRun("seeded")
	slog.Info("content seeded",
		"services", result.Services,
		"projects", result.Projects,
		"testimonials", result.Testimonials,
		"pricing", result.Pricing,
	)
	return result, nil
}

func cloneSlice[T any](src []T) []T {
	return append([]T(nil), src...)
}

// ascending stamps rows so an oldest-first listing returns them in slice order.
func ascending[T any](base time.Time, rows []T, set func(*T, time.Time)) []T {
	for i := range rows {
		set(&rows[i], base.Add(time.Duration(i)*time.Millisecond))
	}
	return rows
}

// descending stamps rows so a newest-first listing returns them in slice order.
func descending[T any](base time.Time, rows []T, set func(*T, time.Time)) []T {
	for i := range rows {
		set(&rows[i], base.Add(-time.Duration(i)*time.Millisecond))
	}
	return rows
}
