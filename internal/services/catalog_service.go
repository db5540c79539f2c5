package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/models"
	"gorm.io/gorm"
)

// CatalogService reads the content shown to visitors. Every list is a full,
// unfiltered read; the id column breaks timestamp ties so repeated reads
// return the same order.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&services).Error; err != nil {
		return nil, storeErr("list services", err)
	}
	return services, nil
}

func (s *CatalogService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&projects).Error; err != nil {
		return nil, storeErr("list projects", err)
	}
	return projects, nil
}

func (s *CatalogService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&testimonials).Error; err != nil {
		return nil, storeErr("list testimonials", err)
	}
	return testimonials, nil
}

func (s *CatalogService) ListPricing(ctx context.Context) ([]models.PricingItem, error) {
	items := []models.PricingItem{}
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		return nil, storeErr("list pricing", err)
	}
	return items, nil
}
