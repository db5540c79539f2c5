package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service categories shown as separate sections on the site.
const (
	CategoryHouseTypes           = "house_types"
	CategoryConstructionServices = "construction_services"
)

var (
	ErrInvalidCategory = errors.New("invalid service category")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

// ValidCategory reports whether category is one of the known service tags.
func ValidCategory(category string) bool {
	switch category {
	case CategoryHouseTypes, CategoryConstructionServices:
		return true
	}
	return false
}

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:500" json:"imageUrl"`
	PriceFrom   float64   `gorm:"not null;default:0" json:"priceFrom"`
	Category    string    `gorm:"size:50;not null;index" json:"category"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if !ValidCategory(s.Category) {
		return ErrInvalidCategory
	}
	if s.PriceFrom < 0 {
		return ErrNegativePrice
	}
	return nil
}

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:500" json:"imageUrl"`
	CompletedAt string    `gorm:"size:100" json:"completedAt"` // label such as "Май 2024"
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Testimonial struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerName  string    `gorm:"size:255;not null" json:"customerName"`
	CustomerPhoto string    `gorm:"size:500" json:"customerPhoto"`
	Content       string    `gorm:"type:text" json:"content"`
	Rating        int       `gorm:"not null" json:"rating"`
	Location      string    `gorm:"size:255" json:"location"`
	Date          string    `gorm:"size:50" json:"date"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Rating < 1 || t.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

type PricingItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Unit      string    `gorm:"size:50" json:"unit"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (p *PricingItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// SeedRun marks a completed (or in-flight) seeding pass. The primary key on
// Name serializes concurrent seeders.
type SeedRun struct {
	Name      string    `gorm:"size:50;primaryKey" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
