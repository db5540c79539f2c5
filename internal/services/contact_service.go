package services

import (
	"context"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/models"
	"gorm.io/gorm"
)

const MaxContactPageSize = 100

type ContactService struct {
	db        *gorm.DB
	screening *ScreeningService
	metrics   *metrics.Metrics
}

func NewContactService(db *gorm.DB, screening *ScreeningService, m *metrics.Metrics) *ContactService {
	return &ContactService{db: db, screening: screening, metrics: m}
}

// OptionalString maps an absent optional field to "".
func OptionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// Submit stores a contact request as given. Name and phone are copied
// verbatim; no field is validated.
func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest) (*models.ContactSubmission, error) {
	submission := models.ContactSubmission{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       OptionalString(req.Email),
		Message:     OptionalString(req.Message),
		ServiceType: OptionalString(req.ServiceType),
	}
	if s.screening != nil {
		submission.SpamReason = s.screening.Screen(submission.Name, submission.Message)
	}

	if err := s.db.WithContext(ctx).Create(&submission).Error; err != nil {
		return nil, storeErr("create contact submission", err)
	}

	s.metrics.ContactSubmitted(submission.ServiceType)
	slog.Info("contact submission stored",
		"submission_id", submission.ID.String(),
		"service_type", submission.ServiceType,
		"spam_reason", submission.SpamReason,
	)
	return &submission, nil
}

// List returns submissions newest first with the total row count.
func (s *ContactService) List(ctx context.Context, limit, offset int) ([]models.ContactSubmission, int64, error) {
	if limit <= 0 || limit > MaxContactPageSize {
		limit = MaxContactPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.ContactSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, storeErr("count contact submissions", err)
	}

	submissions := []models.ContactSubmission{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&submissions).Error
	if err != nil {
		return nil, 0, storeErr("list contact submissions", err)
	}
	return submissions, total, nil
}
