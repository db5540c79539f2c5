package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdminService answers and changes the admin flag stored per caller identity.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Status reports whether caller is an admin. Anonymous callers are never
// admins and do not reach the store.
func (s *AdminService) Status(ctx context.Context, caller auth.Caller) (*dto.AdminStatusResponse, error) {
	if !caller.Authenticated {
		return &dto.AdminStatusResponse{IsAdmin: false}, nil
	}

	isAdmin, err := s.isAdmin(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.AdminStatusResponse{IsAdmin: isAdmin}, nil
}

// Grant sets the admin flag for the calling identity, creating its user row
// when needed. Any signed-in caller can elevate itself.
func (s *AdminService) Grant(ctx context.Context, caller auth.Caller) (*dto.SuccessResponse, error) {
	userID, err := caller.Require()
	if err != nil {
		return nil, err
	}
	if err := s.GrantByID(ctx, userID); err != nil {
		return nil, err
	}
	slog.Warn("admin flag granted", "user_id", userID.String(), "action", "grant_admin")
	return &dto.SuccessResponse{Success: true}, nil
}

// GrantByID upserts the admin flag for userID.
func (s *AdminService) GrantByID(ctx context.Context, userID uuid.UUID) error {
	user := models.User{ID: userID, IsAdmin: true}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_admin":   true,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&user).Error
	if err != nil {
		return storeErr("upsert user", err)
	}
	return nil
}

// Require succeeds only for a signed-in caller carrying the admin flag.
func (s *AdminService) Require(ctx context.Context, caller auth.Caller) (*dto.SuccessResponse, error) {
	userID, err := caller.Require()
	if err != nil {
		return nil, err
	}

	isAdmin, err := s.isAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, ErrAccessDenied
	}
	return &dto.SuccessResponse{Success: true}, nil
}

func (s *AdminService) isAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var user models.User
	err := s.db.WithContext(ctx).Select("id", "is_admin").First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, storeErr("find user", err)
	}
	return user.IsAdmin, nil
}
