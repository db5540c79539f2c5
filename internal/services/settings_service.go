package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSettingNotFound     = errors.New("setting not found")
	ErrInvalidSettingType  = errors.New("type must be one of string, bool, int, json")
	ErrInvalidSettingValue = errors.New("value does not match its type")
)

// DefaultSettings are created on startup when missing.
var DefaultSettings = []models.SiteSetting{
	{Key: "site_name", Value: "СтройДом", Type: "string"},
	{Key: "phone", Value: "+7 (383) 299-16-16", Type: "string"},
	{Key: "email", Value: "novosibirsk@kamprok.ru", Type: "string"},
	{Key: "working_hours", Value: "Ежедневно 08-18", Type: "string"},
	{Key: "city", Value: "Новосибирск", Type: "string"},
	{Key: "callback_enabled", Value: "true", Type: "bool"},
}

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// All returns every setting decoded to its declared type.
func (s *SettingsService) All(ctx context.Context) (map[string]interface{}, error) {
	var settings []models.SiteSetting
	if err := s.db.WithContext(ctx).Order("key ASC").Find(&settings).Error; err != nil {
		return nil, storeErr("list settings", err)
	}

	result := make(map[string]interface{}, len(settings))
	for _, st := range settings {
		value, err := decodeSetting(st.Type, st.Value)
		if err != nil {
			value = st.Value
		}
		result[st.Key] = value
	}
	return result, nil
}

// Get returns the raw string value of key.
func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	var setting models.SiteSetting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", storeErr("get setting", err)
	}
	return setting.Value, nil
}

// Set creates or updates key.
func (s *SettingsService) Set(ctx context.Context, key, value, typ string) (*models.SiteSetting, error) {
	if typ == "" {
		typ = "string"
	}
	if _, err := decodeSetting(typ, value); err != nil {
		return nil, err
	}

	var setting models.SiteSetting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.SiteSetting{Key: key, Value: value, Type: typ}
		if err := s.db.WithContext(ctx).Create(&setting).Error; err != nil {
			return nil, storeErr("create setting", err)
		}
	case err != nil:
		return nil, storeErr("get setting", err)
	default:
		setting.Value = value
		setting.Type = typ
		if err := s.db.WithContext(ctx).Save(&setting).Error; err != nil {
			return nil, storeErr("update setting", err)
		}
	}
	return &setting, nil
}

func (s *SettingsService) Delete(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Where("key = ?", key).Delete(&models.SiteSetting{})
	if result.Error != nil {
		return storeErr("delete setting", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}
	return nil
}

// SeedDefaults creates each default setting that does not exist yet.
func (s *SettingsService) SeedDefaults(ctx context.Context) error {
	for _, def := range DefaultSettings {
		var existing models.SiteSetting
		err := s.db.WithContext(ctx).Where("key = ?", def.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return storeErr("get setting", err)
		}

		setting := def
		if err := s.db.WithContext(ctx).Create(&setting).Error; err != nil {
			return storeErr("create setting", err)
		}
	}
	return nil
}

func decodeSetting(typ, raw string) (interface{}, error) {
	switch typ {
	case "string":
		return raw, nil
	case "bool":
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSettingValue, err)
		}
		return v, nil
	case "int":
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSettingValue, err)
		}
		return v, nil
	case "json":
		var v interface{}
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSettingValue, err)
		}
		return v, nil
	default:
		return nil, ErrInvalidSettingType
	}
}
