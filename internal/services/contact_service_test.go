package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestOptionalString(t *testing.T) {
	assert.Equal(t, "", OptionalString(nil))
	assert.Equal(t, "", OptionalString(strPtr("")))
	assert.Equal(t, "x", OptionalString(strPtr("x")))
}

func TestContactService_SubmitDefaultsOptionalFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, NewScreeningService(), metrics.New())

	got, err := svc.Submit(context.Background(), &dto.ContactRequest{Name: "Иван", Phone: "+79990000000"})
	require.NoError(t, err)

	assert.Equal(t, "Иван", got.Name)
	assert.Equal(t, "+79990000000", got.Phone)
	assert.Equal(t, "", got.Email)
	assert.Equal(t, "", got.Message)
	assert.Equal(t, "", got.ServiceType)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.CreatedAt.IsZero())

	var stored models.ContactSubmission
	require.NoError(t, db.First(&stored, "id = ?", got.ID).Error)
	assert.Equal(t, got.Name, stored.Name)
	assert.Equal(t, "", stored.Email)
}

func TestContactService_SubmitKeepsValuesVerbatim(t *testing.T) {
	svc := NewContactService(newTestDB(t), nil, nil)

	req := &dto.ContactRequest{
		Name:        "  Мария  ",
		Phone:       "8 (913) 000-00-00",
		Email:       strPtr("maria@example.ru"),
		Message:     strPtr("Нужен дом из бруса"),
		ServiceType: strPtr("house"),
	}
	got, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "  Мария  ", got.Name)
	assert.Equal(t, "8 (913) 000-00-00", got.Phone)
	assert.Equal(t, "maria@example.ru", got.Email)
	assert.Equal(t, "Нужен дом из бруса", got.Message)
	assert.Equal(t, "house", got.ServiceType)
}

func TestContactService_SubmitAssignsDistinctIDs(t *testing.T) {
	svc := NewContactService(newTestDB(t), nil, nil)
	ctx := context.Background()

	seen := map[uuid.UUID]bool{}
	for i := 0; i < 5; i++ {
		got, err := svc.Submit(ctx, &dto.ContactRequest{Name: "Иван", Phone: "+79990000000"})
		require.NoError(t, err)
		assert.False(t, seen[got.ID], "duplicate id %s", got.ID)
		seen[got.ID] = true
	}
}

func TestContactService_SubmitFlagsSpamButStores(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, NewScreeningService(), nil)

	got, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Bot",
		Phone:   "0",
		Message: strPtr("лучшее казино тут https://spam.example"),
	})
	require.NoError(t, err)
	assert.Equal(t, SpamInappropriateLanguage, got.SpamReason)

	var count int64
	require.NoError(t, db.Model(&models.ContactSubmission{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestContactService_SubmitStoreUnavailable(t *testing.T) {
	svc := NewContactService(closedDB(t), nil, nil)

	_, err := svc.Submit(context.Background(), &dto.ContactRequest{Name: "a", Phone: "b"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestContactService_List(t *testing.T) {
	svc := NewContactService(newTestDB(t), nil, nil)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Submit(ctx, &dto.ContactRequest{Name: name, Phone: "1"})
		require.NoError(t, err)
	}

	rows, total, err := svc.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 2)
	assert.False(t, rows[0].CreatedAt.Before(rows[1].CreatedAt))

	rows, _, err = svc.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, _, err = svc.List(ctx, 0, -1)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
