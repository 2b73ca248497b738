package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/madera/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Order{}))

	return db
}

func TestAssignCodeDerivesFromUserID(t *testing.T) {
	db := newTestDB(t)
	svc := NewReferralService(db)

	user := models.User{Name: "Boris", Phone: "998905554433", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	code, err := svc.AssignCode(user.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("MD%04d", user.ID), code)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.NotNil(t, stored.PromoCode)
	assert.Equal(t, code, *stored.PromoCode)
	assert.True(t, stored.IsPartner)
}

func TestAssignCodeTwiceFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewReferralService(db)

	user := models.User{Name: "Boris", Phone: "998905554433", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	_, err := svc.AssignCode(user.ID)
	require.NoError(t, err)

	_, err = svc.AssignCode(user.ID)
	assert.ErrorIs(t, err, ErrCodeAlreadyAssigned)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewReferralService(db)

	user := models.User{Name: "Boris", Phone: "998905554433", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	code, err := svc.AssignCode(user.ID)
	require.NoError(t, err)

	for _, input := range []string{code, " md0001 ", "Md0001"} {
		id, ok := svc.Resolve(input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, user.ID, id)
	}
}

func TestResolveUnknownCodeIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	svc := NewReferralService(db)

	id, ok := svc.Resolve("MD9999")
	assert.False(t, ok)
	assert.Zero(t, id)

	id, ok = svc.Resolve("")
	assert.False(t, ok)
	assert.Zero(t, id)
}
