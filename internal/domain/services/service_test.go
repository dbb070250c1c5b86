package services

import (
	"testing"
	"time"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Owner{},
		&models.Property{},
		&models.Component{},
		&models.MaintenanceLog{},
		&models.ConsequenceRecord{},
		&models.Notification{},
		&models.PushSubscription{},
		&models.RiskSnapshot{},
		&models.WaitlistEntry{},
	)
	require.NoError(t, err)
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		AppBaseURL:          "https://app.example.test",
		JWTSecretKey:        "test-secret",
		DefaultJurisdiction: "AT",
		VAPIDPublicKey:      "test-public-key",
	}
}

// seedOwner creates an owner account directly
func seedOwner(t *testing.T, db *gorm.DB, email string, notifyResolved bool) *models.Owner {
	t.Helper()
	owner := models.Owner{
		Email:          email,
		PasswordHash:   "x",
		Name:           "Test Owner",
		Role:           "owner",
		PushEnabled:    true,
		EmailEnabled:   true,
		NotifyResolved: notifyResolved,
	}
	require.NoError(t, db.Create(&owner).Error)
	return &owner
}

// seedProperty creates a property for an owner
func seedProperty(t *testing.T, db *gorm.DB, ownerID uint, jurisdiction string) *models.Property {
	t.Helper()
	property := models.Property{
		OwnerID:      ownerID,
		Name:         "Haus Graz",
		City:         "Graz",
		Jurisdiction: jurisdiction,
	}
	require.NoError(t, db.Create(&property).Error)
	return &property
}

// seedComponent creates a component row without going through the service
func seedComponent(t *testing.T, db *gorm.DB, propertyID uint, componentType string, lastMaintenance time.Time, riskLevel string) *models.Component {
	t.Helper()
	component := models.Component{
		PropertyID:      propertyID,
		Type:            componentType,
		LastMaintenance: lastMaintenance,
		RiskLevel:       riskLevel,
	}
	require.NoError(t, db.Create(&component).Error)
	return &component
}
