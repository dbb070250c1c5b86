package services

import (
	"testing"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedInsertsReferenceRecords(t *testing.T) {
	db := newTestDB(t)
	service := NewConsequenceService(db, newTestConfig())

	require.NoError(t, service.Seed())

	var count int64
	require.NoError(t, db.Model(&models.ConsequenceRecord{}).Count(&count).Error)
	assert.EqualValues(t, len(seedRecords), count)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	service := NewConsequenceService(db, newTestConfig())

	require.NoError(t, service.Seed())
	require.NoError(t, service.Seed())

	var count int64
	require.NoError(t, db.Model(&models.ConsequenceRecord{}).Count(&count).Error)
	assert.EqualValues(t, len(seedRecords), count)
}

func TestSeedPreservesOperatorEdits(t *testing.T) {
	db := newTestDB(t)
	service := NewConsequenceService(db, newTestConfig())
	require.NoError(t, service.Seed())

	var record models.ConsequenceRecord
	require.NoError(t, db.Where("component_type = ? AND jurisdiction = ?", "heating", "AT").
		First(&record).Error)
	require.NoError(t, db.Model(&record).Update("damage_max_eur", 99999).Error)

	require.NoError(t, service.Seed())

	var reloaded models.ConsequenceRecord
	require.NoError(t, db.First(&reloaded, record.ID).Error)
	assert.Equal(t, 99999, reloaded.DamageMaxEUR)
}

func TestFindReturnsRecordData(t *testing.T) {
	db := newTestDB(t)
	service := NewConsequenceService(db, newTestConfig())
	require.NoError(t, service.Seed())

	data, err := service.Find(risk.TypeHeating, "AT")
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.True(t, data.DeathRisk)
	assert.True(t, data.InsuranceVoid)
	assert.Equal(t, 3000, data.DamageMinEUR)
	assert.NotEmpty(t, data.CriticalText)
}

func TestFindMissingRecordIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	service := NewConsequenceService(db, newTestConfig())
	require.NoError(t, service.Seed())

	// No applies-everywhere record is seeded for plumbing
	data, err := service.Find(risk.TypePlumbing, "")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFindFeedsClassifierFallback(t *testing.T) {
	db := newTestDB(t)
	service := NewConsequenceService(db, newTestConfig())
	require.NoError(t, service.Seed())

	// Classification for a jurisdiction without its own record falls back
	// to the applies-everywhere row
	assessment, err := risk.Classify(risk.TypeHeating, 45, "DE", service)
	require.NoError(t, err)
	assert.True(t, assessment.Consequences.InsuranceVoid)
	assert.Equal(t, "Die Heizungswartung ist überfällig.", assessment.Message)
}

func TestCreateAndUpdateRecord(t *testing.T) {
	db := newTestDB(t)
	service := NewConsequenceService(db, newTestConfig())

	record := &models.ConsequenceRecord{
		ComponentType: "elevator",
		Jurisdiction:  "DE",
		DangerText:    "Die Aufzugsprüfung ist fällig.",
	}
	require.NoError(t, service.CreateRecord(record))

	updated, err := service.UpdateRecord(record.ID, map[string]interface{}{
		"damage_max_eur": 500000,
	})
	require.NoError(t, err)
	assert.Equal(t, 500000, updated.DamageMaxEUR)

	_, err = service.UpdateRecord(9999, map[string]interface{}{"damage_max_eur": 1})
	assert.EqualError(t, err, "consequence record not found")
}

func TestDeleteRecord(t *testing.T) {
	db := newTestDB(t)
	service := NewConsequenceService(db, newTestConfig())

	record := &models.ConsequenceRecord{ComponentType: "heating", Jurisdiction: "CH"}
	require.NoError(t, service.CreateRecord(record))

	require.NoError(t, service.DeleteRecord(record.ID))
	assert.EqualError(t, service.DeleteRecord(record.ID), "consequence record not found")
}

func TestGetAllRecordsPagination(t *testing.T) {
	db := newTestDB(t)
	service := NewConsequenceService(db, newTestConfig())
	require.NoError(t, service.Seed())

	records, total, err := service.GetAllRecords(1, 5)
	require.NoError(t, err)
	assert.EqualValues(t, len(seedRecords), total)
	assert.Len(t, records, 5)
}
