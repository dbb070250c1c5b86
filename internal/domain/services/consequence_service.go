package services

import (
	"errors"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/risk"
	"immowaechter-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceConsequenceService defines the consequence reference data
// service interface. It backs the classifier's ConsequenceSource.
type InterfaceConsequenceService interface {
	risk.ConsequenceSource
	GetAllRecords(page, pageSize int) ([]models.ConsequenceRecord, int64, error)
	CreateRecord(record *models.ConsequenceRecord) error
	UpdateRecord(id uint, updates map[string]interface{}) (*models.ConsequenceRecord, error)
	DeleteRecord(id uint) error
	Seed() error
}

// ConsequenceService provides the consequence reference data
type ConsequenceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewConsequenceService creates a new consequence service
func NewConsequenceService(db *gorm.DB, cfg *config.Config) InterfaceConsequenceService {
	return &ConsequenceService{
		DB:     db,
		Config: cfg,
	}
}

// 1. Find looks up the record for (type, jurisdiction). Absence is
// reported as (nil, nil): the classifier degrades to a default payload.
func (s *ConsequenceService) Find(componentType risk.ComponentType, jurisdiction string) (*risk.ConsequenceData, error) {
	var record models.ConsequenceRecord
	err := s.DB.Where("component_type = ? AND jurisdiction = ?", string(componentType), jurisdiction).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &risk.ConsequenceData{
		DeathRisk:         record.DeathRisk,
		InjuryRisk:        record.InjuryRisk,
		InsuranceVoid:     record.InsuranceVoid,
		CriminalLiability: record.CriminalLiability,
		DamageMinEUR:      record.DamageMinEUR,
		DamageMaxEUR:      record.DamageMaxEUR,
		WarningText:       record.WarningText,
		DangerText:        record.DangerText,
		CriticalText:      record.CriticalText,
		LegalText:         record.LegalText,
		RealCase:          record.RealCase,
		Statistic:         record.Statistic,
	}, nil
}

// 2. GetAllRecords lists records with pagination (admin)
func (s *ConsequenceService) GetAllRecords(page, pageSize int) ([]models.ConsequenceRecord, int64, error) {
	var records []models.ConsequenceRecord
	var total int64

	if err := s.DB.Model(&models.ConsequenceRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// 3. CreateRecord creates a reference record (admin)
func (s *ConsequenceService) CreateRecord(record *models.ConsequenceRecord) error {
	return s.DB.Create(record).Error
}

// 4. UpdateRecord applies partial updates to a record (admin)
func (s *ConsequenceService) UpdateRecord(id uint, updates map[string]interface{}) (*models.ConsequenceRecord, error) {
	var record models.ConsequenceRecord
	if err := s.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("consequence record not found")
		}
		return nil, err
	}
	if err := s.DB.Model(&record).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// 5. DeleteRecord removes a record (admin)
func (s *ConsequenceService) DeleteRecord(id uint) error {
	result := s.DB.Delete(&models.ConsequenceRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("consequence record not found")
	}
	return nil
}

// 6. Seed inserts the Austrian reference records once. Existing rows are
// left untouched so operator edits survive restarts.
func (s *ConsequenceService) Seed() error {
	for _, record := range seedRecords {
		var count int64
		if err := s.DB.Model(&models.ConsequenceRecord{}).
			Where("component_type = ? AND jurisdiction = ?", record.ComponentType, record.Jurisdiction).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		record := record
		if err := s.DB.Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

// Austrian seed data plus applies-everywhere fallbacks
var seedRecords = []models.ConsequenceRecord{
	{
		ComponentType: "heating", Jurisdiction: "AT",
		DeathRisk: true, InjuryRisk: true, InsuranceVoid: true, CriminalLiability: false,
		DamageMinEUR: 3000, DamageMaxEUR: 50000,
		WarningText:  "Die jährliche Heizungswartung steht an. Ohne Wartung steigt das CO-Risiko.",
		DangerText:   "Die Heizungswartung ist überfällig. Kohlenmonoxid-Austritt wird ohne Prüfung nicht erkannt.",
		CriticalText: "Stark überfällige Heizungswartung: akutes CO-Vergiftungsrisiko, Versicherungsschutz gefährdet.",
		LegalText:    "Die gesetzliche Wartungspflicht gemäß Landes-Heizungsanlagengesetz ist verletzt. Bei einem Schaden haften Sie persönlich.",
		RealCase:     "2021 starben in Wien zwei Bewohner an einer CO-Vergiftung durch eine ungewartete Gastherme.",
		Statistic:    "Rund 500 CO-Unfälle pro Jahr in Österreich gehen auf ungewartete Gasthermen zurück.",
	},
	{
		ComponentType: "chimney", Jurisdiction: "AT",
		DeathRisk: true, InjuryRisk: true, InsuranceVoid: true, CriminalLiability: true,
		DamageMinEUR: 10000, DamageMaxEUR: 300000,
		WarningText:  "Der Rauchfangkehrertermin steht an.",
		DangerText:   "Die Kehrung ist überfällig. Rußablagerungen erhöhen das Kaminbrandrisiko deutlich.",
		CriticalText: "Kritisch überfällige Kehrung: Kaminbrandgefahr, die Feuerversicherung kann die Deckung verweigern.",
		LegalText:    "Verstoß gegen die Kehrordnung. Bei einem Brand drohen Regress der Versicherung und strafrechtliche Folgen.",
		RealCase:     "Ein Kaminbrand in der Steiermark 2022 verursachte 180.000 € Schaden; die Versicherung kürzte wegen versäumter Kehrtermine.",
		Statistic:    "Über 400 Kaminbrände jährlich in Österreich.",
	},
	{
		ComponentType: "fire_safety", Jurisdiction: "AT",
		DeathRisk: true, InjuryRisk: true, InsuranceVoid: true, CriminalLiability: true,
		DamageMinEUR: 5000, DamageMaxEUR: 500000,
		WarningText:  "Die Überprüfung der Feuerlöscher steht in den nächsten Wochen an.",
		DangerText:   "Die Feuerlöscherprüfung ist fast fällig. Ungeprüfte Löscher versagen im Ernstfall häufig.",
		CriticalText: "Prüffrist abgelaufen: Im Brandfall ist die Funktion nicht gewährleistet, der Versicherungsschutz wackelt.",
		LegalText:    "Die TRVB-Prüfpflicht ist verletzt. Im Schadensfall drohen Deckungsverlust und Haftung gegenüber Dritten.",
		Statistic:    "Jeder dritte nicht gewartete Feuerlöscher versagt im Einsatz.",
	},
	{
		ComponentType: "elevator", Jurisdiction: "AT",
		DeathRisk: true, InjuryRisk: true, InsuranceVoid: true, CriminalLiability: true,
		DamageMinEUR: 10000, DamageMaxEUR: 1000000,
		WarningText:  "Die jährliche Aufzugsüberprüfung steht an.",
		DangerText:   "Die Aufzugsprüfung ist fällig. Der Betrieb ohne gültige Prüfplakette ist unzulässig.",
		CriticalText: "Prüffrist überschritten: Der Aufzug darf nicht mehr betrieben werden, Personenschäden gehen zu Ihren Lasten.",
		LegalText:    "Verstoß gegen das Hebeanlagengesetz. Die Behörde kann die Stilllegung verfügen; bei Unfällen drohen Strafverfahren.",
	},
	{
		ComponentType: "electrical", Jurisdiction: "AT",
		DeathRisk: true, InjuryRisk: true, InsuranceVoid: true, CriminalLiability: false,
		DamageMinEUR: 2000, DamageMaxEUR: 400000,
		WarningText:  "Der E-Befund nähert sich dem Ablaufdatum.",
		DangerText:   "Der E-Befund ist abgelaufen. Elektrische Mängel bleiben unentdeckt.",
		CriticalText: "Lange abgelaufener E-Befund: erhöhtes Brandrisiko, Beweislast im Schadensfall liegt bei Ihnen.",
		LegalText:    "Ohne gültigen E-Befund gemäß ETG kann die Versicherung bei Elektrobränden die Leistung verweigern.",
		Statistic:    "Ein Drittel aller Brände in Österreich hat elektrische Ursachen.",
	},
	{
		ComponentType: "plumbing", Jurisdiction: "AT",
		DeathRisk: false, InjuryRisk: false, InsuranceVoid: true, CriminalLiability: false,
		DamageMinEUR: 1000, DamageMaxEUR: 100000,
		WarningText:  "Die Überprüfung der Wasserinstallation steht an.",
		DangerText:   "Die Installationsprüfung ist überfällig. Leckagen bleiben unbemerkt.",
		CriticalText: "Stark überfällige Prüfung: Wasserschäden werden von der Versicherung nur eingeschränkt ersetzt.",
		LegalText:    "Grobe Vernachlässigung der Instandhaltungspflicht. Die Wasserschadendeckung kann entfallen.",
		Statistic:    "Leitungswasserschäden sind die häufigste Schadensart in der Haushaltsversicherung.",
	},

	// Applies-everywhere fallbacks with reduced narrative
	{
		ComponentType: "heating", Jurisdiction: "",
		DeathRisk: true, InjuryRisk: true, InsuranceVoid: true,
		DamageMinEUR: 3000, DamageMaxEUR: 50000,
		DangerText:   "Die Heizungswartung ist überfällig.",
		CriticalText: "Die Heizungswartung ist kritisch überfällig.",
		LegalText:    "Die Wartungspflicht für Heizungsanlagen ist verletzt.",
	},
	{
		ComponentType: "fire_safety", Jurisdiction: "",
		DeathRisk: true, InjuryRisk: true, InsuranceVoid: true, CriminalLiability: true,
		DamageMinEUR: 5000, DamageMaxEUR: 500000,
		DangerText:   "Die Prüfung der Brandschutzeinrichtung ist fast fällig.",
		CriticalText: "Die Prüffrist der Brandschutzeinrichtung ist abgelaufen.",
		LegalText:    "Die Prüfpflicht für Brandschutzeinrichtungen ist verletzt.",
	},
}
