package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// InterfaceExportService defines the export service interface
type InterfaceExportService interface {
	BuildXLSX(ownerID, propertyID uint) ([]byte, string, error)
	BuildCSV(ownerID, propertyID uint) ([]byte, string, error)
}

// ExportService produces downloadable maintenance reports
type ExportService struct {
	DB       *gorm.DB
	Config   *config.Config
	Property InterfacePropertyService
}

// NewExportService creates a new export service
func NewExportService(db *gorm.DB, cfg *config.Config, property InterfacePropertyService) InterfaceExportService {
	return &ExportService{
		DB:       db,
		Config:   cfg,
		Property: property,
	}
}

var componentHeader = []string{"Komponente", "Typ", "Letzte Wartung", "Nächste Wartung", "Tage überfällig", "Risikostufe"}
var maintenanceHeader = []string{"Komponente", "Durchgeführt am", "Notiz"}

// 1. BuildXLSX renders an Excel workbook with a component sheet and a
// maintenance history sheet
func (s *ExportService) BuildXLSX(ownerID, propertyID uint) ([]byte, string, error) {
	property, err := s.Property.GetPropertyByID(propertyID, ownerID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const componentsSheet = "Komponenten"
	const maintenanceSheet = "Wartungen"

	f.SetSheetName(f.GetSheetName(0), componentsSheet)
	for col, title := range componentHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(componentsSheet, cell, title)
	}
	for row, component := range property.Components {
		values := []interface{}{
			component.DisplayName(),
			component.Type,
			component.LastMaintenance.Format("02.01.2006"),
			component.NextMaintenance.Format("02.01.2006"),
			component.DaysOverdue,
			component.RiskLevel,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(componentsSheet, cell, value)
		}
	}

	if _, err := f.NewSheet(maintenanceSheet); err != nil {
		return nil, "", err
	}
	for col, title := range maintenanceHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(maintenanceSheet, cell, title)
	}
	logs, err := s.maintenanceLogs(property)
	if err != nil {
		return nil, "", err
	}
	for row, entry := range logs {
		values := []interface{}{
			entry.componentName,
			entry.log.CompletedAt.Format("02.01.2006"),
			entry.log.Note,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(maintenanceSheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), exportFileName(property, "xlsx"), nil
}

// 2. BuildCSV renders the component table as CSV
func (s *ExportService) BuildCSV(ownerID, propertyID uint) ([]byte, string, error) {
	property, err := s.Property.GetPropertyByID(propertyID, ownerID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(componentHeader); err != nil {
		return nil, "", err
	}
	for _, component := range property.Components {
		record := []string{
			component.DisplayName(),
			component.Type,
			component.LastMaintenance.Format("02.01.2006"),
			component.NextMaintenance.Format("02.01.2006"),
			strconv.Itoa(component.DaysOverdue),
			component.RiskLevel,
		}
		if err := writer.Write(record); err != nil {
			return nil, "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), exportFileName(property, "csv"), nil
}

type maintenanceRow struct {
	componentName string
	log           models.MaintenanceLog
}

func (s *ExportService) maintenanceLogs(property *models.Property) ([]maintenanceRow, error) {
	var rows []maintenanceRow
	for _, component := range property.Components {
		var logs []models.MaintenanceLog
		if err := s.DB.Where("component_id = ?", component.ID).
			Order("completed_at DESC").Find(&logs).Error; err != nil {
			return nil, err
		}
		for _, log := range logs {
			rows = append(rows, maintenanceRow{componentName: component.DisplayName(), log: log})
		}
	}
	return rows, nil
}

func exportFileName(property *models.Property, extension string) string {
	return fmt.Sprintf("wartungsbericht_%d.%s", property.ID, extension)
}
