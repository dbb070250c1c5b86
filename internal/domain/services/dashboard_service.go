package services

import (
	"errors"
	"time"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/risk"
	"immowaechter-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrInvalidTimeframe is returned for timeframes outside 7d/30d/90d/1y
var ErrInvalidTimeframe = errors.New("unsupported timeframe")

// CriticalComponent is one dashboard row for a component at critical or
// legal level
type CriticalComponent struct {
	ComponentID  uint   `json:"component_id"`
	PropertyID   uint   `json:"property_id"`
	PropertyName string `json:"property_name"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	DaysOverdue  int    `json:"days_overdue"`
	RiskLevel    string `json:"risk_level"`
	Emoji        string `json:"emoji"`
	Color        string `json:"color"`
}

// RiskSummary is the dashboard summary payload
type RiskSummary struct {
	Stats              risk.Stats          `json:"stats"`
	CriticalComponents []CriticalComponent `json:"critical_components"`
}

// InterfaceDashboardService defines the dashboard service interface
type InterfaceDashboardService interface {
	RiskSummary(ownerID uint, asOf time.Time) (*RiskSummary, error)
	RiskTrend(ownerID uint, propertyID *uint, timeframe string, asOf time.Time) ([]risk.TrendPoint, error)
}

// DashboardService aggregates per-component risk into portfolio views
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
	Risk   InterfaceRiskService
	Redis  *RedisService
}

// Cache TTLs for the dashboard payloads
const (
	summaryCacheTTL = 1 * time.Minute
	trendCacheTTL   = 10 * time.Minute
)

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB, cfg *config.Config, riskService InterfaceRiskService, redisService *RedisService) InterfaceDashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
		Risk:   riskService,
		Redis:  redisService,
	}
}

// 1. RiskSummary counts the owner's components per risk level and lists
// the critical ones. Levels are evaluated live against the as-of instant,
// so a stale cached column never hides an escalation. Cache errors are
// treated as misses.
func (s *DashboardService) RiskSummary(ownerID uint, asOf time.Time) (*RiskSummary, error) {
	if s.Redis != nil {
		var cached RiskSummary
		if err := s.Redis.GetRiskSummary(ownerID, &cached); err == nil {
			return &cached, nil
		}
	}

	var properties []models.Property
	if err := s.DB.Preload("Components").Where("owner_id = ?", ownerID).
		Find(&properties).Error; err != nil {
		return nil, err
	}

	var levels []risk.Level
	var critical []CriticalComponent
	for _, property := range properties {
		jurisdiction := property.Jurisdiction
		if jurisdiction == "" {
			jurisdiction = s.Config.DefaultJurisdiction
		}
		for _, component := range property.Components {
			componentType, known := risk.NormalizeType(component.Type)
			if !known {
				config.Warning("component %d has unknown type %q, using generic profile", component.ID, component.Type)
			}
			interval := risk.IntervalDaysFor(componentType, jurisdiction)
			daysOverdue := risk.DaysOverdue(component.LastMaintenance, interval, asOf)
			level := risk.LevelFor(componentType, daysOverdue, jurisdiction)
			levels = append(levels, level)

			if level >= risk.LevelCritical {
				display := level.Display()
				critical = append(critical, CriticalComponent{
					ComponentID:  component.ID,
					PropertyID:   property.ID,
					PropertyName: property.Name,
					Type:         component.Type,
					Name:         component.DisplayName(),
					DaysOverdue:  daysOverdue,
					RiskLevel:    level.String(),
					Emoji:        display.Emoji,
					Color:        display.Color,
				})
			}
		}
	}

	summary := &RiskSummary{
		Stats:              risk.Summarize(levels),
		CriticalComponents: critical,
	}

	if s.Redis != nil {
		if err := s.Redis.CacheRiskSummary(ownerID, summary, summaryCacheTTL); err != nil {
			config.Warning("failed to cache risk summary for owner %d: %v", ownerID, err)
		}
	}
	return summary, nil
}

// 2. RiskTrend loads the snapshot history for the requested window and
// hands it to the pure trend bucketing. propertyID nil means the whole
// portfolio.
func (s *DashboardService) RiskTrend(ownerID uint, propertyID *uint, timeframe string, asOf time.Time) ([]risk.TrendPoint, error) {
	windowDays := risk.WindowDays(timeframe)
	if windowDays == 0 {
		return nil, ErrInvalidTimeframe
	}

	cacheProperty := uint(0)
	if propertyID != nil {
		cacheProperty = *propertyID
	}
	if s.Redis != nil {
		var cached []risk.TrendPoint
		if err := s.Redis.GetRiskTrend(ownerID, cacheProperty, timeframe, &cached); err == nil {
			return cached, nil
		}
	}

	since := asOf.AddDate(0, 0, -windowDays)
	query := s.DB.Where("owner_id = ? AND date > ?", ownerID, since)
	if propertyID == nil {
		query = query.Where("property_id IS NULL")
	} else {
		query = query.Where("property_id = ?", *propertyID)
	}

	var snapshots []models.RiskSnapshot
	if err := query.Order("date ASC").Find(&snapshots).Error; err != nil {
		return nil, err
	}

	history := make([]risk.Snapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		history = append(history, risk.Snapshot{
			Date:     snapshot.Date,
			Critical: snapshot.CriticalCount,
			Legal:    snapshot.LegalCount,
		})
	}

	series := risk.Trend(history, windowDays, asOf)

	if s.Redis != nil {
		if err := s.Redis.CacheRiskTrend(ownerID, cacheProperty, timeframe, series, trendCacheTTL); err != nil {
			config.Warning("failed to cache risk trend for owner %d: %v", ownerID, err)
		}
	}
	return series, nil
}
