package controllers

import (
	"time"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/services/container"
	"immowaechter-http-service/internal/error/code"
	"immowaechter-http-service/internal/error/response"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfaceAdminController defines the admin controller interface
type InterfaceAdminController interface {
	GetOwners()
	GetWaitlistEntries()
	RecomputeRisk()
	WriteSnapshots()
	GetConsequences()
	CreateConsequence()
	UpdateConsequence()
	DeleteConsequence()
}

// AdminController handles administrative requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// ConsequenceRequest represents a consequence record create or update request
type ConsequenceRequest struct {
	ComponentType     string `json:"component_type" binding:"required" example:"heating"`
	Jurisdiction      string `json:"jurisdiction" example:"AT"`
	DeathRisk         bool   `json:"death_risk"`
	InjuryRisk        bool   `json:"injury_risk"`
	InsuranceVoid     bool   `json:"insurance_void"`
	CriminalLiability bool   `json:"criminal_liability"`
	DamageMinEUR      int    `json:"damage_min_eur" example:"5000"`
	DamageMaxEUR      int    `json:"damage_max_eur" example:"50000"`
	WarningText       string `json:"warning_text"`
	DangerText        string `json:"danger_text"`
	CriticalText      string `json:"critical_text"`
	LegalText         string `json:"legal_text"`
	RealCase          string `json:"real_case"`
	Statistic         string `json:"statistic"`
}

// HandleAdminFunc returns a Gin handler dispatching admin requests
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getOwners":
			controller.GetOwners()
		case "getWaitlistEntries":
			controller.GetWaitlistEntries()
		case "recomputeRisk":
			controller.RecomputeRisk()
		case "writeSnapshots":
			controller.WriteSnapshots()
		case "getConsequences":
			controller.GetConsequences()
		case "createConsequence":
			controller.CreateConsequence()
		case "updateConsequence":
			controller.UpdateConsequence()
		case "deleteConsequence":
			controller.DeleteConsequence()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Ungültige Methode", nil)
		}
	}
}

// 1. GetOwners lists all registered owner accounts
// @Summary      List owners
// @Description  List all registered owner accounts
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /admin/owners [get]
func (c *AdminController) GetOwners() {
	page, pageSize := paginationParams(c.Ctx)

	ownerService := c.Container.GetOwnerService()
	owners, total, err := ownerService.GetAllOwners(page, pageSize)
	if err != nil {
		config.Error("failed to load owner accounts: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"data":      owners,
	})
}

// 2. GetWaitlistEntries lists all waitlist signups
// @Summary      List waitlist entries
// @Description  List all waitlist signups including their confirmation state
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /admin/waitlist [get]
func (c *AdminController) GetWaitlistEntries() {
	page, pageSize := paginationParams(c.Ctx)

	waitlistService := c.Container.GetWaitlistService()
	entries, total, err := waitlistService.GetAllEntries(page, pageSize)
	if err != nil {
		config.Error("failed to load waitlist entries: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"data":      entries,
	})
}

// 3. RecomputeRisk re-evaluates every component and sends due notifications
// @Summary      Recompute risk levels
// @Description  Re-evaluate every component, refresh cached levels and dispatch notifications for transitions
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /admin/risk/recompute [post]
func (c *AdminController) RecomputeRisk() {
	riskService := c.Container.GetRiskService()
	changed, err := riskService.RecomputeAll(time.Now())
	if err != nil {
		config.Error("risk recompute failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"changed": changed})
}

// 4. WriteSnapshots persists today's risk counts for the trend history
// @Summary      Write daily snapshots
// @Description  Persist per-property and portfolio risk counts for today, idempotent per day
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /admin/risk/snapshots [post]
func (c *AdminController) WriteSnapshots() {
	riskService := c.Container.GetRiskService()
	if err := riskService.WriteDailySnapshots(time.Now()); err != nil {
		config.Error("failed to write daily risk snapshots: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"written": true})
}

// 5. GetConsequences lists the consequence reference records
// @Summary      List consequence records
// @Description  List the consequence reference data for all component types and jurisdictions
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /admin/consequences [get]
func (c *AdminController) GetConsequences() {
	page, pageSize := paginationParams(c.Ctx)

	consequenceService := c.Container.GetConsequenceService()
	records, total, err := consequenceService.GetAllRecords(page, pageSize)
	if err != nil {
		config.Error("failed to load consequence records: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"data":      records,
	})
}

// 6. CreateConsequence adds a consequence reference record
// @Summary      Create consequence record
// @Description  Add a consequence record for a component type and jurisdiction
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        record body ConsequenceRequest true "Consequence record"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /admin/consequences [post]
func (c *AdminController) CreateConsequence() {
	var req ConsequenceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anfrageparameter: "+err.Error(), nil)
		return
	}

	record := &models.ConsequenceRecord{
		ComponentType:     req.ComponentType,
		Jurisdiction:      req.Jurisdiction,
		DeathRisk:         req.DeathRisk,
		InjuryRisk:        req.InjuryRisk,
		InsuranceVoid:     req.InsuranceVoid,
		CriminalLiability: req.CriminalLiability,
		DamageMinEUR:      req.DamageMinEUR,
		DamageMaxEUR:      req.DamageMaxEUR,
		WarningText:       req.WarningText,
		DangerText:        req.DangerText,
		CriticalText:      req.CriticalText,
		LegalText:         req.LegalText,
		RealCase:          req.RealCase,
		Statistic:         req.Statistic,
	}

	consequenceService := c.Container.GetConsequenceService()
	if err := consequenceService.CreateRecord(record); err != nil {
		config.Error("failed to create consequence record: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, record)
}

// 7. UpdateConsequence updates a consequence reference record
// @Summary      Update consequence record
// @Description  Update one consequence record by ID
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Record ID"
// @Param        record body ConsequenceRequest true "Consequence record"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /admin/consequences/{id} [put]
func (c *AdminController) UpdateConsequence() {
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Datensatz-ID")
		return
	}

	var req ConsequenceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anfrageparameter: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{
		"component_type":     req.ComponentType,
		"jurisdiction":       req.Jurisdiction,
		"death_risk":         req.DeathRisk,
		"injury_risk":        req.InjuryRisk,
		"insurance_void":     req.InsuranceVoid,
		"criminal_liability": req.CriminalLiability,
		"damage_min_eur":     req.DamageMinEUR,
		"damage_max_eur":     req.DamageMaxEUR,
		"warning_text":       req.WarningText,
		"danger_text":        req.DangerText,
		"critical_text":      req.CriticalText,
		"legal_text":         req.LegalText,
		"real_case":          req.RealCase,
		"statistic":          req.Statistic,
	}

	consequenceService := c.Container.GetConsequenceService()
	record, err := consequenceService.UpdateRecord(id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrConsequenceNotFound, "Datensatz nicht gefunden", nil)
		return
	}

	response.Success(c.Ctx, record)
}

// 8. DeleteConsequence removes a consequence reference record
// @Summary      Delete consequence record
// @Description  Delete one consequence record by ID
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Record ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /admin/consequences/{id} [delete]
func (c *AdminController) DeleteConsequence() {
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Datensatz-ID")
		return
	}

	consequenceService := c.Container.GetConsequenceService()
	if err := consequenceService.DeleteRecord(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrConsequenceNotFound, "Datensatz nicht gefunden", nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": id})
}
