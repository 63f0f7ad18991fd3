// Package handler exposes the engine's three public operations
// (Generate, AmortizationTable, ConfigHash) over HTTP.
package handler

import (
	"net/http"

	"tradeupengine/internal/engine"
	"tradeupengine/internal/module/tradeup/dto"
	"tradeupengine/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	engine *engine.Engine
	logger *zap.Logger
}

func NewHandler(engine *engine.Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	tradeup := router.Group("/api/v1/tradeup")
	{
		tradeup.POST("/generate", h.Generate)
		tradeup.POST("/amortization-table", h.AmortizationTable)
		tradeup.POST("/config-hash", h.ConfigHash)
	}
}

// Generate evaluates one customer against an inventory and returns the
// ranked, tiered offer set. The engine is called with a nil cancel
// channel, so a request's Generate call is never cancelled.
func (h *Handler) Generate(c *gin.Context) {
	var input dto.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	inventory := make([]engine.InventoryItem, len(input.Inventory))
	for i, item := range input.Inventory {
		inventory[i] = item.ToEngine()
	}

	result, err := h.engine.Generate(input.Customer.ToEngine(), inventory, input.Config.ToEngine(), nil)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "offers generated", dto.FromGenerateResult(result))
}

// AmortizationTable returns the level-payment schedule for an already
// computed offer.
func (h *Handler) AmortizationTable(c *gin.Context) {
	var input dto.AmortizationTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := engine.AmortizationTable(input.ToEngine())
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "amortization table computed", rows)
}

// ConfigHash returns the canonical hash of an EngineConfig, letting a
// host check whether a config it is about to submit already has a cached
// result without submitting the full inventory.
func (h *Handler) ConfigHash(c *gin.Context) {
	var input dto.ConfigHashInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := engine.ConfigHash(input.Config.ToEngine())
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "config hashed", dto.ConfigHashOutput{Hash: hash})
}
