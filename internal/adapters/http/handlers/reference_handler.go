package handlers

import (
	"promessas-api/internal/core/services"
	"promessas-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReferenceHandler serves states, cities and political parties
type ReferenceHandler struct {
	referenceService *services.ReferenceService
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(referenceService *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// ListStates lists all states
// @Summary List states
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Response
// @Router /states [get]
func (h *ReferenceHandler) ListStates(c *fiber.Ctx) error {
	states, err := h.referenceService.ListStates(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "", states)
}

// ListCities lists the cities of a state
// @Summary List cities
// @Tags Reference
// @Produce json
// @Param state_code query int true "State IBGE code"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /cities [get]
func (h *ReferenceHandler) ListCities(c *fiber.Ctx) error {
	stateCode, err := queryInt(c, "state_code", errCitiesStateCode)
	if err != nil {
		return respondError(c, err)
	}
	if stateCode == nil {
		return respondError(c, errCitiesStateCode)
	}

	cities, err := h.referenceService.ListCities(c.UserContext(), *stateCode)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "", cities)
}

// ListParties lists all political parties
// @Summary List political parties
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Response
// @Router /political-parties [get]
func (h *ReferenceHandler) ListParties(c *fiber.Ctx) error {
	parties, err := h.referenceService.ListParties(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "", parties)
}
