package handlers

import (
	"promessas-api/internal/core/services"
	"promessas-api/internal/pkg/nullable"
	"promessas-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OfficeHandler handles office endpoints
type OfficeHandler struct {
	officeService *services.OfficeService
}

// NewOfficeHandler creates a new office handler
func NewOfficeHandler(officeService *services.OfficeService) *OfficeHandler {
	return &OfficeHandler{officeService: officeService}
}

// CreateOfficeRequest represents create office request
type CreateOfficeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Type        string  `json:"type" example:"MUNICIPAL"`
	Geography   string  `json:"geography" example:"CITY_REQUIRED"`
}

// UpdateOfficeRequest represents a partial office update
type UpdateOfficeRequest struct {
	Name        nullable.Field[string] `json:"name" swaggertype:"string"`
	Description nullable.Field[string] `json:"description" swaggertype:"string"`
}

// List lists offices
// @Summary List offices
// @Description Offices with the location fields their candidates accept
// @Tags Offices
// @Produce json
// @Param type query string false "FEDERAL_ESTADUAL or MUNICIPAL"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /offices [get]
func (h *OfficeHandler) List(c *fiber.Ctx) error {
	offices, err := h.officeService.List(c.UserContext(), c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "", offices)
}

// Create creates an office
// @Summary Create office
// @Tags Offices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateOfficeRequest true "Office data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /offices [post]
func (h *OfficeHandler) Create(c *fiber.Ctx) error {
	var req CreateOfficeRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	office, err := h.officeService.Create(c.UserContext(), services.CreateOfficeInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Geography:   req.Geography,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "Cargo criado com sucesso.", office)
}

// Update renames an office or changes its description
// @Summary Update office
// @Description The geography class is kept when the office is renamed
// @Tags Offices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param officeId path int true "Office ID"
// @Param body body UpdateOfficeRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /offices/{officeId} [patch]
func (h *OfficeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "officeId", errInvalidOfficeID)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateOfficeRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	office, err := h.officeService.Update(c.UserContext(), id, services.UpdateOfficeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Cargo atualizado com sucesso.", office)
}
