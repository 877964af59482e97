package handlers

import (
	"promessas-api/internal/core/services"
	"promessas-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ElectionHandler handles election endpoints
type ElectionHandler struct {
	electionService *services.ElectionService
}

// NewElectionHandler creates a new election handler
func NewElectionHandler(electionService *services.ElectionService) *ElectionHandler {
	return &ElectionHandler{electionService: electionService}
}

// CreateElectionRequest represents create election request
type CreateElectionRequest struct {
	Year        *int    `json:"year" example:"2026"`
	Description *string `json:"description"`
}

// List lists elections
// @Summary List elections
// @Tags Elections
// @Produce json
// @Success 200 {object} response.Response
// @Router /elections [get]
func (h *ElectionHandler) List(c *fiber.Ctx) error {
	elections, err := h.electionService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "", elections)
}

// Create creates an election
// @Summary Create election
// @Tags Elections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateElectionRequest true "Election data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /elections [post]
func (h *ElectionHandler) Create(c *fiber.Ctx) error {
	var req CreateElectionRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	election, err := h.electionService.Create(c.UserContext(), services.CreateElectionInput{
		Year:        req.Year,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "Eleição criada com sucesso.", election)
}
