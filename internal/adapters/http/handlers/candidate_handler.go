package handlers

import (
	"promessas-api/internal/core/services"
	"promessas-api/internal/pkg/pagination"
	"promessas-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CandidateHandler handles candidate endpoints
type CandidateHandler struct {
	candidateService *services.CandidateService
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(candidateService *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService}
}

// CreateCandidateRequest represents create candidate request.
// Omitted and null location fields are treated the same.
type CreateCandidateRequest struct {
	Name             string `json:"name"`
	Number           *int   `json:"number"`
	PoliticalPartyID *uint  `json:"political_party_id"`
	ElectionID       *uint  `json:"election_id"`
	OfficeID         *uint  `json:"office_id"`
	StateCode        *int   `json:"state_code"`
	CityID           *uint  `json:"city_id"`
}

// List lists candidates for an office
// @Summary List candidates
// @Tags Candidates
// @Produce json
// @Param officeId query int true "Office ID"
// @Param electionId query int false "Election ID"
// @Param state_code query int false "State IBGE code"
// @Param city_id query int false "City ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	officeID, err := queryUint(c, "officeId", errOfficeIDQuery)
	if err != nil {
		return respondError(c, err)
	}
	if officeID == nil {
		return respondError(c, errOfficeIDQuery)
	}
	electionID, err := queryUint(c, "electionId", errElectionIDQuery)
	if err != nil {
		return respondError(c, err)
	}
	stateCode, err := queryInt(c, "state_code", errStateCodeQuery)
	if err != nil {
		return respondError(c, err)
	}
	cityID, err := queryUint(c, "city_id", errCityIDQuery)
	if err != nil {
		return respondError(c, err)
	}

	params := pagination.GetParams(c)
	result, err := h.candidateService.List(c.UserContext(), services.ListCandidatesInput{
		OfficeID:   *officeID,
		ElectionID: electionID,
		StateCode:  stateCode,
		CityID:     cityID,
		Page:       params.Page,
		Limit:      params.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "", result)
}

// Create creates a candidate after checking its location against the office
// @Summary Create candidate
// @Description Location fields must match the office geography class
// @Tags Candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCandidateRequest true "Candidate data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var req CreateCandidateRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	candidate, err := h.candidateService.Create(c.UserContext(), services.CreateCandidateInput{
		Name:             req.Name,
		Number:           req.Number,
		PoliticalPartyID: req.PoliticalPartyID,
		ElectionID:       req.ElectionID,
		OfficeID:         req.OfficeID,
		StateCode:        req.StateCode,
		CityID:           req.CityID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "Candidato criado com sucesso.", candidate)
}
