package handlers

import (
	"promessas-api/internal/core/services"
	"promessas-api/internal/pkg/nullable"
	"promessas-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PromiseHandler handles promise and comment endpoints
type PromiseHandler struct {
	promiseService *services.PromiseService
}

// NewPromiseHandler creates a new promise handler
func NewPromiseHandler(promiseService *services.PromiseService) *PromiseHandler {
	return &PromiseHandler{promiseService: promiseService}
}

// CreatePromiseRequest represents create promise request
type CreatePromiseRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" example:"IN_PROGRESS"`
	Progress    *float64 `json:"progress" example:"40"`
}

// UpdatePromiseRequest represents a partial promise update
type UpdatePromiseRequest struct {
	Title       nullable.Field[string]  `json:"title" swaggertype:"string"`
	Description nullable.Field[string]  `json:"description" swaggertype:"string"`
	Status      nullable.Field[string]  `json:"status" swaggertype:"string"`
	Progress    nullable.Field[float64] `json:"progress" swaggertype:"number"`
}

// CreateCommentRequest represents create comment request
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// ListByCandidate lists a candidate's promises
// @Summary List promises
// @Tags Promises
// @Produce json
// @Param candidateId path int true "Candidate ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /candidates/{candidateId}/promises [get]
func (h *PromiseHandler) ListByCandidate(c *fiber.Ctx) error {
	candidateID, err := paramID(c, "candidateId", errInvalidCandidateID)
	if err != nil {
		return respondError(c, err)
	}

	promises, err := h.promiseService.ListByCandidate(c.UserContext(), candidateID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "", promises)
}

// Create adds a promise to a candidate
// @Summary Create promise
// @Tags Promises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param candidateId path int true "Candidate ID"
// @Param body body CreatePromiseRequest true "Promise data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /candidates/{candidateId}/promises [post]
func (h *PromiseHandler) Create(c *fiber.Ctx) error {
	candidateID, err := paramID(c, "candidateId", errInvalidCandidateID)
	if err != nil {
		return respondError(c, err)
	}

	var req CreatePromiseRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	promise, err := h.promiseService.Create(c.UserContext(), candidateID, services.CreatePromiseInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Progress:    req.Progress,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "Promessa criada com sucesso.", promise)
}

// Update changes a promise
// @Summary Update promise
// @Description A null status resets to NOT_STARTED; a null progress is ignored
// @Tags Promises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param promiseId path int true "Promise ID"
// @Param body body UpdatePromiseRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /promises/{promiseId} [patch]
func (h *PromiseHandler) Update(c *fiber.Ctx) error {
	promiseID, err := paramID(c, "promiseId", errInvalidPromiseID)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdatePromiseRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	promise, err := h.promiseService.Update(c.UserContext(), promiseID, services.UpdatePromiseInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Progress:    req.Progress,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Promessa atualizada com sucesso.", promise)
}

// AddComment appends a comment to a promise
// @Summary Comment on promise
// @Tags Promises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param promiseId path int true "Promise ID"
// @Param body body CreateCommentRequest true "Comment"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /promises/{promiseId}/comments [post]
func (h *PromiseHandler) AddComment(c *fiber.Ctx) error {
	promiseID, err := paramID(c, "promiseId", errInvalidPromiseID)
	if err != nil {
		return respondError(c, err)
	}

	var req CreateCommentRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	comment, err := h.promiseService.AddComment(c.UserContext(), promiseID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "Comentário adicionado com sucesso.", comment)
}
