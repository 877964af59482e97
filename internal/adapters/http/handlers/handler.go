package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"

	"promessas-api/internal/adapters/http/middleware"
	"promessas-api/internal/core/domain"
	"promessas-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Request parameter errors
var (
	errInvalidCandidateID = domain.NewValidationError("ID do candidato inválido.")
	errInvalidPromiseID   = domain.NewValidationError("ID da promessa inválido.")
	errInvalidOfficeID    = domain.NewValidationError("ID do cargo inválido.")
	errOfficeIDQuery      = domain.NewValidationError("Parâmetro officeId é obrigatório e deve ser numérico.")
	errElectionIDQuery    = domain.NewValidationError("Parâmetro electionId inválido.")
	errStateCodeQuery     = domain.NewValidationError("Parâmetro state_code inválido.")
	errCityIDQuery        = domain.NewValidationError("Parâmetro city_id inválido.")
	errCitiesStateCode    = domain.NewValidationError("Parâmetro state_code é obrigatório e deve ser numérico.")
)

// respondError maps domain errors to their status code.
// Anything else is logged and answered with a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	if de, ok := domain.AsError(err); ok {
		switch de.Kind {
		case domain.KindValidation:
			return response.BadRequest(c, de.Message)
		case domain.KindNotFound:
			return response.NotFound(c, de.Message)
		case domain.KindUnauthorized:
			return response.Unauthorized(c, de.Message)
		case domain.KindConflict:
			return response.Conflict(c, de.Message)
		}
	}

	log.Printf("❌ %s %s failed: %v", c.Method(), c.Path(), err)
	return response.InternalServerError(c)
}

// parseBody decodes the JSON body; a value of the wrong JSON type is reported
// as an invalid numeric field
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return domain.ErrInvalidNumericFields
		}
		return domain.ErrInvalidBody
	}
	return nil
}

// paramID reads a positive numeric path parameter
func paramID(c *fiber.Ctx, name string, invalid error) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, invalid
	}
	return uint(id), nil
}

// queryUint reads an optional numeric query parameter; empty means absent
func queryUint(c *fiber.Ctx, key string, invalid error) (*uint, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, invalid
	}
	id := uint(v)
	return &id, nil
}

func queryInt(c *fiber.Ctx, key string, invalid error) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalid
	}
	return &v, nil
}

// authUser returns the identity stored by the auth middleware
func authUser(c *fiber.Ctx) (domain.AuthUser, bool) {
	user, ok := c.Locals(middleware.UserKey).(domain.AuthUser)
	return user, ok
}
