// Package eligibility decides which location fields a candidate may carry
// for a given office geography class.
package eligibility

import (
	"context"
	"fmt"

	"promessas-api/internal/core/domain"
)

// FieldRule describes how a single location field is treated
type FieldRule string

const (
	FieldForbidden FieldRule = "forbidden"
	FieldRequired  FieldRule = "required"
	FieldOptional  FieldRule = "optional"
	// FieldDerived is filled from another field and may only be echoed back.
	FieldDerived FieldRule = "derived"
)

// Rules is the field table for one geography class
type Rules struct {
	StateCode FieldRule `json:"state_code"`
	CityID    FieldRule `json:"city_id"`
}

// RulesFor returns the location field table for a geography class
func RulesFor(class domain.GeographyClass) Rules {
	switch class {
	case domain.GeographyNone:
		return Rules{StateCode: FieldForbidden, CityID: FieldForbidden}
	case domain.GeographyCityRequired:
		return Rules{StateCode: FieldDerived, CityID: FieldRequired}
	case domain.GeographyStateOnly:
		return Rules{StateCode: FieldRequired, CityID: FieldForbidden}
	default:
		return Rules{StateCode: FieldOptional, CityID: FieldForbidden}
	}
}

// City is the part of a city the engine needs
type City struct {
	ID        uint
	StateCode int
}

// Locator looks up reference geography. Both methods return found=false
// with a nil error when the record does not exist.
type Locator interface {
	FindCity(ctx context.Context, id uint) (City, bool, error)
	StateExists(ctx context.Context, code int) (bool, error)
}

// Office is the part of an office the engine needs
type Office struct {
	Name  string
	Class domain.GeographyClass
}

// Request carries the caller supplied location fields; nil means absent
type Request struct {
	StateCode *int
	CityID    *uint
}

// Placement is the canonical location stored with the candidate
type Placement struct {
	StateCode *int
	CityID    *uint
}

// Resolve validates the request against the office class and computes the
// stored placement. The first matching class fully decides the outcome.
func Resolve(ctx context.Context, locator Locator, office Office, req Request) (Placement, error) {
	switch office.Class {
	case domain.GeographyNone:
		if req.StateCode != nil || req.CityID != nil {
			return Placement{}, domain.NewValidationError(
				fmt.Sprintf("Para %s não informe state_code nem city_id.", office.Name))
		}
		return Placement{}, nil

	case domain.GeographyCityRequired:
		if req.CityID == nil {
			return Placement{}, domain.ErrCityRequired
		}
		city, found, err := locator.FindCity(ctx, *req.CityID)
		if err != nil {
			return Placement{}, err
		}
		if !found {
			return Placement{}, domain.ErrCityNotFound
		}
		if req.StateCode != nil && *req.StateCode != city.StateCode {
			return Placement{}, domain.ErrStateCityMismatch
		}
		stateCode, cityID := city.StateCode, city.ID
		return Placement{StateCode: &stateCode, CityID: &cityID}, nil

	case domain.GeographyStateOnly:
		if req.StateCode == nil {
			return Placement{}, domain.ErrStateRequired
		}
		if req.CityID != nil {
			return Placement{}, domain.ErrCityNotAllowed
		}
		if err := ensureState(ctx, locator, *req.StateCode); err != nil {
			return Placement{}, err
		}
		stateCode := *req.StateCode
		return Placement{StateCode: &stateCode}, nil

	default:
		if req.CityID != nil {
			return Placement{}, domain.ErrCityOnlyMunicipal
		}
		if req.StateCode == nil {
			return Placement{}, nil
		}
		if err := ensureState(ctx, locator, *req.StateCode); err != nil {
			return Placement{}, err
		}
		stateCode := *req.StateCode
		return Placement{StateCode: &stateCode}, nil
	}
}

func ensureState(ctx context.Context, locator Locator, code int) error {
	exists, err := locator.StateExists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrStateNotFound
	}
	return nil
}
