package domain

import "strings"

// OfficeType represents the electoral level of an office
type OfficeType string

const (
	OfficeTypeFederalEstadual OfficeType = "FEDERAL_ESTADUAL"
	OfficeTypeMunicipal       OfficeType = "MUNICIPAL"
)

// ParseOfficeType normalizes a user supplied office type (case-insensitive)
func ParseOfficeType(raw string) (OfficeType, bool) {
	switch OfficeType(strings.ToUpper(strings.TrimSpace(raw))) {
	case OfficeTypeFederalEstadual:
		return OfficeTypeFederalEstadual, true
	case OfficeTypeMunicipal:
		return OfficeTypeMunicipal, true
	}
	return "", false
}

// GeographyClass tells which location fields a candidate for an office carries.
// It is assigned once, when the office is created.
type GeographyClass string

const (
	GeographyNone         GeographyClass = "NO_GEOGRAPHY"
	GeographyCityRequired GeographyClass = "CITY_REQUIRED"
	GeographyStateOnly    GeographyClass = "STATE_ONLY"
	GeographyOptional     GeographyClass = "OPTIONAL"
)

// ParseGeographyClass validates a user supplied geography class
func ParseGeographyClass(raw string) (GeographyClass, bool) {
	switch GeographyClass(strings.ToUpper(strings.TrimSpace(raw))) {
	case GeographyNone:
		return GeographyNone, true
	case GeographyCityRequired:
		return GeographyCityRequired, true
	case GeographyStateOnly:
		return GeographyStateOnly, true
	case GeographyOptional:
		return GeographyOptional, true
	}
	return "", false
}

// Default office names seeded with the reference data. Their classes are
// fixed at seeding time; renaming an office later does not reclassify it.
var (
	noGeographyOffices  = []string{"Presidente"}
	cityRequiredOffices = []string{"Prefeito", "Vereador"}
	stateOnlyOffices    = []string{"Governador", "Senador", "Deputado Federal", "Deputado Estadual"}
)

// ClassifyOffice returns the default geography class for an office.
// Named sets win over the office type for the no-geography and city cases.
func ClassifyOffice(name string, officeType OfficeType) GeographyClass {
	switch {
	case contains(noGeographyOffices, name):
		return GeographyNone
	case officeType == OfficeTypeMunicipal || contains(cityRequiredOffices, name):
		return GeographyCityRequired
	case contains(stateOnlyOffices, name):
		return GeographyStateOnly
	default:
		return GeographyOptional
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// PromiseStatus represents the lifecycle of a campaign promise
type PromiseStatus string

const (
	PromiseNotStarted PromiseStatus = "NOT_STARTED"
	PromiseInProgress PromiseStatus = "IN_PROGRESS"
	PromiseCompleted  PromiseStatus = "COMPLETED"
)

// ParsePromiseStatus validates a promise status
func ParsePromiseStatus(raw string) (PromiseStatus, bool) {
	switch PromiseStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case PromiseNotStarted:
		return PromiseNotStarted, true
	case PromiseInProgress:
		return PromiseInProgress, true
	case PromiseCompleted:
		return PromiseCompleted, true
	}
	return "", false
}

// AuthUser is the identity carried by an access token
type AuthUser struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}
