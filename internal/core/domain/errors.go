package domain

import "errors"

// ErrorKind classifies domain errors so the HTTP boundary can map them
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindUnauthorized
	KindConflict
)

// Error is a caller-facing domain error with a descriptive message
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidationError creates a caller-fixable input error
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates an error for a missing referenced entity
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// AsError extracts a domain error from an error chain
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind == KindValidation
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind == KindNotFound
}

// Lookup errors
var (
	ErrElectionNotFound  = NewNotFoundError("Eleição não encontrada.")
	ErrPartyNotFound     = NewNotFoundError("Partido não encontrado.")
	ErrOfficeNotFound    = NewNotFoundError("Cargo (office) não encontrado.")
	ErrOfficeNotFoundUpd = NewNotFoundError("Cargo não encontrado.")
	ErrCityNotFound      = NewNotFoundError("Cidade não encontrada.")
	ErrStateNotFound     = NewNotFoundError("Estado não encontrado.")
	ErrCandidateNotFound = NewNotFoundError("Candidato não encontrado.")
	ErrPromiseNotFound   = NewNotFoundError("Promessa não encontrada.")
)

// Eligibility errors
var (
	ErrCityRequired      = NewValidationError("Para cargos municipais, city_id é obrigatório.")
	ErrStateCityMismatch = NewValidationError("state_code informado não corresponde à cidade.")
	ErrStateRequired     = NewValidationError("Para este cargo, state_code é obrigatório e city_id não é permitido.")
	ErrCityNotAllowed    = NewValidationError("city_id não é permitido para este cargo.")
	ErrCityOnlyMunicipal = NewValidationError("city_id só é permitido para cargos municipais.")
)

// Input errors
var (
	ErrNameRequired         = NewValidationError("Nome é obrigatório.")
	ErrOfficeIDRequired     = NewValidationError("office_id é obrigatório.")
	ErrNumberRequired       = NewValidationError("Número do candidato é obrigatório e deve ser numérico.")
	ErrInvalidNumericFields = NewValidationError("Campos numéricos inválidos.")
	ErrInvalidBody          = NewValidationError("Corpo da requisição inválido.")
	ErrProgressOutOfRange   = NewValidationError("O progresso deve estar entre 0 e 100.")
	ErrInvalidPromiseStatus = NewValidationError("Status da promessa inválido. Use NOT_STARTED, IN_PROGRESS ou COMPLETED.")
	ErrPromiseTitleRequired = NewValidationError("Título da promessa é obrigatório.")
	ErrNoFieldsToUpdate     = NewValidationError("Nenhum campo para atualizar foi enviado.")
	ErrCommentRequired      = NewValidationError("Comentário é obrigatório.")
	ErrOfficeNameRequired   = NewValidationError("Nome do cargo é obrigatório.")
	ErrOfficeNoFields       = NewValidationError("Informe ao menos um campo para atualizar.")
	ErrInvalidOfficeType    = NewValidationError("Tipo de eleição inválido. Use FEDERAL_ESTADUAL ou MUNICIPAL.")
	ErrInvalidGeography     = NewValidationError("Classe geográfica inválida. Use NO_GEOGRAPHY, CITY_REQUIRED, STATE_ONLY ou OPTIONAL.")
	ErrOfficeDuplicate      = NewValidationError("Não foi possível criar o cargo. Verifique se o nome já existe.")
	ErrOfficeNameTaken      = NewValidationError("Já existe um cargo com este nome.")
	ErrElectionYearRequired = NewValidationError("Ano da eleição é obrigatório.")
	ErrElectionDuplicate    = NewValidationError("Não foi possível criar a eleição. Verifique se o ano já existe.")
)

// Auth errors
var (
	ErrRegisterFieldsRequired = NewValidationError("Nome, email e senha são obrigatórios.")
	ErrPasswordTooShort       = NewValidationError("A senha deve ter pelo menos 6 caracteres.")
	ErrLoginFieldsRequired    = NewValidationError("Email e senha são obrigatórios.")
	ErrEmailAlreadyExists     = &Error{Kind: KindConflict, Message: "Email já cadastrado."}
	ErrInvalidCredentials     = &Error{Kind: KindUnauthorized, Message: "Credenciais inválidas."}
	ErrTokenMissing           = &Error{Kind: KindUnauthorized, Message: "Token ausente ou inválido."}
	ErrTokenInvalid           = &Error{Kind: KindUnauthorized, Message: "Token inválido ou expirado."}
)
