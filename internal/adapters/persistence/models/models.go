package models

import (
	"time"

	"promessas-api/internal/core/domain"
	"promessas-api/internal/core/eligibility"

	"gorm.io/gorm"
)

// ============================================================
// Auth
// ============================================================

// User represents users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// ============================================================
// Reference geography
// ============================================================

// State represents states table, keyed by the IBGE UF code
type State struct {
	Code         int    `gorm:"primaryKey;autoIncrement:false" json:"code"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Abbreviation string `gorm:"uniqueIndex;size:2;not null" json:"abbreviation"`
}

func (State) TableName() string {
	return "states"
}

// StateResponse DTO
type StateResponse struct {
	Code         int    `json:"code"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

func (s *State) ToResponse() StateResponse {
	return StateResponse{
		Code:         s.Code,
		Name:         s.Name,
		Abbreviation: s.Abbreviation,
	}
}

// City represents cities table
type City struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	IBGECode  int    `gorm:"uniqueIndex;not null" json:"ibge_code"`
	Name      string `gorm:"size:150;not null;index" json:"name"`
	StateCode int    `gorm:"index;not null" json:"state_code"`
	State     State  `gorm:"foreignKey:StateCode;references:Code" json:"-"`
}

func (City) TableName() string {
	return "cities"
}

// CityResponse DTO
type CityResponse struct {
	ID        uint   `json:"id"`
	IBGECode  int    `json:"ibge_code"`
	Name      string `json:"name"`
	StateCode int    `json:"state_code"`
}

func (c *City) ToResponse() CityResponse {
	return CityResponse{
		ID:        c.ID,
		IBGECode:  c.IBGECode,
		Name:      c.Name,
		StateCode: c.StateCode,
	}
}

// ============================================================
// Electoral entities
// ============================================================

// PoliticalParty represents political_parties table
type PoliticalParty struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:150;not null" json:"name"`
	Acronym string `gorm:"size:20;not null" json:"acronym"`
	Number  int    `gorm:"uniqueIndex;not null" json:"number"`
}

func (PoliticalParty) TableName() string {
	return "political_parties"
}

// PoliticalPartyResponse DTO
type PoliticalPartyResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Acronym string `json:"acronym"`
	Number  int    `json:"number"`
}

func (p *PoliticalParty) ToResponse() PoliticalPartyResponse {
	return PoliticalPartyResponse{
		ID:      p.ID,
		Name:    p.Name,
		Acronym: p.Acronym,
		Number:  p.Number,
	}
}

// Election represents elections table
type Election struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Year        int       `gorm:"uniqueIndex;not null" json:"year"`
	Description *string   `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Election) TableName() string {
	return "elections"
}

// ElectionResponse DTO
type ElectionResponse struct {
	ID          uint      `json:"id"`
	Year        int       `json:"year"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *Election) ToResponse() ElectionResponse {
	return ElectionResponse{
		ID:          e.ID,
		Year:        e.Year,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// Office represents offices table.
// Geography is fixed at creation and never recomputed from the name.
type Office struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description *string   `gorm:"size:255" json:"description"`
	Type        string    `gorm:"size:20;not null;default:'FEDERAL_ESTADUAL';index" json:"type"`
	Geography   string    `gorm:"size:20;not null;default:''" json:"geography"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Office) TableName() string {
	return "offices"
}

// Class returns the stored geography class. Rows created before the column
// existed hold an empty value and fall back to the default classification.
func (o *Office) Class() domain.GeographyClass {
	if class, ok := domain.ParseGeographyClass(o.Geography); ok {
		return class
	}
	return domain.ClassifyOffice(o.Name, domain.OfficeType(o.Type))
}

// OfficeResponse DTO
type OfficeResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Type        string            `json:"type"`
	Geography   string            `json:"geography"`
	Location    eligibility.Rules `json:"location_rules"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (o *Office) ToResponse() OfficeResponse {
	class := o.Class()
	return OfficeResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Type:        o.Type,
		Geography:   string(class),
		Location:    eligibility.RulesFor(class),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// Candidate represents candidates table.
// Only the location fields legal for the office geography are set.
type Candidate struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"size:150;not null" json:"name"`
	Number           int             `gorm:"not null" json:"number"`
	PoliticalPartyID *uint           `gorm:"index" json:"political_party_id"`
	ElectionID       *uint           `gorm:"index" json:"election_id"`
	OfficeID         uint            `gorm:"index;not null" json:"office_id"`
	StateCode        *int            `gorm:"index" json:"state_code"`
	CityID           *uint           `gorm:"index" json:"city_id"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	PoliticalParty   *PoliticalParty `gorm:"foreignKey:PoliticalPartyID" json:"-"`
	Election         *Election       `gorm:"foreignKey:ElectionID" json:"-"`
	Office           Office          `gorm:"foreignKey:OfficeID" json:"-"`
	State            *State          `gorm:"foreignKey:StateCode;references:Code" json:"-"`
	City             *City           `gorm:"foreignKey:CityID" json:"-"`

	// Read-only aggregates filled by list queries
	PromisesCount int64 `gorm:"->;-:migration" json:"-"`
	CommentsCount int64 `gorm:"->;-:migration" json:"-"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// CandidateResponse DTO
type CandidateResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Number           int       `json:"number"`
	PoliticalPartyID *uint     `json:"political_party_id"`
	PoliticalParty   *string   `json:"political_party"`
	OfficeID         uint      `json:"office_id"`
	Office           string    `json:"office"`
	ElectionID       *uint     `json:"election_id"`
	ElectionYear     *int      `json:"election_year"`
	StateCode        *int      `json:"state_code"`
	City             *string   `json:"city"`
	CityID           *uint     `json:"city_id"`
	PromisesCount    int64     `json:"promises_count"`
	CommentsCount    int64     `json:"comments_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (c *Candidate) ToResponse() CandidateResponse {
	resp := CandidateResponse{
		ID:               c.ID,
		Name:             c.Name,
		Number:           c.Number,
		PoliticalPartyID: c.PoliticalPartyID,
		OfficeID:         c.OfficeID,
		Office:           c.Office.Name,
		ElectionID:       c.ElectionID,
		StateCode:        c.StateCode,
		CityID:           c.CityID,
		PromisesCount:    c.PromisesCount,
		CommentsCount:    c.CommentsCount,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if c.PoliticalParty != nil {
		resp.PoliticalParty = &c.PoliticalParty.Acronym
	}
	if c.Election != nil {
		resp.ElectionYear = &c.Election.Year
	}
	if c.City != nil {
		resp.City = &c.City.Name
	}
	return resp
}

// ============================================================
// Promises
// ============================================================

// Promise represents promises table
type Promise struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	CandidateID uint             `gorm:"index;not null" json:"candidate_id"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description *string          `gorm:"type:text" json:"description"`
	Status      string           `gorm:"size:20;not null;default:'NOT_STARTED'" json:"status"`
	Progress    int              `gorm:"not null;default:0" json:"progress"`
	CreatedAt   time.Time        `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	Candidate   Candidate        `gorm:"foreignKey:CandidateID" json:"-"`
	Comments    []PromiseComment `gorm:"foreignKey:PromiseID" json:"-"`
}

func (Promise) TableName() string {
	return "promises"
}

// PromiseResponse DTO
type PromiseResponse struct {
	ID            uint                     `json:"id"`
	CandidateID   uint                     `json:"candidate_id"`
	Title         string                   `json:"title"`
	Description   *string                  `json:"description"`
	Status        string                   `json:"status"`
	Progress      int                      `json:"progress"`
	CommentsCount int                      `json:"comments_count"`
	Comments      []PromiseCommentResponse `json:"comments"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func (p *Promise) ToResponse() PromiseResponse {
	comments := make([]PromiseCommentResponse, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, p.Comments[i].ToResponse())
	}
	return PromiseResponse{
		ID:            p.ID,
		CandidateID:   p.CandidateID,
		Title:         p.Title,
		Description:   p.Description,
		Status:        p.Status,
		Progress:      p.Progress,
		CommentsCount: len(comments),
		Comments:      comments,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// PromiseComment represents promise_comments table. Comments are append-only.
type PromiseComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PromiseID uint      `gorm:"index;not null" json:"promise_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (PromiseComment) TableName() string {
	return "promise_comments"
}

// PromiseCommentResponse DTO
type PromiseCommentResponse struct {
	ID        uint      `json:"id"`
	PromiseID uint      `json:"promise_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *PromiseComment) ToResponse() PromiseCommentResponse {
	return PromiseCommentResponse{
		ID:        c.ID,
		PromiseID: c.PromiseID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&State{},
		&City{},
		&PoliticalParty{},
		&Election{},
		&Office{},
		&Candidate{},
		&Promise{},
		&PromiseComment{},
	)
}
