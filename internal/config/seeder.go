package config

import (
	"errors"
	"log"

	"promessas-api/internal/adapters/persistence/models"
	"promessas-api/internal/core/domain"
	"promessas-api/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles reference data seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders. Each seeder only inserts missing rows.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"states", s.seedStates},
		{"cities", s.seedCapitals},
		{"political parties", s.seedParties},
		{"offices", s.seedOffices},
		{"elections", s.seedElections},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return err
		}
		log.Printf("   Seeded %s", step.name)
	}

	if s.cfg.IsDev() {
		if err := s.seedDevUser(); err != nil {
			log.Printf("⚠️ Dev user seeder skipped: %v", err)
		}
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// createIfMissing inserts row unless a record matching where already exists
func createIfMissing[T any](db *gorm.DB, row *T, query string, args ...interface{}) error {
	var existing T
	err := db.Where(query, args...).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(row).Error
}

func (s *Seeder) seedStates() error {
	states := []models.State{
		{Code: 11, Name: "Rondônia", Abbreviation: "RO"},
		{Code: 12, Name: "Acre", Abbreviation: "AC"},
		{Code: 13, Name: "Amazonas", Abbreviation: "AM"},
		{Code: 14, Name: "Roraima", Abbreviation: "RR"},
		{Code: 15, Name: "Pará", Abbreviation: "PA"},
		{Code: 16, Name: "Amapá", Abbreviation: "AP"},
		{Code: 17, Name: "Tocantins", Abbreviation: "TO"},
		{Code: 21, Name: "Maranhão", Abbreviation: "MA"},
		{Code: 22, Name: "Piauí", Abbreviation: "PI"},
		{Code: 23, Name: "Ceará", Abbreviation: "CE"},
		{Code: 24, Name: "Rio Grande do Norte", Abbreviation: "RN"},
		{Code: 25, Name: "Paraíba", Abbreviation: "PB"},
		{Code: 26, Name: "Pernambuco", Abbreviation: "PE"},
		{Code: 27, Name: "Alagoas", Abbreviation: "AL"},
		{Code: 28, Name: "Sergipe", Abbreviation: "SE"},
		{Code: 29, Name: "Bahia", Abbreviation: "BA"},
		{Code: 31, Name: "Minas Gerais", Abbreviation: "MG"},
		{Code: 32, Name: "Espírito Santo", Abbreviation: "ES"},
		{Code: 33, Name: "Rio de Janeiro", Abbreviation: "RJ"},
		{Code: 35, Name: "São Paulo", Abbreviation: "SP"},
		{Code: 41, Name: "Paraná", Abbreviation: "PR"},
		{Code: 42, Name: "Santa Catarina", Abbreviation: "SC"},
		{Code: 43, Name: "Rio Grande do Sul", Abbreviation: "RS"},
		{Code: 50, Name: "Mato Grosso do Sul", Abbreviation: "MS"},
		{Code: 51, Name: "Mato Grosso", Abbreviation: "MT"},
		{Code: 52, Name: "Goiás", Abbreviation: "GO"},
		{Code: 53, Name: "Distrito Federal", Abbreviation: "DF"},
	}

	for i := range states {
		if err := createIfMissing(s.db, &states[i], "code = ?", states[i].Code); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedCapitals() error {
	cities := []models.City{
		{IBGECode: 3550308, Name: "São Paulo", StateCode: 35},
		{IBGECode: 3304557, Name: "Rio de Janeiro", StateCode: 33},
		{IBGECode: 3106200, Name: "Belo Horizonte", StateCode: 31},
		{IBGECode: 5300108, Name: "Brasília", StateCode: 53},
		{IBGECode: 2927408, Name: "Salvador", StateCode: 29},
		{IBGECode: 4106902, Name: "Curitiba", StateCode: 41},
		{IBGECode: 4314902, Name: "Porto Alegre", StateCode: 43},
		{IBGECode: 2611606, Name: "Recife", StateCode: 26},
		{IBGECode: 2304400, Name: "Fortaleza", StateCode: 23},
		{IBGECode: 1302603, Name: "Manaus", StateCode: 13},
	}

	for i := range cities {
		if err := createIfMissing(s.db, &cities[i], "ibge_code = ?", cities[i].IBGECode); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedParties() error {
	parties := []models.PoliticalParty{
		{Name: "Partido dos Trabalhadores", Acronym: "PT", Number: 13},
		{Name: "Movimento Democrático Brasileiro", Acronym: "MDB", Number: 15},
		{Name: "Partido Liberal", Acronym: "PL", Number: 22},
		{Name: "Partido Novo", Acronym: "NOVO", Number: 30},
		{Name: "União Brasil", Acronym: "UNIÃO", Number: 44},
		{Name: "Partido da Social Democracia Brasileira", Acronym: "PSDB", Number: 45},
		{Name: "Partido Socialismo e Liberdade", Acronym: "PSOL", Number: 50},
		{Name: "Partido Social Democrático", Acronym: "PSD", Number: 55},
	}

	for i := range parties {
		if err := createIfMissing(s.db, &parties[i], "number = ?", parties[i].Number); err != nil {
			return err
		}
	}
	return nil
}

// seedOffices stores the default offices with their geography class fixed at insert time
func (s *Seeder) seedOffices() error {
	defaults := []struct {
		name       string
		officeType domain.OfficeType
	}{
		{"Presidente", domain.OfficeTypeFederalEstadual},
		{"Governador", domain.OfficeTypeFederalEstadual},
		{"Senador", domain.OfficeTypeFederalEstadual},
		{"Deputado Federal", domain.OfficeTypeFederalEstadual},
		{"Deputado Estadual", domain.OfficeTypeFederalEstadual},
		{"Prefeito", domain.OfficeTypeMunicipal},
		{"Vereador", domain.OfficeTypeMunicipal},
	}

	for _, d := range defaults {
		office := models.Office{
			Name:      d.name,
			Type:      string(d.officeType),
			Geography: string(domain.ClassifyOffice(d.name, d.officeType)),
		}
		if err := createIfMissing(s.db, &office, "name = ?", office.Name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedElections() error {
	general := "Eleições gerais"
	municipal := "Eleições municipais"
	elections := []models.Election{
		{Year: 2022, Description: &general},
		{Year: 2024, Description: &municipal},
		{Year: 2026, Description: &general},
	}

	for i := range elections {
		if err := createIfMissing(s.db, &elections[i], "year = ?", elections[i].Year); err != nil {
			return err
		}
	}
	return nil
}

// seedDevUser creates a login for local development only
func (s *Seeder) seedDevUser() error {
	hash, err := password.Hash("dev123456")
	if err != nil {
		return err
	}

	user := models.User{
		Name:         "Dev",
		Email:        "dev@promessas.local",
		PasswordHash: hash,
	}
	if err := createIfMissing(s.db, &user, "email = ?", user.Email); err != nil {
		return err
	}
	return nil
}
