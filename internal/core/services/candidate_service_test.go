package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"promessas-api/internal/adapters/persistence/models"
	"promessas-api/internal/adapters/persistence/repositories"
	"promessas-api/internal/adapters/persistence/repositories/mocks"
	"promessas-api/internal/core/domain"
	"promessas-api/internal/core/services"
)

type candidateDeps struct {
	candidates *mocks.MockCandidateRepository
	elections  *mocks.MockElectionRepository
	parties    *mocks.MockPoliticalPartyRepository
	offices    *mocks.MockOfficeRepository
	states     *mocks.MockStateRepository
	cities     *mocks.MockCityRepository
	svc        *services.CandidateService
}

func newCandidateDeps(t *testing.T) *candidateDeps {
	ctrl := gomock.NewController(t)
	d := &candidateDeps{
		candidates: mocks.NewMockCandidateRepository(ctrl),
		elections:  mocks.NewMockElectionRepository(ctrl),
		parties:    mocks.NewMockPoliticalPartyRepository(ctrl),
		offices:    mocks.NewMockOfficeRepository(ctrl),
		states:     mocks.NewMockStateRepository(ctrl),
		cities:     mocks.NewMockCityRepository(ctrl),
	}
	d.svc = services.NewCandidateService(d.candidates, d.elections, d.parties, d.offices, d.states, d.cities)
	return d
}

var (
	prefeito   = &models.Office{ID: 6, Name: "Prefeito", Type: "MUNICIPAL", Geography: "CITY_REQUIRED"}
	presidente = &models.Office{ID: 1, Name: "Presidente", Type: "FEDERAL_ESTADUAL", Geography: "NO_GEOGRAPHY"}
	governador = &models.Office{ID: 2, Name: "Governador", Type: "FEDERAL_ESTADUAL", Geography: "STATE_ONLY"}
	saoPaulo   = &models.City{ID: 3550308, IBGECode: 3550308, Name: "São Paulo", StateCode: 35}
)

func TestCandidateCreate_CityRequiredDerivesState(t *testing.T) {
	d := newCandidateDeps(t)
	ctx := context.Background()

	d.offices.EXPECT().GetByID(ctx, uint(6)).Return(prefeito, nil)
	d.cities.EXPECT().GetByID(ctx, uint(3550308)).Return(saoPaulo, nil)

	var stored *models.Candidate
	d.candidates.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Candidate) error {
		c.ID = 10
		stored = c
		return nil
	})
	d.candidates.EXPECT().GetByID(ctx, uint(10)).DoAndReturn(func(_ context.Context, _ uint) (*models.Candidate, error) {
		c := *stored
		c.Office = *prefeito
		c.City = saoPaulo
		return &c, nil
	})

	resp, err := d.svc.Create(ctx, services.CreateCandidateInput{
		Name:     "Maria",
		Number:   intPtr(13),
		OfficeID: uintPtr(6),
		CityID:   uintPtr(3550308),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.StateCode)
	assert.Equal(t, 35, *resp.StateCode)
	assert.Equal(t, uint(3550308), *resp.CityID)
	assert.Equal(t, "Prefeito", resp.Office)
	assert.Equal(t, "São Paulo", *resp.City)
}

func TestCandidateCreate_StateMismatchWritesNothing(t *testing.T) {
	d := newCandidateDeps(t)
	ctx := context.Background()

	d.offices.EXPECT().GetByID(ctx, uint(6)).Return(prefeito, nil)
	d.cities.EXPECT().GetByID(ctx, uint(3550308)).Return(saoPaulo, nil)
	// no Create expected

	_, err := d.svc.Create(ctx, services.CreateCandidateInput{
		Name:      "Maria",
		Number:    intPtr(13),
		OfficeID:  uintPtr(6),
		StateCode: intPtr(99),
		CityID:    uintPtr(3550308),
	})
	require.ErrorIs(t, err, domain.ErrStateCityMismatch)
	assert.Equal(t, "state_code informado não corresponde à cidade.", err.Error())
}

func TestCandidateCreate_LookupOrder(t *testing.T) {
	d := newCandidateDeps(t)
	ctx := context.Background()

	gomock.InOrder(
		d.elections.EXPECT().GetByID(ctx, uint(3)).Return(&models.Election{ID: 3, Year: 2026}, nil),
		d.parties.EXPECT().GetByID(ctx, uint(4)).Return(&models.PoliticalParty{ID: 4, Acronym: "PT"}, nil),
		d.offices.EXPECT().GetByID(ctx, uint(2)).Return(governador, nil),
		d.states.EXPECT().GetByCode(ctx, 35).Return(&models.State{Code: 35}, nil),
		d.candidates.EXPECT().Create(ctx, gomock.Any()).Return(nil),
		d.candidates.EXPECT().GetByID(ctx, gomock.Any()).Return(&models.Candidate{Office: *governador, StateCode: intPtr(35)}, nil),
	)

	_, err := d.svc.Create(ctx, services.CreateCandidateInput{
		Name:             "João",
		Number:           intPtr(1313),
		ElectionID:       uintPtr(3),
		PoliticalPartyID: uintPtr(4),
		OfficeID:         uintPtr(2),
		StateCode:        intPtr(35),
	})
	require.NoError(t, err)
}

func TestCandidateCreate_MissingElectionStopsEarly(t *testing.T) {
	d := newCandidateDeps(t)
	ctx := context.Background()

	d.elections.EXPECT().GetByID(ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := d.svc.Create(ctx, services.CreateCandidateInput{
		Name:             "João",
		Number:           intPtr(1),
		ElectionID:       uintPtr(9),
		PoliticalPartyID: uintPtr(4),
		OfficeID:         uintPtr(2),
	})
	assert.ErrorIs(t, err, domain.ErrElectionNotFound)
}

func TestCandidateCreate_MissingParty(t *testing.T) {
	d := newCandidateDeps(t)
	ctx := context.Background()

	d.parties.EXPECT().GetByID(ctx, uint(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := d.svc.Create(ctx, services.CreateCandidateInput{
		Name:             "João",
		Number:           intPtr(1),
		PoliticalPartyID: uintPtr(4),
		OfficeID:         uintPtr(2),
	})
	assert.ErrorIs(t, err, domain.ErrPartyNotFound)
}

func TestCandidateCreate_MissingOffice(t *testing.T) {
	d := newCandidateDeps(t)
	ctx := context.Background()

	d.offices.EXPECT().GetByID(ctx, uint(77)).Return(nil, gorm.ErrRecordNotFound)

	_, err := d.svc.Create(ctx, services.CreateCandidateInput{Name: "João", Number: intPtr(1), OfficeID: uintPtr(77)})
	assert.ErrorIs(t, err, domain.ErrOfficeNotFound)
	assert.Equal(t, "Cargo (office) não encontrado.", err.Error())
}

func TestCandidateCreate_NoGeographyRejectsLocation(t *testing.T) {
	d := newCandidateDeps(t)
	ctx := context.Background()

	d.offices.EXPECT().GetByID(ctx, uint(1)).Return(presidente, nil)

	_, err := d.svc.Create(ctx, services.CreateCandidateInput{
		Name:      "Ana",
		Number:    intPtr(10),
		OfficeID:  uintPtr(1),
		StateCode: intPtr(35),
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "Para Presidente não informe state_code nem city_id.", err.Error())
}

func TestCandidateCreate_RenamedOfficeKeepsClass(t *testing.T) {
	d := newCandidateDeps(t)
	ctx := context.Background()

	renamed := &models.Office{ID: 6, Name: "Prefeita", Type: "MUNICIPAL", Geography: "CITY_REQUIRED"}
	d.offices.EXPECT().GetByID(ctx, uint(6)).Return(renamed, nil)

	_, err := d.svc.Create(ctx, services.CreateCandidateInput{Name: "Ana", Number: intPtr(10), OfficeID: uintPtr(6)})
	assert.ErrorIs(t, err, domain.ErrCityRequired)
}

func TestCandidateCreate_InputValidation(t *testing.T) {
	tests := []struct {
		name  string
		input services.CreateCandidateInput
		want  error
	}{
		{"name", services.CreateCandidateInput{Number: intPtr(1), OfficeID: uintPtr(1)}, domain.ErrNameRequired},
		{"office", services.CreateCandidateInput{Name: "A", Number: intPtr(1)}, domain.ErrOfficeIDRequired},
		{"number", services.CreateCandidateInput{Name: "A", OfficeID: uintPtr(1)}, domain.ErrNumberRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newCandidateDeps(t)
			_, err := d.svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCandidateCreate_RepositoryFailureIsNotDomainError(t *testing.T) {
	d := newCandidateDeps(t)
	ctx := context.Background()

	d.offices.EXPECT().GetByID(ctx, uint(6)).Return(nil, errors.New("connection lost"))

	_, err := d.svc.Create(ctx, services.CreateCandidateInput{Name: "A", Number: intPtr(1), OfficeID: uintPtr(6)})
	require.Error(t, err)
	_, isDomain := domain.AsError(err)
	assert.False(t, isDomain)
}

func TestCandidateList_Paginates(t *testing.T) {
	d := newCandidateDeps(t)
	ctx := context.Background()

	filter := repositories.CandidateFilter{OfficeID: 6, StateCode: intPtr(35)}
	d.candidates.EXPECT().List(ctx, filter, 10, 10).Return([]*models.Candidate{
		{ID: 11, Name: "A", Office: *prefeito, PromisesCount: 2, CommentsCount: 5},
	}, int64(11), nil)

	resp, err := d.svc.List(ctx, services.ListCandidatesInput{OfficeID: 6, StateCode: intPtr(35), Page: 2, Limit: 10})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2), resp.Items[0].PromisesCount)
	assert.Equal(t, int64(5), resp.Items[0].CommentsCount)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.False(t, resp.Meta.HasNext)
}
