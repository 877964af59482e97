package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"promessas-api/internal/adapters/persistence/models"
	"promessas-api/internal/adapters/persistence/repositories/mocks"
	"promessas-api/internal/core/services"
)

func newReferenceService(t *testing.T) (*services.ReferenceService, *mocks.MockStateRepository, *mocks.MockCityRepository, *mocks.MockPoliticalPartyRepository) {
	ctrl := gomock.NewController(t)
	states := mocks.NewMockStateRepository(ctrl)
	cities := mocks.NewMockCityRepository(ctrl)
	parties := mocks.NewMockPoliticalPartyRepository(ctrl)
	svc := services.NewReferenceService(states, cities, parties, newTestCache(t), testTTLs())
	return svc, states, cities, parties
}

func TestListCities_SecondCallServedFromCache(t *testing.T) {
	svc, _, cities, _ := newReferenceService(t)
	ctx := context.Background()

	cities.EXPECT().ListByState(ctx, 35).Return([]*models.City{saoPaulo}, nil).Times(1)

	first, err := svc.ListCities(ctx, 35)
	require.NoError(t, err)
	second, err := svc.ListCities(ctx, 35)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, second, 1)
	assert.Equal(t, "São Paulo", second[0].Name)
}

func TestListCities_KeyedPerState(t *testing.T) {
	svc, _, cities, _ := newReferenceService(t)
	ctx := context.Background()

	cities.EXPECT().ListByState(ctx, 35).Return([]*models.City{saoPaulo}, nil)
	cities.EXPECT().ListByState(ctx, 33).Return(nil, nil)

	_, err := svc.ListCities(ctx, 35)
	require.NoError(t, err)
	rj, err := svc.ListCities(ctx, 33)
	require.NoError(t, err)
	assert.NotNil(t, rj)
	assert.Empty(t, rj)
}

func TestListStates_ErrorIsNotCached(t *testing.T) {
	svc, states, _, _ := newReferenceService(t)
	ctx := context.Background()

	gomock.InOrder(
		states.EXPECT().List(ctx).Return(nil, errors.New("db down")),
		states.EXPECT().List(ctx).Return([]*models.State{{Code: 12, Name: "Acre", Abbreviation: "AC"}}, nil),
	)

	_, err := svc.ListStates(ctx)
	require.Error(t, err)

	got, err := svc.ListStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.StateResponse{{Code: 12, Name: "Acre", Abbreviation: "AC"}}, got)
}

func TestListParties_Cached(t *testing.T) {
	svc, _, _, parties := newReferenceService(t)
	ctx := context.Background()

	parties.EXPECT().List(ctx).Return([]*models.PoliticalParty{{ID: 1, Acronym: "PT", Number: 13}}, nil).Times(1)

	for i := 0; i < 3; i++ {
		got, err := svc.ListParties(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
	}
}
