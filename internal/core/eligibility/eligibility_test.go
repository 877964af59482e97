package eligibility

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promessas-api/internal/core/domain"
)

type fakeLocator struct {
	cities     map[uint]City
	states     map[int]bool
	err        error
	cityCalls  int
	stateCalls int
}

func newFakeLocator() *fakeLocator {
	return &fakeLocator{
		cities: map[uint]City{
			3550308: {ID: 3550308, StateCode: 35},
			3304557: {ID: 3304557, StateCode: 33},
		},
		states: map[int]bool{35: true, 33: true},
	}
}

func (f *fakeLocator) FindCity(_ context.Context, id uint) (City, bool, error) {
	f.cityCalls++
	if f.err != nil {
		return City{}, false, f.err
	}
	c, ok := f.cities[id]
	return c, ok, nil
}

func (f *fakeLocator) StateExists(_ context.Context, code int) (bool, error) {
	f.stateCalls++
	if f.err != nil {
		return false, f.err
	}
	return f.states[code], nil
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

func TestRulesFor(t *testing.T) {
	assert.Equal(t, Rules{StateCode: FieldForbidden, CityID: FieldForbidden}, RulesFor(domain.GeographyNone))
	assert.Equal(t, Rules{StateCode: FieldDerived, CityID: FieldRequired}, RulesFor(domain.GeographyCityRequired))
	assert.Equal(t, Rules{StateCode: FieldRequired, CityID: FieldForbidden}, RulesFor(domain.GeographyStateOnly))
	assert.Equal(t, Rules{StateCode: FieldOptional, CityID: FieldForbidden}, RulesFor(domain.GeographyOptional))
}

func TestResolveNoGeography(t *testing.T) {
	office := Office{Name: "Presidente", Class: domain.GeographyNone}

	tests := []struct {
		name string
		req  Request
	}{
		{"state only", Request{StateCode: intPtr(35)}},
		{"city only", Request{CityID: uintPtr(3550308)}},
		{"both", Request{StateCode: intPtr(35), CityID: uintPtr(3550308)}},
		{"unknown state", Request{StateCode: intPtr(99)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := newFakeLocator()
			_, err := Resolve(context.Background(), loc, office, tt.req)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Equal(t, "Para Presidente não informe state_code nem city_id.", err.Error())
			assert.Zero(t, loc.cityCalls+loc.stateCalls)
		})
	}

	t.Run("both absent stores nothing", func(t *testing.T) {
		p, err := Resolve(context.Background(), newFakeLocator(), office, Request{})
		require.NoError(t, err)
		assert.Nil(t, p.StateCode)
		assert.Nil(t, p.CityID)
	})
}

func TestResolveCityRequired(t *testing.T) {
	office := Office{Name: "Prefeito", Class: domain.GeographyCityRequired}

	t.Run("missing city", func(t *testing.T) {
		_, err := Resolve(context.Background(), newFakeLocator(), office, Request{StateCode: intPtr(35)})
		assert.ErrorIs(t, err, domain.ErrCityRequired)
	})

	t.Run("state derived from city", func(t *testing.T) {
		p, err := Resolve(context.Background(), newFakeLocator(), office, Request{CityID: uintPtr(3550308)})
		require.NoError(t, err)
		require.NotNil(t, p.StateCode)
		require.NotNil(t, p.CityID)
		assert.Equal(t, 35, *p.StateCode)
		assert.Equal(t, uint(3550308), *p.CityID)
	})

	t.Run("matching state is accepted", func(t *testing.T) {
		p, err := Resolve(context.Background(), newFakeLocator(), office,
			Request{StateCode: intPtr(35), CityID: uintPtr(3550308)})
		require.NoError(t, err)
		assert.Equal(t, 35, *p.StateCode)
	})

	t.Run("mismatching state", func(t *testing.T) {
		_, err := Resolve(context.Background(), newFakeLocator(), office,
			Request{StateCode: intPtr(99), CityID: uintPtr(3550308)})
		assert.ErrorIs(t, err, domain.ErrStateCityMismatch)
		assert.Equal(t, "state_code informado não corresponde à cidade.", err.Error())
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := Resolve(context.Background(), newFakeLocator(), office, Request{CityID: uintPtr(1)})
		assert.ErrorIs(t, err, domain.ErrCityNotFound)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestResolveStateOnly(t *testing.T) {
	office := Office{Name: "Governador", Class: domain.GeographyStateOnly}

	t.Run("city is rejected regardless of state", func(t *testing.T) {
		for _, state := range []*int{intPtr(35), intPtr(99)} {
			loc := newFakeLocator()
			_, err := Resolve(context.Background(), loc, office, Request{StateCode: state, CityID: uintPtr(3550308)})
			assert.ErrorIs(t, err, domain.ErrCityNotAllowed)
			assert.Zero(t, loc.stateCalls)
		}
	})

	t.Run("city without state", func(t *testing.T) {
		_, err := Resolve(context.Background(), newFakeLocator(), office, Request{CityID: uintPtr(3550308)})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("missing state", func(t *testing.T) {
		_, err := Resolve(context.Background(), newFakeLocator(), office, Request{})
		assert.ErrorIs(t, err, domain.ErrStateRequired)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := Resolve(context.Background(), newFakeLocator(), office, Request{StateCode: intPtr(99)})
		assert.ErrorIs(t, err, domain.ErrStateNotFound)
	})

	t.Run("valid state", func(t *testing.T) {
		p, err := Resolve(context.Background(), newFakeLocator(), office, Request{StateCode: intPtr(33)})
		require.NoError(t, err)
		assert.Equal(t, 33, *p.StateCode)
		assert.Nil(t, p.CityID)
	})
}

func TestResolveOptional(t *testing.T) {
	office := Office{Name: "Conselheiro", Class: domain.GeographyOptional}

	t.Run("city is rejected", func(t *testing.T) {
		_, err := Resolve(context.Background(), newFakeLocator(), office, Request{CityID: uintPtr(3550308)})
		assert.ErrorIs(t, err, domain.ErrCityOnlyMunicipal)
	})

	t.Run("no location", func(t *testing.T) {
		p, err := Resolve(context.Background(), newFakeLocator(), office, Request{})
		require.NoError(t, err)
		assert.Nil(t, p.StateCode)
		assert.Nil(t, p.CityID)
	})

	t.Run("known state", func(t *testing.T) {
		p, err := Resolve(context.Background(), newFakeLocator(), office, Request{StateCode: intPtr(35)})
		require.NoError(t, err)
		assert.Equal(t, 35, *p.StateCode)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := Resolve(context.Background(), newFakeLocator(), office, Request{StateCode: intPtr(12)})
		assert.ErrorIs(t, err, domain.ErrStateNotFound)
	})
}

func TestResolvePropagatesLookupFailure(t *testing.T) {
	loc := newFakeLocator()
	loc.err = errors.New("connection refused")

	_, err := Resolve(context.Background(), loc, Office{Name: "Vereador", Class: domain.GeographyCityRequired},
		Request{CityID: uintPtr(3550308)})
	require.Error(t, err)
	_, isDomain := domain.AsError(err)
	assert.False(t, isDomain)
}
