package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"promessas-api/internal/core/domain"
)

func TestOffice_GeographyColumnHasNoClassDefault(t *testing.T) {
	s, err := schema.Parse(&Office{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("Geography")
	require.NotNil(t, field)
	assert.True(t, field.NotNull)

	_, ok := domain.ParseGeographyClass(field.DefaultValue)
	assert.False(t, ok, "backfilled rows must not get a geography class")

	legacy := Office{Name: "Prefeito", Type: "MUNICIPAL", Geography: field.DefaultValue}
	assert.Equal(t, domain.GeographyCityRequired, legacy.Class())
}

func TestOffice_ClassUsesStoredValue(t *testing.T) {
	o := Office{Name: "Prefeito", Type: "MUNICIPAL", Geography: string(domain.GeographyOptional)}
	assert.Equal(t, domain.GeographyOptional, o.Class())
}
