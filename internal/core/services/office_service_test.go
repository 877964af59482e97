package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"promessas-api/internal/adapters/cache"
	"promessas-api/internal/adapters/persistence/models"
	"promessas-api/internal/adapters/persistence/repositories/mocks"
	"promessas-api/internal/core/domain"
	"promessas-api/internal/core/services"
	"promessas-api/internal/pkg/nullable"
)

func newOfficeService(t *testing.T) (*services.OfficeService, *mocks.MockOfficeRepository, *cache.Cache) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOfficeRepository(ctrl)
	c := newTestCache(t)
	return services.NewOfficeService(repo, c, testTTLs().OfficesTTL), repo, c
}

func seedOfficeKeys(ctx context.Context, c *cache.Cache) {
	c.Set(ctx, "offices:all", []string{"x"}, 0)
	c.Set(ctx, "offices:MUNICIPAL", []string{"x"}, 0)
	c.Set(ctx, "elections:all", []string{"x"}, 0)
}

func assertOfficeKeysDropped(t *testing.T, ctx context.Context, c *cache.Cache) {
	t.Helper()
	var dest []string
	assert.False(t, c.Get(ctx, "offices:all", &dest))
	assert.False(t, c.Get(ctx, "offices:MUNICIPAL", &dest))
	assert.True(t, c.Get(ctx, "elections:all", &dest), "unrelated keys survive")
}

func TestOfficeList_CachedPerType(t *testing.T) {
	svc, repo, _ := newOfficeService(t)
	ctx := context.Background()

	repo.EXPECT().List(ctx, "MUNICIPAL").Return([]*models.Office{prefeito}, nil).Times(1)
	repo.EXPECT().List(ctx, "").Return([]*models.Office{presidente, prefeito}, nil).Times(1)

	for _, raw := range []string{"municipal", "MUNICIPAL"} {
		got, err := svc.List(ctx, raw)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "CITY_REQUIRED", got[0].Geography)
	}

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	_, err = svc.List(ctx, "")
	require.NoError(t, err)
}

func TestOfficeList_InvalidType(t *testing.T) {
	svc, _, _ := newOfficeService(t)

	_, err := svc.List(context.Background(), "ESTADUAL")
	assert.ErrorIs(t, err, domain.ErrInvalidOfficeType)
}

func TestOfficeCreate_ClassifiesAndInvalidates(t *testing.T) {
	svc, repo, c := newOfficeService(t)
	ctx := context.Background()
	seedOfficeKeys(ctx, c)

	repo.EXPECT().ExistsByName(ctx, "Vice-Prefeito", uint(0)).Return(false, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *models.Office) error {
		o.ID = 8
		return nil
	})

	got, err := svc.Create(ctx, services.CreateOfficeInput{Name: " Vice-Prefeito ", Type: "municipal"})
	require.NoError(t, err)

	assert.Equal(t, uint(8), got.ID)
	assert.Equal(t, "MUNICIPAL", got.Type)
	assert.Equal(t, "CITY_REQUIRED", got.Geography)
	assertOfficeKeysDropped(t, ctx, c)
}

func TestOfficeCreate_ExplicitGeography(t *testing.T) {
	svc, repo, _ := newOfficeService(t)
	ctx := context.Background()

	repo.EXPECT().ExistsByName(ctx, "Conselheiro", uint(0)).Return(false, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	got, err := svc.Create(ctx, services.CreateOfficeInput{Name: "Conselheiro", Geography: "state_only"})
	require.NoError(t, err)
	assert.Equal(t, "FEDERAL_ESTADUAL", got.Type)
	assert.Equal(t, "STATE_ONLY", got.Geography)
}

func TestOfficeCreate_Rejections(t *testing.T) {
	t.Run("name", func(t *testing.T) {
		svc, _, _ := newOfficeService(t)
		_, err := svc.Create(context.Background(), services.CreateOfficeInput{Name: "  "})
		assert.ErrorIs(t, err, domain.ErrOfficeNameRequired)
	})
	t.Run("type", func(t *testing.T) {
		svc, _, _ := newOfficeService(t)
		_, err := svc.Create(context.Background(), services.CreateOfficeInput{Name: "X", Type: "FEDERAL"})
		assert.ErrorIs(t, err, domain.ErrInvalidOfficeType)
	})
	t.Run("geography", func(t *testing.T) {
		svc, _, _ := newOfficeService(t)
		_, err := svc.Create(context.Background(), services.CreateOfficeInput{Name: "X", Geography: "CITY"})
		assert.ErrorIs(t, err, domain.ErrInvalidGeography)
	})
	t.Run("duplicate", func(t *testing.T) {
		svc, repo, c := newOfficeService(t)
		ctx := context.Background()
		seedOfficeKeys(ctx, c)
		repo.EXPECT().ExistsByName(ctx, "Prefeito", uint(0)).Return(true, nil)

		_, err := svc.Create(ctx, services.CreateOfficeInput{Name: "Prefeito"})
		assert.ErrorIs(t, err, domain.ErrOfficeDuplicate)

		var dest []string
		assert.True(t, c.Get(ctx, "offices:all", &dest), "failed writes keep the cache")
	})
	t.Run("unique index race", func(t *testing.T) {
		svc, repo, _ := newOfficeService(t)
		ctx := context.Background()
		repo.EXPECT().ExistsByName(ctx, "Prefeito", uint(0)).Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := svc.Create(ctx, services.CreateOfficeInput{Name: "Prefeito"})
		assert.ErrorIs(t, err, domain.ErrOfficeDuplicate)
	})
}

func TestOfficeUpdate_RenameKeepsGeography(t *testing.T) {
	svc, repo, c := newOfficeService(t)
	ctx := context.Background()
	seedOfficeKeys(ctx, c)

	stored := *prefeito
	repo.EXPECT().GetByID(ctx, uint(6)).Return(&stored, nil)
	repo.EXPECT().ExistsByName(ctx, "Chefe do Executivo", uint(6)).Return(false, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *models.Office) error {
		assert.Equal(t, "CITY_REQUIRED", o.Geography)
		return nil
	})

	got, err := svc.Update(ctx, 6, services.UpdateOfficeInput{Name: nullable.Of("Chefe do Executivo")})
	require.NoError(t, err)

	assert.Equal(t, "Chefe do Executivo", got.Name)
	assert.Equal(t, "CITY_REQUIRED", got.Geography)
	assertOfficeKeysDropped(t, ctx, c)
}

func TestOfficeUpdate_PinsLegacyClass(t *testing.T) {
	svc, repo, _ := newOfficeService(t)
	ctx := context.Background()

	legacy := &models.Office{ID: 9, Name: "Senador", Type: "FEDERAL_ESTADUAL"}
	repo.EXPECT().GetByID(ctx, uint(9)).Return(legacy, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	got, err := svc.Update(ctx, 9, services.UpdateOfficeInput{Description: nullable.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, got.Description)
	assert.Equal(t, "STATE_ONLY", legacy.Geography)
}

func TestOfficeUpdate_Rejections(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		svc, _, _ := newOfficeService(t)
		_, err := svc.Update(context.Background(), 1, services.UpdateOfficeInput{})
		assert.ErrorIs(t, err, domain.ErrOfficeNoFields)
	})
	t.Run("empty name", func(t *testing.T) {
		svc, _, _ := newOfficeService(t)
		_, err := svc.Update(context.Background(), 1, services.UpdateOfficeInput{Name: nullable.Of(" ")})
		assert.ErrorIs(t, err, domain.ErrOfficeNameRequired)
	})
	t.Run("missing", func(t *testing.T) {
		svc, repo, _ := newOfficeService(t)
		repo.EXPECT().GetByID(gomock.Any(), uint(404)).Return(nil, gorm.ErrRecordNotFound)
		_, err := svc.Update(context.Background(), 404, services.UpdateOfficeInput{Name: nullable.Of("X")})
		assert.ErrorIs(t, err, domain.ErrOfficeNotFoundUpd)
	})
	t.Run("name taken", func(t *testing.T) {
		svc, repo, _ := newOfficeService(t)
		stored := *prefeito
		repo.EXPECT().GetByID(gomock.Any(), uint(6)).Return(&stored, nil)
		repo.EXPECT().ExistsByName(gomock.Any(), "Vereador", uint(6)).Return(true, nil)
		_, err := svc.Update(context.Background(), 6, services.UpdateOfficeInput{Name: nullable.Of("Vereador")})
		assert.ErrorIs(t, err, domain.ErrOfficeNameTaken)
	})
}
