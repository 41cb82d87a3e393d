package usecase_test

import (
	"testing"

	"estatehub/internal/backoffice/usecase"
	"estatehub/internal/domain/model"
	"estatehub/internal/integrity"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	store      *store.Store
	codec      *store.Codec
	integrity  *integrity.Manager
	properties *usecase.PropertyService
	agents     *usecase.AgentService
	buyers     *usecase.BuyerService
	guides     *usecase.GuideService
	inbox      *usecase.InboxService
	settings   *usecase.SettingsService
}

func newUsecaseFixture(t *testing.T) *fixture {
	t.Helper()
	s, err := store.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	codec := store.NewCodec()
	im := integrity.NewManager(s, zap.NewNop())
	log := logger.NewLogger()

	return &fixture{
		store:      s,
		codec:      codec,
		integrity:  im,
		properties: usecase.NewPropertyService(s, codec, log),
		agents:     usecase.NewAgentService(s, codec, log),
		buyers:     usecase.NewBuyerService(s, codec, im, log),
		guides:     usecase.NewGuideService(s, codec, im, log),
		inbox:      usecase.NewInboxService(s, codec, log),
		settings:   usecase.NewSettingsService(s, codec, log),
	}
}

func TestPropertyCreate_AssignsIdentityAndDefaults(t *testing.T) {
	f := newUsecaseFixture(t)

	p, err := f.properties.Create(usecase.PropertyInput{Title: "Seafront apartment"})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.NotEmpty(t, p.CreatedAt)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	require.NotNil(t, p.IsActive)
	assert.True(t, *p.IsActive, "visibility defaults to active")
}

func TestPropertyCreate_RequiresTitle(t *testing.T) {
	f := newUsecaseFixture(t)

	_, err := f.properties.Create(usecase.PropertyInput{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestPropertyCreate_IDsAreUnique(t *testing.T) {
	f := newUsecaseFixture(t)

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		p, err := f.properties.Create(usecase.PropertyInput{Title: "P"})
		require.NoError(t, err)
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestPropertyUpdate_MergesOnlySuppliedFields(t *testing.T) {
	f := newUsecaseFixture(t)

	created, err := f.properties.Create(usecase.PropertyInput{
		Title:    "Townhouse",
		Price:    300000,
		Location: "Lagos",
	})
	require.NoError(t, err)

	newPrice := 275000.0
	updated, err := f.properties.Update(created.ID, usecase.PropertyUpdate{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Townhouse", updated.Title, "unsupplied fields are retained")
	assert.Equal(t, "Lagos", updated.Location)
	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.GreaterOrEqual(t, updated.UpdatedAt, updated.CreatedAt, "updatedAt never precedes createdAt")
}

func TestPropertyUpdate_NotFound(t *testing.T) {
	f := newUsecaseFixture(t)

	_, err := f.properties.Update("ghost", usecase.PropertyUpdate{})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPropertyListPublic_FiltersSortsAndJoins(t *testing.T) {
	f := newUsecaseFixture(t)

	agent, err := f.agents.Create(usecase.AgentInput{Name: "Ana"})
	require.NoError(t, err)

	_, err = f.properties.Create(usecase.PropertyInput{Title: "Hidden", IsActive: model.Bool(false)})
	require.NoError(t, err)
	_, err = f.properties.Create(usecase.PropertyInput{Title: "Plain", DisplayOrder: 1, AgentID: agent.ID})
	require.NoError(t, err)
	_, err = f.properties.Create(usecase.PropertyInput{Title: "Pinned", DisplayOrder: 9, IsFeatured: true})
	require.NoError(t, err)

	listed, err := f.properties.ListPublic()
	require.NoError(t, err)
	require.Len(t, listed, 2, "inactive properties are excluded")
	assert.Equal(t, "Pinned", listed[0].Title, "featured sorts ahead of lower display order")
	assert.Equal(t, "Plain", listed[1].Title)

	require.NotNil(t, listed[1].AgentName)
	assert.Equal(t, "Ana", *listed[1].AgentName)
	assert.Nil(t, listed[0].AgentName, "agent-less property projects null")
}

func TestPropertyDelete(t *testing.T) {
	f := newUsecaseFixture(t)

	p, err := f.properties.Create(usecase.PropertyInput{Title: "Gone soon"})
	require.NoError(t, err)

	require.NoError(t, f.properties.Delete(p.ID))
	assert.True(t, apperrors.IsNotFound(f.properties.Delete(p.ID)))
}
