package query_test

import (
	"testing"

	"estatehub/internal/domain/model"
	"estatehub/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agent(id string, displayOrder int, createdAt string, active *bool) model.Agent {
	return model.Agent{
		Meta:       model.Meta{ID: id, CreatedAt: createdAt, UpdatedAt: createdAt},
		Ordering:   model.Ordering{DisplayOrder: displayOrder},
		ActiveFlag: model.ActiveFlag{IsActive: active},
		Name:       "Agent " + id,
	}
}

func TestFilterActive_AbsentFlagDefaultsToActive(t *testing.T) {
	agents := []model.Agent{
		agent("a1", 1, "2025-01-01T00:00:00.000Z", nil),
		agent("a2", 2, "2025-01-01T00:00:00.000Z", model.Bool(true)),
		agent("a3", 3, "2025-01-01T00:00:00.000Z", model.Bool(false)),
	}

	active := query.FilterActive(agents)
	require.Len(t, active, 2)
	assert.Equal(t, "a1", active[0].ID)
	assert.Equal(t, "a2", active[1].ID)
}

func TestSortByDisplayThenRecency_OrderAndTieBreak(t *testing.T) {
	agents := []model.Agent{
		agent("x", 2, "2025-01-01T00:00:00.000Z", nil), // T1
		agent("y", 1, "2025-01-02T00:00:00.000Z", nil), // T2
		agent("z", 1, "2025-01-03T00:00:00.000Z", nil), // T3 > T2
	}

	sorted := query.SortByDisplayThenRecency(agents)
	require.Len(t, sorted, 3)
	assert.Equal(t, "z", sorted[0].ID, "same display order, newer createdAt wins the tie")
	assert.Equal(t, "y", sorted[1].ID)
	assert.Equal(t, "x", sorted[2].ID)
}

func TestSortByDisplayThenRecency_MissingOrderSortsFirst(t *testing.T) {
	agents := []model.Agent{
		agent("b", 5, "2025-01-01T00:00:00.000Z", nil),
		agent("a", 0, "2025-01-01T00:00:00.000Z", nil),
	}

	sorted := query.SortByDisplayThenRecency(agents)
	assert.Equal(t, "a", sorted[0].ID)
}

func TestSortByRecency(t *testing.T) {
	bookings := []model.Booking{
		{Meta: model.Meta{ID: "old", CreatedAt: "2025-01-01T00:00:00.000Z"}},
		{Meta: model.Meta{ID: "new", CreatedAt: "2025-02-01T00:00:00.000Z"}},
		{Meta: model.Meta{ID: "mid", CreatedAt: "2025-01-15T00:00:00.000Z"}},
	}

	sorted := query.SortByRecency(bookings)
	assert.Equal(t, []string{"new", "mid", "old"},
		[]string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortBy_FeaturedFirstPlan(t *testing.T) {
	props := []model.Property{
		{Meta: model.Meta{ID: "plain-early", CreatedAt: "2025-01-01T00:00:00.000Z"}, Ordering: model.Ordering{DisplayOrder: 1}},
		{Meta: model.Meta{ID: "featured-late", CreatedAt: "2025-01-05T00:00:00.000Z"}, Ordering: model.Ordering{DisplayOrder: 9}, IsFeatured: true},
		{Meta: model.Meta{ID: "featured-early", CreatedAt: "2025-01-02T00:00:00.000Z"}, Ordering: model.Ordering{DisplayOrder: 2}, IsFeatured: true},
	}

	sorted := query.SortBy(props,
		query.ByFeatured[model.Property](),
		query.ByDisplayOrder[model.Property](),
		query.ByRecency[model.Property](),
	)

	assert.Equal(t, []string{"featured-early", "featured-late", "plain-early"},
		[]string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortBy_DoesNotMutateInput(t *testing.T) {
	agents := []model.Agent{
		agent("b", 2, "2025-01-01T00:00:00.000Z", nil),
		agent("a", 1, "2025-01-01T00:00:00.000Z", nil),
	}

	_ = query.SortByDisplayThenRecency(agents)
	assert.Equal(t, "b", agents[0].ID)
}

func TestJoinOne_AttachesAgentName(t *testing.T) {
	agents := []model.Agent{
		agent("a1", 0, "2025-01-01T00:00:00.000Z", nil),
	}
	reviews := []model.Review{
		{Meta: model.Meta{ID: "r1"}, AuthorName: "Maya", AgentID: "a1"},
		{Meta: model.Meta{ID: "r2"}, AuthorName: "Theo", AgentID: "gone"},
		{Meta: model.Meta{ID: "r3"}, AuthorName: "Iris"},
	}

	joined := query.JoinOne(reviews,
		func(r model.Review) string { return r.AgentID },
		agents,
		func(a model.Agent) string { return a.ID },
		func(r *model.Review, a *model.Agent) {
			if a != nil {
				r.AgentName = &a.Name
			}
		},
	)

	require.Len(t, joined, 3)
	require.NotNil(t, joined[0].AgentName)
	assert.Equal(t, "Agent a1", *joined[0].AgentName)
	assert.Nil(t, joined[1].AgentName, "missing match projects null, not an error")
	assert.Nil(t, joined[2].AgentName)
	assert.Nil(t, reviews[0].AgentName, "input slice stays untouched")
}

func TestFilterUnread(t *testing.T) {
	messages := []model.ContactMessage{
		{Meta: model.Meta{ID: "m1"}},
		{Meta: model.Meta{ID: "m2"}, ReadFlag: model.ReadFlag{IsRead: model.Bool(true)}},
		{Meta: model.Meta{ID: "m3"}, ReadFlag: model.ReadFlag{IsRead: model.Bool(false)}},
	}

	unread := query.FilterUnread(messages)
	require.Len(t, unread, 2)
	assert.Equal(t, "m1", unread[0].ID)
	assert.Equal(t, "m3", unread[1].ID)
}
