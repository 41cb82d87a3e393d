package notify_test

import (
	"testing"

	"estatehub/internal/domain/model"
	"estatehub/internal/notify"
	"estatehub/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAggregatorFixture(t *testing.T) (*store.Store, *notify.Aggregator) {
	t.Helper()
	s, err := store.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return s, notify.NewAggregator(s)
}

func TestUnreadCount_AbsenceCountsAsUnread(t *testing.T) {
	s, agg := newAggregatorFixture(t)

	require.NoError(t, store.Replace(s, model.CollectionContactMessages, []model.ContactMessage{
		{Meta: model.Meta{ID: "m1"}, Name: "Ada"},
		{Meta: model.Meta{ID: "m2"}, Name: "Ben", ReadFlag: model.ReadFlag{IsRead: model.Bool(false)}},
		{Meta: model.Meta{ID: "m3"}, Name: "Cleo", ReadFlag: model.ReadFlag{IsRead: model.Bool(true)}},
	}))

	n, err := agg.UnreadCount(model.CollectionContactMessages)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUnreadCount_RejectsNonNotificationCollection(t *testing.T) {
	_, agg := newAggregatorFixture(t)

	_, err := agg.UnreadCount(model.CollectionAgents)
	assert.Error(t, err)
}

func TestTotalUnread_SumsPerCollectionCounts(t *testing.T) {
	s, agg := newAggregatorFixture(t)

	require.NoError(t, store.Replace(s, model.CollectionContactMessages, []model.ContactMessage{
		{Meta: model.Meta{ID: "m1"}},
		{Meta: model.Meta{ID: "m2"}},
		{Meta: model.Meta{ID: "m3"}, ReadFlag: model.ReadFlag{IsRead: model.Bool(true)}},
	}))
	require.NoError(t, store.Replace(s, model.CollectionBookings, []model.Booking{
		{Meta: model.Meta{ID: "b1"}},
	}))

	total, err := agg.TotalUnread(model.CollectionContactMessages, model.CollectionBookings)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestTotalUnread_DefaultsToNotificationSet(t *testing.T) {
	s, agg := newAggregatorFixture(t)

	require.NoError(t, store.Replace(s, model.CollectionBuyerEnquiries, []model.BuyerEnquiry{
		{Meta: model.Meta{ID: "e1"}, BuyerID: "b1"},
	}))
	require.NoError(t, store.Replace(s, model.CollectionGuideDownloads, []model.GuideDownload{
		{Meta: model.Meta{ID: "d1"}, GuideID: "g1", Name: "Lena"},
	}))

	total, err := agg.TotalUnread()
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestRecentUnread_MergesSortsAndTruncates(t *testing.T) {
	s, agg := newAggregatorFixture(t)

	require.NoError(t, store.Replace(s, model.CollectionContactMessages, []model.ContactMessage{
		{Meta: model.Meta{ID: "m1", CreatedAt: "2025-03-01T00:00:00.000Z"}, Name: "Ada"},
		{Meta: model.Meta{ID: "m2", CreatedAt: "2025-03-05T00:00:00.000Z"}, Name: "Ben", ReadFlag: model.ReadFlag{IsRead: model.Bool(true)}},
	}))
	require.NoError(t, store.Replace(s, model.CollectionBookings, []model.Booking{
		{Meta: model.Meta{ID: "b1", CreatedAt: "2025-03-04T00:00:00.000Z"}, Name: "Cleo"},
	}))
	require.NoError(t, store.Replace(s, model.CollectionGuideDownloads, []model.GuideDownload{
		{Meta: model.Meta{ID: "d1", CreatedAt: "2025-03-02T00:00:00.000Z"}, GuideID: "g1", Name: "Lena"},
	}))

	items, err := agg.RecentUnread(2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b1", items[0].ID)
	assert.Equal(t, notify.KindBooking, items[0].Kind)
	assert.Equal(t, "d1", items[1].ID)
	assert.False(t, items[0].IsRead)
}

func TestRecentUnread_EmptyStore(t *testing.T) {
	_, agg := newAggregatorFixture(t)

	items, err := agg.RecentUnread(10)
	require.NoError(t, err)
	assert.Empty(t, items)
}
