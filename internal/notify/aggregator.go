// Package notify computes the cross-collection derived values behind the
// admin notification badge and feed. Each notification-bearing collection
// keeps its own shape; the aggregator counts and projects them independently
// and only merges the uniform projections.
package notify

import (
	"fmt"

	"estatehub/internal/domain/model"
	"estatehub/internal/query"
	"estatehub/internal/store"
)

// Kinds of notification items, one per source collection.
const (
	KindContactMessage = "contactMessage"
	KindBooking        = "booking"
	KindGuideDownload  = "guideDownload"
	KindBuyerEnquiry   = "buyerEnquiry"
)

// Item is the uniform notification projection of an unread record.
type Item struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Summary   string `json:"summary"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"`
}

// Created satisfies the record contract so items can reuse the recency sort.
func (i Item) Created() string { return i.CreatedAt }

// RecordID satisfies the record contract.
func (i Item) RecordID() string { return i.ID }

// Aggregator computes unread counts and the merged notification feed.
type Aggregator struct {
	store *store.Store
}

// NewAggregator creates an aggregator over the store.
func NewAggregator(s *store.Store) *Aggregator {
	return &Aggregator{store: s}
}

func countUnread[T model.Readable](s *store.Store, name model.Collection) (int, error) {
	records, err := store.Read[T](s, name)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range records {
		if !r.Read() {
			n++
		}
	}
	return n, nil
}

// UnreadCount returns the number of unread records in one collection.
// Absence of the read flag counts as unread.
func (a *Aggregator) UnreadCount(name model.Collection) (int, error) {
	switch name {
	case model.CollectionContactMessages:
		return countUnread[model.ContactMessage](a.store, name)
	case model.CollectionBookings:
		return countUnread[model.Booking](a.store, name)
	case model.CollectionGuideDownloads:
		return countUnread[model.GuideDownload](a.store, name)
	case model.CollectionBuyerEnquiries:
		return countUnread[model.BuyerEnquiry](a.store, name)
	default:
		return 0, fmt.Errorf("collection %q does not carry a read flag", name)
	}
}

// TotalUnread sums the independent per-collection unread counts.
func (a *Aggregator) TotalUnread(names ...model.Collection) (int, error) {
	if len(names) == 0 {
		names = model.NotificationCollections()
	}
	total := 0
	for _, name := range names {
		n, err := a.UnreadCount(name)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// RecentUnread projects every unread record into the uniform item shape,
// merges across collections, sorts newest first, and truncates to limit.
func (a *Aggregator) RecentUnread(limit int) ([]Item, error) {
	var items []Item

	messages, err := store.Read[model.ContactMessage](a.store, model.CollectionContactMessages)
	if err != nil {
		return nil, err
	}
	for _, m := range query.FilterUnread(messages) {
		items = append(items, Item{
			ID:        m.ID,
			Kind:      KindContactMessage,
			Summary:   fmt.Sprintf("Message from %s", m.Name),
			CreatedAt: m.CreatedAt,
		})
	}

	bookings, err := store.Read[model.Booking](a.store, model.CollectionBookings)
	if err != nil {
		return nil, err
	}
	for _, b := range query.FilterUnread(bookings) {
		items = append(items, Item{
			ID:        b.ID,
			Kind:      KindBooking,
			Summary:   fmt.Sprintf("Viewing request from %s", b.Name),
			CreatedAt: b.CreatedAt,
		})
	}

	downloads, err := store.Read[model.GuideDownload](a.store, model.CollectionGuideDownloads)
	if err != nil {
		return nil, err
	}
	for _, d := range query.FilterUnread(downloads) {
		items = append(items, Item{
			ID:        d.ID,
			Kind:      KindGuideDownload,
			Summary:   fmt.Sprintf("Guide downloaded by %s", d.Name),
			CreatedAt: d.CreatedAt,
		})
	}

	enquiries, err := store.Read[model.BuyerEnquiry](a.store, model.CollectionBuyerEnquiries)
	if err != nil {
		return nil, err
	}
	for _, e := range query.FilterUnread(enquiries) {
		items = append(items, Item{
			ID:        e.ID,
			Kind:      KindBuyerEnquiry,
			Summary:   fmt.Sprintf("Buyer enquiry via %s", e.AgentName),
			CreatedAt: e.CreatedAt,
		})
	}

	items = query.SortByRecency(items)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
