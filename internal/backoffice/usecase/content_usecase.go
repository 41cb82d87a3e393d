package usecase

import (
	"estatehub/internal/domain/model"
	"estatehub/internal/query"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"
)

// ContentService owns the ordered marketing-content collections: gallery
// items, customer journeys, and investor entries. They share the same
// listing shape, so the service funnels them through one generic path.
type ContentService struct {
	store  *store.Store
	codec  *store.Codec
	logger logger.Logger
}

// NewContentService creates the content service.
func NewContentService(s *store.Store, codec *store.Codec, log logger.Logger) *ContentService {
	return &ContentService{store: s, codec: codec, logger: log.WithComponent("content")}
}

func listOrdered[T interface {
	model.Listable
	model.Activatable
}](s *store.Store, name model.Collection, publicOnly bool) ([]T, error) {
	records, err := store.Read[T](s, name)
	if err != nil {
		return nil, err
	}
	if publicOnly {
		records = query.FilterActive(records)
	}
	return query.SortByDisplayThenRecency(records), nil
}

func deleteByID[T model.Record](s *store.Store, name model.Collection, resource, id string) error {
	return store.Mutate(s, name, func(records []T) ([]T, error) {
		i := indexOf(records, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError(resource)
		}
		return append(records[:i], records[i+1:]...), nil
	})
}

// ListGallery returns gallery items in display order.
func (svc *ContentService) ListGallery(publicOnly bool) ([]model.GalleryItem, error) {
	return listOrdered[model.GalleryItem](svc.store, model.CollectionGalleryItems, publicOnly)
}

// CreateGalleryItem adds a gallery image.
func (svc *ContentService) CreateGalleryItem(item model.GalleryItem) (*model.GalleryItem, error) {
	if item.ImageURL == "" {
		return nil, apperrors.NewValidationError("imageUrl is required")
	}
	item.Meta = newMeta(svc.codec)
	if item.IsActive == nil {
		item.IsActive = model.Bool(true)
	}
	err := store.Mutate(svc.store, model.CollectionGalleryItems, func(items []model.GalleryItem) ([]model.GalleryItem, error) {
		return append(items, item), nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteGalleryItem removes a gallery image.
func (svc *ContentService) DeleteGalleryItem(id string) error {
	return deleteByID[model.GalleryItem](svc.store, model.CollectionGalleryItems, "gallery item", id)
}

// ListJourneys returns customer journeys in display order.
func (svc *ContentService) ListJourneys(publicOnly bool) ([]model.Journey, error) {
	return listOrdered[model.Journey](svc.store, model.CollectionJourneys, publicOnly)
}

// CreateJourney adds a customer journey.
func (svc *ContentService) CreateJourney(journey model.Journey) (*model.Journey, error) {
	if journey.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}
	journey.Meta = newMeta(svc.codec)
	if journey.IsActive == nil {
		journey.IsActive = model.Bool(true)
	}
	err := store.Mutate(svc.store, model.CollectionJourneys, func(journeys []model.Journey) ([]model.Journey, error) {
		return append(journeys, journey), nil
	})
	if err != nil {
		return nil, err
	}
	return &journey, nil
}

// DeleteJourney removes a customer journey.
func (svc *ContentService) DeleteJourney(id string) error {
	return deleteByID[model.Journey](svc.store, model.CollectionJourneys, "journey", id)
}

// ListInvestors returns investor entries in display order.
func (svc *ContentService) ListInvestors(publicOnly bool) ([]model.Investor, error) {
	return listOrdered[model.Investor](svc.store, model.CollectionInvestors, publicOnly)
}

// CreateInvestor adds an investor entry.
func (svc *ContentService) CreateInvestor(investor model.Investor) (*model.Investor, error) {
	if investor.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	investor.Meta = newMeta(svc.codec)
	if investor.IsActive == nil {
		investor.IsActive = model.Bool(true)
	}
	err := store.Mutate(svc.store, model.CollectionInvestors, func(investors []model.Investor) ([]model.Investor, error) {
		return append(investors, investor), nil
	})
	if err != nil {
		return nil, err
	}
	return &investor, nil
}

// DeleteInvestor removes an investor entry.
func (svc *ContentService) DeleteInvestor(id string) error {
	return deleteByID[model.Investor](svc.store, model.CollectionInvestors, "investor", id)
}
