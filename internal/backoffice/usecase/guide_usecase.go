package usecase

import (
	"estatehub/internal/domain/model"
	"estatehub/internal/integrity"
	"estatehub/internal/query"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"
)

// GuideService owns the free-guide lead funnel.
type GuideService struct {
	store     *store.Store
	codec     *store.Codec
	integrity *integrity.Manager
	logger    logger.Logger
}

// NewGuideService creates the guide service.
func NewGuideService(s *store.Store, codec *store.Codec, im *integrity.Manager, log logger.Logger) *GuideService {
	return &GuideService{store: s, codec: codec, integrity: im, logger: log.WithComponent("guides")}
}

// GuideInput carries the caller-supplied fields of a guide.
type GuideInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	FileURL       string `json:"fileUrl"`
	CoverImageURL string `json:"coverImageUrl"`
	DisplayOrder  int    `json:"displayOrder"`
	IsActive      *bool  `json:"isActive"`
}

// DownloadInput carries a lead's details for a guide download.
type DownloadInput struct {
	GuideID string `json:"guideId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ListPublic returns active guides in the standard listing order.
func (svc *GuideService) ListPublic() ([]model.FreeGuide, error) {
	guides, err := store.Read[model.FreeGuide](svc.store, model.CollectionFreeGuides)
	if err != nil {
		return nil, err
	}
	return query.SortByDisplayThenRecency(query.FilterActive(guides)), nil
}

// ListAdmin returns every guide.
func (svc *GuideService) ListAdmin() ([]model.FreeGuide, error) {
	guides, err := store.Read[model.FreeGuide](svc.store, model.CollectionFreeGuides)
	if err != nil {
		return nil, err
	}
	return query.SortByDisplayThenRecency(guides), nil
}

// Create adds a guide.
func (svc *GuideService) Create(input GuideInput) (*model.FreeGuide, error) {
	if input.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	guide := model.FreeGuide{
		Meta:          newMeta(svc.codec),
		ActiveFlag:    model.ActiveFlag{IsActive: input.IsActive},
		Ordering:      model.Ordering{DisplayOrder: input.DisplayOrder},
		Title:         input.Title,
		Description:   input.Description,
		FileURL:       input.FileURL,
		CoverImageURL: input.CoverImageURL,
	}
	if guide.IsActive == nil {
		guide.IsActive = model.Bool(true)
	}

	err := store.Mutate(svc.store, model.CollectionFreeGuides, func(guides []model.FreeGuide) ([]model.FreeGuide, error) {
		return append(guides, guide), nil
	})
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

// Delete removes a guide and cascades to its recorded downloads.
func (svc *GuideService) Delete(id string) error {
	return svc.integrity.CascadeDeleteGuide(id)
}

// RecordDownload captures a lead downloading a guide. Public; the guide
// reference must resolve.
func (svc *GuideService) RecordDownload(input DownloadInput) (*model.GuideDownload, error) {
	if input.Name == "" || input.Email == "" {
		return nil, apperrors.NewValidationError("name and email are required")
	}
	if err := svc.integrity.ValidateGuideRef(input.GuideID); err != nil {
		return nil, err
	}

	download := model.GuideDownload{
		Meta:     newMeta(svc.codec),
		ReadFlag: model.ReadFlag{IsRead: model.Bool(false)},
		GuideID:  input.GuideID,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
	}

	err := store.Mutate(svc.store, model.CollectionGuideDownloads, func(downloads []model.GuideDownload) ([]model.GuideDownload, error) {
		return append(downloads, download), nil
	})
	if err != nil {
		return nil, err
	}

	svc.logger.Infof("guide download recorded: %s for guide %s", download.ID, download.GuideID)
	return &download, nil
}

// ListDownloads returns every recorded download, newest first.
func (svc *GuideService) ListDownloads() ([]model.GuideDownload, error) {
	downloads, err := store.Read[model.GuideDownload](svc.store, model.CollectionGuideDownloads)
	if err != nil {
		return nil, err
	}
	return query.SortByRecency(downloads), nil
}

// MarkDownloadRead flags a download as seen.
func (svc *GuideService) MarkDownloadRead(id string) error {
	return store.Mutate(svc.store, model.CollectionGuideDownloads, func(downloads []model.GuideDownload) ([]model.GuideDownload, error) {
		i := indexOf(downloads, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError("download")
		}
		downloads[i].IsRead = model.Bool(true)
		downloads[i].UpdatedAt = svc.codec.Now()
		return downloads, nil
	})
}
