package usecase

import (
	"estatehub/internal/domain/model"
	"estatehub/internal/query"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"
)

// ReviewService owns the review call sites.
type ReviewService struct {
	store  *store.Store
	codec  *store.Codec
	logger logger.Logger
}

// NewReviewService creates the review service.
func NewReviewService(s *store.Store, codec *store.Codec, log logger.Logger) *ReviewService {
	return &ReviewService{store: s, codec: codec, logger: log.WithComponent("reviews")}
}

// ReviewInput carries the caller-supplied fields of a review.
type ReviewInput struct {
	AuthorName   string `json:"authorName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	AgentID      string `json:"agentId"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

func (svc *ReviewService) joinAgentNames(reviews []model.Review) ([]model.Review, error) {
	agents, err := store.Read[model.Agent](svc.store, model.CollectionAgents)
	if err != nil {
		return nil, err
	}
	return query.JoinOne(reviews,
		func(r model.Review) string { return r.AgentID },
		agents,
		func(a model.Agent) string { return a.ID },
		func(r *model.Review, a *model.Agent) {
			if a != nil {
				r.AgentName = &a.Name
			}
		},
	), nil
}

// ListPublic returns active reviews with the agent name attached.
func (svc *ReviewService) ListPublic() ([]model.Review, error) {
	reviews, err := store.Read[model.Review](svc.store, model.CollectionReviews)
	if err != nil {
		return nil, err
	}
	reviews = query.SortByDisplayThenRecency(query.FilterActive(reviews))
	return svc.joinAgentNames(reviews)
}

// ListAdmin returns every review with the agent name attached.
func (svc *ReviewService) ListAdmin() ([]model.Review, error) {
	reviews, err := store.Read[model.Review](svc.store, model.CollectionReviews)
	if err != nil {
		return nil, err
	}
	return svc.joinAgentNames(query.SortByDisplayThenRecency(reviews))
}

// Create adds a review. AgentID is optional and deliberately unvalidated.
func (svc *ReviewService) Create(input ReviewInput) (*model.Review, error) {
	if input.AuthorName == "" {
		return nil, apperrors.NewValidationError("authorName is required")
	}
	if input.Rating < 0 || input.Rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 0 and 5")
	}

	review := model.Review{
		Meta:       newMeta(svc.codec),
		ActiveFlag: model.ActiveFlag{IsActive: input.IsActive},
		Ordering:   model.Ordering{DisplayOrder: input.DisplayOrder},
		AuthorName: input.AuthorName,
		Rating:     input.Rating,
		Comment:    input.Comment,
		AgentID:    input.AgentID,
	}
	if review.IsActive == nil {
		review.IsActive = model.Bool(true)
	}

	err := store.Mutate(svc.store, model.CollectionReviews, func(reviews []model.Review) ([]model.Review, error) {
		return append(reviews, review), nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review.
func (svc *ReviewService) Delete(id string) error {
	return store.Mutate(svc.store, model.CollectionReviews, func(reviews []model.Review) ([]model.Review, error) {
		i := indexOf(reviews, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError("review")
		}
		return append(reviews[:i], reviews[i+1:]...), nil
	})
}
