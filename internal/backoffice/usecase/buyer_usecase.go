package usecase

import (
	"estatehub/internal/domain/model"
	"estatehub/internal/integrity"
	"estatehub/internal/query"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"
)

// BuyerService owns the buyer registry and its enquiries.
type BuyerService struct {
	store     *store.Store
	codec     *store.Codec
	integrity *integrity.Manager
	logger    logger.Logger
}

// NewBuyerService creates the buyer service.
func NewBuyerService(s *store.Store, codec *store.Codec, im *integrity.Manager, log logger.Logger) *BuyerService {
	return &BuyerService{store: s, codec: codec, integrity: im, logger: log.WithComponent("buyers")}
}

// BuyerInput carries the caller-supplied fields of a buyer registration.
type BuyerInput struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Budget            float64 `json:"budget"`
	PreferredLocation string  `json:"preferredLocation"`
	Notes             string  `json:"notes"`
}

// EnquiryInput carries the caller-supplied fields of a buyer enquiry.
type EnquiryInput struct {
	BuyerID   string `json:"buyerId"`
	AgentName string `json:"agentName"`
	Message   string `json:"message"`
}

// Register adds a buyer to the registry. Public, unauthenticated.
func (svc *BuyerService) Register(input BuyerInput) (*model.Buyer, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	buyer := model.Buyer{
		Meta:              newMeta(svc.codec),
		ActiveFlag:        model.ActiveFlag{IsActive: model.Bool(true)},
		Name:              input.Name,
		Email:             input.Email,
		Phone:             input.Phone,
		Budget:            input.Budget,
		PreferredLocation: input.PreferredLocation,
		Notes:             input.Notes,
	}

	err := store.Mutate(svc.store, model.CollectionBuyers, func(buyers []model.Buyer) ([]model.Buyer, error) {
		return append(buyers, buyer), nil
	})
	if err != nil {
		return nil, err
	}

	svc.logger.Infof("buyer registered: %s", buyer.ID)
	return &buyer, nil
}

// List returns every registered buyer, newest first.
func (svc *BuyerService) List() ([]model.Buyer, error) {
	buyers, err := store.Read[model.Buyer](svc.store, model.CollectionBuyers)
	if err != nil {
		return nil, err
	}
	return query.SortByRecency(buyers), nil
}

// Delete removes a buyer and cascades to its enquiries.
func (svc *BuyerService) Delete(id string) error {
	return svc.integrity.CascadeDeleteBuyer(id)
}

// CreateEnquiry records an enquiry for a registered buyer. The buyer
// reference must resolve; creation fails otherwise and the enquiry
// collection is left unchanged.
func (svc *BuyerService) CreateEnquiry(input EnquiryInput) (*model.BuyerEnquiry, error) {
	if err := svc.integrity.ValidateBuyerRef(input.BuyerID); err != nil {
		return nil, err
	}

	enquiry := model.BuyerEnquiry{
		Meta:      newMeta(svc.codec),
		ReadFlag:  model.ReadFlag{IsRead: model.Bool(false)},
		BuyerID:   input.BuyerID,
		AgentName: input.AgentName,
		Message:   input.Message,
	}

	err := store.Mutate(svc.store, model.CollectionBuyerEnquiries, func(enquiries []model.BuyerEnquiry) ([]model.BuyerEnquiry, error) {
		return append(enquiries, enquiry), nil
	})
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

// ListEnquiries returns every enquiry, newest first.
func (svc *BuyerService) ListEnquiries() ([]model.BuyerEnquiry, error) {
	enquiries, err := store.Read[model.BuyerEnquiry](svc.store, model.CollectionBuyerEnquiries)
	if err != nil {
		return nil, err
	}
	return query.SortByRecency(enquiries), nil
}

// MarkEnquiryRead flags an enquiry as seen.
func (svc *BuyerService) MarkEnquiryRead(id string) error {
	return store.Mutate(svc.store, model.CollectionBuyerEnquiries, func(enquiries []model.BuyerEnquiry) ([]model.BuyerEnquiry, error) {
		i := indexOf(enquiries, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError("enquiry")
		}
		enquiries[i].IsRead = model.Bool(true)
		enquiries[i].UpdatedAt = svc.codec.Now()
		return enquiries, nil
	})
}
