// Package integrity encodes the cascade and foreign-key rules that run
// alongside mutations. Only two parent-child pairs are enforced:
// buyers→buyerEnquiries and freeGuides→guideDownloads. Agent references on
// properties, reviews, and contact messages are optional and deliberately
// unvalidated; deleting an agent leaves those foreign keys dangling.
package integrity

import (
	"estatehub/internal/domain/model"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/store"

	"go.uber.org/zap"
)

// Manager runs foreign-key validation and cascading deletes against the store.
type Manager struct {
	store  *store.Store
	logger *zap.Logger
}

// NewManager creates a referential-integrity manager.
func NewManager(s *store.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: s, logger: logger}
}

func exists[T model.Record](s *store.Store, name model.Collection, id string) (bool, error) {
	records, err := store.Read[T](s, name)
	if err != nil {
		return false, err
	}
	for _, r := range records {
		if r.RecordID() == id {
			return true, nil
		}
	}
	return false, nil
}

// ValidateBuyerRef checks that a buyer exists before an enquiry referencing
// it may be created.
func (m *Manager) ValidateBuyerRef(buyerID string) error {
	if buyerID == "" {
		return apperrors.NewValidationError("buyerId is required")
	}
	ok, err := exists[model.Buyer](m.store, model.CollectionBuyers, buyerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewValidationError("buyerId does not reference an existing buyer").
			WithDetail("buyerId", buyerID).
			WithCause(apperrors.ErrForeignKey)
	}
	return nil
}

// ValidateGuideRef checks that a guide exists before a download referencing
// it may be recorded.
func (m *Manager) ValidateGuideRef(guideID string) error {
	if guideID == "" {
		return apperrors.NewValidationError("guideId is required")
	}
	ok, err := exists[model.FreeGuide](m.store, model.CollectionFreeGuides, guideID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewValidationError("guideId does not reference an existing guide").
			WithDetail("guideId", guideID).
			WithCause(apperrors.ErrForeignKey)
	}
	return nil
}

// CascadeDeleteBuyer removes a buyer and every enquiry referencing it. The
// child collection is written before the parent, so a crash between the two
// writes leaves orphaned enquiries rather than a dangling buyerId. This is
// best-effort ordering, not a transaction.
func (m *Manager) CascadeDeleteBuyer(buyerID string) error {
	ok, err := exists[model.Buyer](m.store, model.CollectionBuyers, buyerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewNotFoundError("buyer").WithDetail("buyerId", buyerID)
	}

	removed := 0
	err = store.Mutate(m.store, model.CollectionBuyerEnquiries, func(enquiries []model.BuyerEnquiry) ([]model.BuyerEnquiry, error) {
		kept := make([]model.BuyerEnquiry, 0, len(enquiries))
		for _, e := range enquiries {
			if e.BuyerID == buyerID {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	err = store.Mutate(m.store, model.CollectionBuyers, func(buyers []model.Buyer) ([]model.Buyer, error) {
		kept := make([]model.Buyer, 0, len(buyers))
		for _, b := range buyers {
			if b.ID == buyerID {
				continue
			}
			kept = append(kept, b)
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	m.logger.Info("buyer deleted with cascading enquiries",
		zap.String("buyerId", buyerID),
		zap.Int("enquiriesRemoved", removed))
	return nil
}

// CascadeDeleteGuide removes a guide and every download referencing it,
// child collection first.
func (m *Manager) CascadeDeleteGuide(guideID string) error {
	ok, err := exists[model.FreeGuide](m.store, model.CollectionFreeGuides, guideID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewNotFoundError("guide").WithDetail("guideId", guideID)
	}

	removed := 0
	err = store.Mutate(m.store, model.CollectionGuideDownloads, func(downloads []model.GuideDownload) ([]model.GuideDownload, error) {
		kept := make([]model.GuideDownload, 0, len(downloads))
		for _, d := range downloads {
			if d.GuideID == guideID {
				removed++
				continue
			}
			kept = append(kept, d)
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	err = store.Mutate(m.store, model.CollectionFreeGuides, func(guides []model.FreeGuide) ([]model.FreeGuide, error) {
		kept := make([]model.FreeGuide, 0, len(guides))
		for _, g := range guides {
			if g.ID == guideID {
				continue
			}
			kept = append(kept, g)
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	m.logger.Info("guide deleted with cascading downloads",
		zap.String("guideId", guideID),
		zap.Int("downloadsRemoved", removed))
	return nil
}
