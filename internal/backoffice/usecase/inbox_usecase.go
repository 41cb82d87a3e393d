package usecase

import (
	"estatehub/internal/domain/model"
	"estatehub/internal/query"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"
)

// InboxService owns the message-like collections: viewing bookings and
// contact-form messages. Both are created publicly and administered behind
// the token gate.
type InboxService struct {
	store  *store.Store
	codec  *store.Codec
	logger logger.Logger
}

// NewInboxService creates the inbox service.
func NewInboxService(s *store.Store, codec *store.Codec, log logger.Logger) *InboxService {
	return &InboxService{store: s, codec: codec, logger: log.WithComponent("inbox")}
}

// BookingInput carries a publicly submitted viewing request.
type BookingInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Date       string `json:"date"`
	Message    string `json:"message"`
	PropertyID string `json:"propertyId"`
}

// MessageInput carries a publicly submitted contact-form message.
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	AgentID string `json:"agentId"`
}

// CreateBooking records a viewing request.
func (svc *InboxService) CreateBooking(input BookingInput) (*model.Booking, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	booking := model.Booking{
		Meta:       newMeta(svc.codec),
		ReadFlag:   model.ReadFlag{IsRead: model.Bool(false)},
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Date:       input.Date,
		Message:    input.Message,
		PropertyID: input.PropertyID,
	}

	err := store.Mutate(svc.store, model.CollectionBookings, func(bookings []model.Booking) ([]model.Booking, error) {
		return append(bookings, booking), nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookings returns every booking, newest first.
func (svc *InboxService) ListBookings() ([]model.Booking, error) {
	bookings, err := store.Read[model.Booking](svc.store, model.CollectionBookings)
	if err != nil {
		return nil, err
	}
	return query.SortByRecency(bookings), nil
}

// MarkBookingRead flags a booking as seen.
func (svc *InboxService) MarkBookingRead(id string) error {
	return store.Mutate(svc.store, model.CollectionBookings, func(bookings []model.Booking) ([]model.Booking, error) {
		i := indexOf(bookings, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError("booking")
		}
		bookings[i].IsRead = model.Bool(true)
		bookings[i].UpdatedAt = svc.codec.Now()
		return bookings, nil
	})
}

// CreateMessage records a contact-form message. AgentID is optional and
// unvalidated.
func (svc *InboxService) CreateMessage(input MessageInput) (*model.ContactMessage, error) {
	if input.Name == "" || input.Message == "" {
		return nil, apperrors.NewValidationError("name and message are required")
	}

	message := model.ContactMessage{
		Meta:     newMeta(svc.codec),
		ReadFlag: model.ReadFlag{IsRead: model.Bool(false)},
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Subject:  input.Subject,
		Message:  input.Message,
		AgentID:  input.AgentID,
	}

	err := store.Mutate(svc.store, model.CollectionContactMessages, func(messages []model.ContactMessage) ([]model.ContactMessage, error) {
		return append(messages, message), nil
	})
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListMessages returns every contact message, newest first.
func (svc *InboxService) ListMessages() ([]model.ContactMessage, error) {
	messages, err := store.Read[model.ContactMessage](svc.store, model.CollectionContactMessages)
	if err != nil {
		return nil, err
	}
	return query.SortByRecency(messages), nil
}

// MarkMessageRead flags a contact message as seen.
func (svc *InboxService) MarkMessageRead(id string) error {
	return store.Mutate(svc.store, model.CollectionContactMessages, func(messages []model.ContactMessage) ([]model.ContactMessage, error) {
		i := indexOf(messages, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError("message")
		}
		messages[i].IsRead = model.Bool(true)
		messages[i].UpdatedAt = svc.codec.Now()
		return messages, nil
	})
}

// DeleteMessage removes a contact message.
func (svc *InboxService) DeleteMessage(id string) error {
	return store.Mutate(svc.store, model.CollectionContactMessages, func(messages []model.ContactMessage) ([]model.ContactMessage, error) {
		i := indexOf(messages, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError("message")
		}
		return append(messages[:i], messages[i+1:]...), nil
	})
}
