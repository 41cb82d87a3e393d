// Package http wires the per-resource usecases onto the fiber app: a public
// group for the marketing site and an admin group behind the bearer-token
// gate. Handlers here are thin call sites; every rule lives below them.
package http

import (
	"errors"

	authhttp "estatehub/internal/auth/adapter/http"
	authusecase "estatehub/internal/auth/usecase"
	"estatehub/internal/backoffice/usecase"
	"estatehub/internal/domain/model"
	"estatehub/internal/notify"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// Services bundles everything the router dispatches to.
type Services struct {
	Identity   authusecase.IdentityUsecaseInterface
	Properties *usecase.PropertyService
	Agents     *usecase.AgentService
	Reviews    *usecase.ReviewService
	Buyers     *usecase.BuyerService
	Guides     *usecase.GuideService
	Inbox      *usecase.InboxService
	Content    *usecase.ContentService
	Settings   *usecase.SettingsService
	Notify     *notify.Aggregator
	Log        logger.Logger
}

// Handler exposes the back-office HTTP surface.
type Handler struct {
	svc Services
}

// NewHandler creates the HTTP handler.
func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

// audit records a destructive admin action against the acting admin.
func (h *Handler) audit(c *fiber.Ctx, action, resource string) {
	adminID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		adminID = "unknown"
	}
	h.svc.Log.Infof("%s %s %s by admin %s", action, resource, c.Params("id"), adminID)
}

// respondError translates the error taxonomy to a response. Unknown errors
// collapse into a generic failure so internals never leak.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{"error": appErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func respondList[T any](c *fiber.Ctx, records []T, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

// Register mounts every route onto the app.
func (h *Handler) Register(app *fiber.App, mw *authhttp.AuthMiddleware) {
	api := app.Group("/api/v1")

	// Public surface: reads of active content, and the user-submitted
	// creations (bookings, messages, registrations, enquiries, downloads).
	api.Get("/properties", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Properties.ListPublic())
		return respondList(c, records, err)
	})
	api.Get("/properties/:id", h.getProperty)
	api.Get("/agents", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Agents.ListPublic())
		return respondList(c, records, err)
	})
	api.Get("/reviews", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Reviews.ListPublic())
		return respondList(c, records, err)
	})
	api.Get("/gallery", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Content.ListGallery(true))
		return respondList(c, records, err)
	})
	api.Get("/journeys", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Content.ListJourneys(true))
		return respondList(c, records, err)
	})
	api.Get("/investors", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Content.ListInvestors(true))
		return respondList(c, records, err)
	})
	api.Get("/guides", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Guides.ListPublic())
		return respondList(c, records, err)
	})
	api.Get("/contact-info", h.getContactInfo)
	api.Get("/site-settings", h.getSiteSettings)

	api.Post("/bookings", h.createBooking)
	api.Post("/messages", h.createMessage)
	api.Post("/buyers", h.registerBuyer)
	api.Post("/buyer-enquiries", h.createEnquiry)
	api.Post("/guide-downloads", h.recordDownload)

	api.Post("/admin/login", h.login)

	// Privileged surface.
	admin := api.Group("/admin", mw.RequireAdmin())

	admin.Get("/properties", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Properties.ListAdmin())
		return respondList(c, records, err)
	})
	admin.Post("/properties", h.createProperty)
	admin.Put("/properties/:id", h.updateProperty)
	admin.Delete("/properties/:id", h.deleteProperty)

	admin.Get("/agents", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Agents.ListAdmin())
		return respondList(c, records, err)
	})
	admin.Post("/agents", h.createAgent)
	admin.Put("/agents/:id", h.updateAgent)
	admin.Delete("/agents/:id", h.deleteAgent)

	admin.Get("/reviews", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Reviews.ListAdmin())
		return respondList(c, records, err)
	})
	admin.Post("/reviews", h.createReview)
	admin.Delete("/reviews/:id", h.deleteReview)

	admin.Get("/buyers", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Buyers.List())
		return respondList(c, records, err)
	})
	admin.Delete("/buyers/:id", h.deleteBuyer)
	admin.Get("/buyer-enquiries", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Buyers.ListEnquiries())
		return respondList(c, records, err)
	})
	admin.Patch("/buyer-enquiries/:id/read", h.markEnquiryRead)

	admin.Get("/guides", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Guides.ListAdmin())
		return respondList(c, records, err)
	})
	admin.Post("/guides", h.createGuide)
	admin.Delete("/guides/:id", h.deleteGuide)
	admin.Get("/guide-downloads", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Guides.ListDownloads())
		return respondList(c, records, err)
	})
	admin.Patch("/guide-downloads/:id/read", h.markDownloadRead)

	admin.Get("/bookings", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Inbox.ListBookings())
		return respondList(c, records, err)
	})
	admin.Patch("/bookings/:id/read", h.markBookingRead)
	admin.Get("/messages", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Inbox.ListMessages())
		return respondList(c, records, err)
	})
	admin.Patch("/messages/:id/read", h.markMessageRead)
	admin.Delete("/messages/:id", h.deleteMessage)

	admin.Get("/gallery", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Content.ListGallery(false))
		return respondList(c, records, err)
	})
	admin.Post("/gallery", h.createGalleryItem)
	admin.Delete("/gallery/:id", h.deleteGalleryItem)
	admin.Get("/journeys", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Content.ListJourneys(false))
		return respondList(c, records, err)
	})
	admin.Post("/journeys", h.createJourney)
	admin.Delete("/journeys/:id", h.deleteJourney)
	admin.Get("/investors", func(c *fiber.Ctx) error {
		records, err := must(h.svc.Content.ListInvestors(false))
		return respondList(c, records, err)
	})
	admin.Post("/investors", h.createInvestor)
	admin.Delete("/investors/:id", h.deleteInvestor)

	admin.Put("/contact-info", h.putContactInfo)
	admin.Put("/site-settings", h.putSiteSettings)

	admin.Get("/notifications", h.listNotifications)
	admin.Get("/notifications/unread-count", h.unreadCount)
}

// must adapts the (records, err) pair for respondList.
func must[T any](records []T, err error) ([]T, error) { return records, err }

func (h *Handler) login(c *fiber.Ctx) error {
	var req authusecase.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	admin, token, err := h.svc.Identity.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"admin": admin, "token": token})
}

func (h *Handler) getProperty(c *fiber.Ctx) error {
	property, err := h.svc.Properties.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(property)
}

func (h *Handler) createProperty(c *fiber.Ctx) error {
	var input usecase.PropertyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	property, err := h.svc.Properties.Create(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

func (h *Handler) updateProperty(c *fiber.Ctx) error {
	var update usecase.PropertyUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	property, err := h.svc.Properties.Update(c.Params("id"), update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(property)
}

func (h *Handler) deleteProperty(c *fiber.Ctx) error {
	if err := h.svc.Properties.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	h.audit(c, "deleted", "property")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) createAgent(c *fiber.Ctx) error {
	var input usecase.AgentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	agent, err := h.svc.Agents.Create(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(agent)
}

func (h *Handler) updateAgent(c *fiber.Ctx) error {
	var update usecase.AgentUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	agent, err := h.svc.Agents.Update(c.Params("id"), update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(agent)
}

func (h *Handler) deleteAgent(c *fiber.Ctx) error {
	if err := h.svc.Agents.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	h.audit(c, "deleted", "agent")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) createReview(c *fiber.Ctx) error {
	var input usecase.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	review, err := h.svc.Reviews.Create(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *Handler) deleteReview(c *fiber.Ctx) error {
	if err := h.svc.Reviews.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	h.audit(c, "deleted", "review")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) registerBuyer(c *fiber.Ctx) error {
	var input usecase.BuyerInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	buyer, err := h.svc.Buyers.Register(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(buyer)
}

func (h *Handler) deleteBuyer(c *fiber.Ctx) error {
	if err := h.svc.Buyers.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	h.audit(c, "deleted", "buyer")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) createEnquiry(c *fiber.Ctx) error {
	var input usecase.EnquiryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	enquiry, err := h.svc.Buyers.CreateEnquiry(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(enquiry)
}

func (h *Handler) markEnquiryRead(c *fiber.Ctx) error {
	if err := h.svc.Buyers.MarkEnquiryRead(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) createGuide(c *fiber.Ctx) error {
	var input usecase.GuideInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	guide, err := h.svc.Guides.Create(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(guide)
}

func (h *Handler) deleteGuide(c *fiber.Ctx) error {
	if err := h.svc.Guides.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	h.audit(c, "deleted", "guide")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) recordDownload(c *fiber.Ctx) error {
	var input usecase.DownloadInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	download, err := h.svc.Guides.RecordDownload(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(download)
}

func (h *Handler) markDownloadRead(c *fiber.Ctx) error {
	if err := h.svc.Guides.MarkDownloadRead(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) createBooking(c *fiber.Ctx) error {
	var input usecase.BookingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	booking, err := h.svc.Inbox.CreateBooking(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *Handler) markBookingRead(c *fiber.Ctx) error {
	if err := h.svc.Inbox.MarkBookingRead(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) createMessage(c *fiber.Ctx) error {
	var input usecase.MessageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	message, err := h.svc.Inbox.CreateMessage(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

func (h *Handler) markMessageRead(c *fiber.Ctx) error {
	if err := h.svc.Inbox.MarkMessageRead(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) deleteMessage(c *fiber.Ctx) error {
	if err := h.svc.Inbox.DeleteMessage(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	h.audit(c, "deleted", "message")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) createGalleryItem(c *fiber.Ctx) error {
	var item model.GalleryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	created, err := h.svc.Content.CreateGalleryItem(item)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) deleteGalleryItem(c *fiber.Ctx) error {
	if err := h.svc.Content.DeleteGalleryItem(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	h.audit(c, "deleted", "gallery item")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) createJourney(c *fiber.Ctx) error {
	var journey model.Journey
	if err := c.BodyParser(&journey); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	created, err := h.svc.Content.CreateJourney(journey)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) deleteJourney(c *fiber.Ctx) error {
	if err := h.svc.Content.DeleteJourney(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	h.audit(c, "deleted", "journey")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) createInvestor(c *fiber.Ctx) error {
	var investor model.Investor
	if err := c.BodyParser(&investor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	created, err := h.svc.Content.CreateInvestor(investor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) deleteInvestor(c *fiber.Ctx) error {
	if err := h.svc.Content.DeleteInvestor(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	h.audit(c, "deleted", "investor")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) getContactInfo(c *fiber.Ctx) error {
	info, err := h.svc.Settings.GetContactInfo()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(info)
}

func (h *Handler) putContactInfo(c *fiber.Ctx) error {
	var info model.ContactInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	saved, err := h.svc.Settings.PutContactInfo(info)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

func (h *Handler) getSiteSettings(c *fiber.Ctx) error {
	settings, err := h.svc.Settings.GetSiteSettings()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

func (h *Handler) putSiteSettings(c *fiber.Ctx) error {
	var settings model.SiteSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	saved, err := h.svc.Settings.PutSiteSettings(settings)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

func (h *Handler) listNotifications(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	items, err := h.svc.Notify.RecentUnread(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *Handler) unreadCount(c *fiber.Ctx) error {
	total, err := h.svc.Notify.TotalUnread()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"unread": total})
}
