package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	authhttp "estatehub/internal/auth/adapter/http"
	"estatehub/internal/auth/domain/repository"
	authusecase "estatehub/internal/auth/usecase"
	bohttp "estatehub/internal/backoffice/adapter/http"
	"estatehub/internal/backoffice/usecase"
	"estatehub/internal/domain/model"
	"estatehub/internal/integrity"
	"estatehub/internal/notify"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testToken = "Bearer good"

type stubIdentity struct{}

func (s *stubIdentity) Login(ctx context.Context, req authusecase.LoginRequest) (*model.Admin, string, error) {
	if req.Email == "admin@estatehub.test" && req.Password == "secret" {
		return &model.Admin{Meta: model.Meta{ID: "adm-1"}, Email: req.Email}, "tok", nil
	}
	return nil, "", apperrors.NewUnauthorizedError()
}

func (s *stubIdentity) Authorize(ctx context.Context, header string) (*repository.Claims, error) {
	if header == testToken {
		return &repository.Claims{SubjectID: "adm-1", Email: "admin@estatehub.test", Role: "admin"}, nil
	}
	return nil, errors.New("unauthorized")
}

func (s *stubIdentity) HashPassword(plain string) (string, error) { return plain, nil }

func (s *stubIdentity) VerifyPassword(plain, hash string) bool { return plain == hash }

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	s, err := store.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	codec := store.NewCodec()
	log := logger.NewLoggerWithConfig("error", "text")
	im := integrity.NewManager(s, zap.NewNop())
	identity := &stubIdentity{}

	handler := bohttp.NewHandler(bohttp.Services{
		Identity:   identity,
		Properties: usecase.NewPropertyService(s, codec, log),
		Agents:     usecase.NewAgentService(s, codec, log),
		Reviews:    usecase.NewReviewService(s, codec, log),
		Buyers:     usecase.NewBuyerService(s, codec, im, log),
		Guides:     usecase.NewGuideService(s, codec, im, log),
		Inbox:      usecase.NewInboxService(s, codec, log),
		Content:    usecase.NewContentService(s, codec, log),
		Settings:   usecase.NewSettingsService(s, codec, log),
		Notify:     notify.NewAggregator(s),
		Log:        log,
	})

	app := fiber.New()
	handler.Register(app, authhttp.NewAuthMiddleware(identity))
	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/admin/properties"},
		{"POST", "/api/v1/admin/properties"},
		{"GET", "/api/v1/admin/notifications"},
		{"PUT", "/api/v1/admin/site-settings"},
	}
	for _, p := range paths {
		status, body := doJSON(t, app, p.method, p.path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, status, p.path)
		assert.JSONEq(t, `{"error":"unauthorized"}`, string(body), p.path)
	}
}

func TestPublicProperties_OnlyActive(t *testing.T) {
	app, s := newTestApp(t)

	err := store.Replace(s, model.CollectionProperties, []model.Property{
		{Meta: model.Meta{ID: "p1", CreatedAt: "2026-01-01T00:00:00.000Z"}, Title: "Visible"},
		{Meta: model.Meta{ID: "p2", CreatedAt: "2026-01-02T00:00:00.000Z"}, Title: "Hidden",
			ActiveFlag: model.ActiveFlag{IsActive: model.Bool(false)}},
	})
	require.NoError(t, err)

	status, body := doJSON(t, app, "GET", "/api/v1/properties", "", nil)
	require.Equal(t, fiber.StatusOK, status)

	var listed []model.Property
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "p1", listed[0].ID)

	// The admin listing still sees both.
	status, body = doJSON(t, app, "GET", "/api/v1/admin/properties", testToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.Len(t, listed, 2)
}

func TestCreateProperty_ValidatesTitle(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/v1/admin/properties", testToken,
		usecase.PropertyInput{Title: ""})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := doJSON(t, app, "POST", "/api/v1/admin/properties", testToken,
		usecase.PropertyInput{Title: "Hillside Villa"})
	require.Equal(t, fiber.StatusCreated, status)

	var created model.Property
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Hillside Villa", created.Title)
}

func TestEnquiry_RejectsUnknownBuyer(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/v1/buyer-enquiries", "",
		usecase.EnquiryInput{BuyerID: "no-such-buyer", Message: "hi"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestBookingFlow_UnreadBadgeAndMarkRead(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/bookings", "",
		usecase.BookingInput{Name: "Jo", Email: "jo@example.com", Date: "2026-09-10"})
	require.Equal(t, fiber.StatusCreated, status)

	var booking model.Booking
	require.NoError(t, json.Unmarshal(body, &booking))

	status, body = doJSON(t, app, "GET", "/api/v1/admin/notifications/unread-count", testToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"unread":1}`, string(body))

	status, _ = doJSON(t, app, "PATCH", "/api/v1/admin/bookings/"+booking.ID+"/read", testToken, nil)
	require.Equal(t, fiber.StatusNoContent, status)

	status, body = doJSON(t, app, "GET", "/api/v1/admin/notifications/unread-count", testToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"unread":0}`, string(body))
}

func TestDeleteBuyer_CascadesOverHTTP(t *testing.T) {
	app, s := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/buyers", "",
		usecase.BuyerInput{Name: "Ana", Email: "ana@example.com"})
	require.Equal(t, fiber.StatusCreated, status)
	var buyer model.Buyer
	require.NoError(t, json.Unmarshal(body, &buyer))

	status, _ = doJSON(t, app, "POST", "/api/v1/buyer-enquiries", "",
		usecase.EnquiryInput{BuyerID: buyer.ID, Message: "interested"})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doJSON(t, app, "DELETE", "/api/v1/admin/buyers/"+buyer.ID, testToken, nil)
	require.Equal(t, fiber.StatusNoContent, status)

	enquiries, err := store.Read[model.BuyerEnquiry](s, model.CollectionBuyerEnquiries)
	require.NoError(t, err)
	assert.Empty(t, enquiries)
}

func TestSiteSettings_DefaultThenUpdate(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/api/v1/site-settings", "", nil)
	require.Equal(t, fiber.StatusOK, status)

	var settings model.SiteSettings
	require.NoError(t, json.Unmarshal(body, &settings))
	assert.Equal(t, "Estatehub", settings.SiteName)

	settings.SiteName = "Coastal Homes"
	status, body = doJSON(t, app, "PUT", "/api/v1/admin/site-settings", testToken, settings)
	require.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, app, "GET", "/api/v1/site-settings", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &settings))
	assert.Equal(t, "Coastal Homes", settings.SiteName)
}

func TestLogin_UniformFailure(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/admin/login", "",
		authusecase.LoginRequest{Email: "admin@estatehub.test", Password: "secret"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), "tok")

	status, _ = doJSON(t, app, "POST", "/api/v1/admin/login", "",
		authusecase.LoginRequest{Email: "admin@estatehub.test", Password: "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestUnknownPropertyReturnsNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/api/v1/properties/missing", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
