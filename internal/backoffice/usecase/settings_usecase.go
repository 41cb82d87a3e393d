package usecase

import (
	"estatehub/internal/domain/model"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"
)

// SettingsService owns the two singleton collections: the site contact block
// and the site settings. Reads materialize a default when the collection is
// empty; writes always target the single slot.
type SettingsService struct {
	store  *store.Store
	codec  *store.Codec
	logger logger.Logger
}

// NewSettingsService creates the settings service.
func NewSettingsService(s *store.Store, codec *store.Codec, log logger.Logger) *SettingsService {
	return &SettingsService{store: s, codec: codec, logger: log.WithComponent("settings")}
}

// GetContactInfo returns the contact block, defaulted when unset.
func (svc *SettingsService) GetContactInfo() (model.ContactInfo, error) {
	return store.ReadSingleton(svc.store, model.CollectionContactInfo, model.ContactInfo{})
}

// PutContactInfo replaces the contact block, preserving identity and
// creation time across rewrites.
func (svc *SettingsService) PutContactInfo(info model.ContactInfo) (model.ContactInfo, error) {
	current, err := svc.GetContactInfo()
	if err != nil {
		return model.ContactInfo{}, err
	}

	if current.ID != "" {
		info.Meta = current.Meta
	} else {
		info.Meta = newMeta(svc.codec)
	}
	info.UpdatedAt = svc.codec.Now()

	if err := store.ReplaceSingleton(svc.store, model.CollectionContactInfo, info); err != nil {
		return model.ContactInfo{}, err
	}
	return info, nil
}

// GetSiteSettings returns the site settings, defaulted when unset.
func (svc *SettingsService) GetSiteSettings() (model.SiteSettings, error) {
	return store.ReadSingleton(svc.store, model.CollectionSiteSettings, model.SiteSettings{SiteName: "Estatehub"})
}

// PutSiteSettings replaces the site settings.
func (svc *SettingsService) PutSiteSettings(settings model.SiteSettings) (model.SiteSettings, error) {
	current, err := svc.GetSiteSettings()
	if err != nil {
		return model.SiteSettings{}, err
	}

	if current.ID != "" {
		settings.Meta = current.Meta
	} else {
		settings.Meta = newMeta(svc.codec)
	}
	settings.UpdatedAt = svc.codec.Now()

	if err := store.ReplaceSingleton(svc.store, model.CollectionSiteSettings, settings); err != nil {
		return model.SiteSettings{}, err
	}
	return settings, nil
}
