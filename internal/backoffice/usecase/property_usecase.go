package usecase

import (
	"estatehub/internal/domain/model"
	"estatehub/internal/query"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"
)

// PropertyService owns the property listing call sites.
type PropertyService struct {
	store  *store.Store
	codec  *store.Codec
	logger logger.Logger
}

// NewPropertyService creates the property service.
func NewPropertyService(s *store.Store, codec *store.Codec, log logger.Logger) *PropertyService {
	return &PropertyService{store: s, codec: codec, logger: log.WithComponent("properties")}
}

// PropertyInput carries the caller-supplied fields of a property.
type PropertyInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	AreaSqm      float64  `json:"areaSqm"`
	Location     string   `json:"location"`
	Images       []string `json:"images"`
	AgentID      string   `json:"agentId"`
	IsFeatured   bool     `json:"isFeatured"`
	DisplayOrder int      `json:"displayOrder"`
	IsActive     *bool    `json:"isActive"`
}

// PropertyUpdate is a field-merge update: only non-nil fields change.
type PropertyUpdate struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	AreaSqm      *float64 `json:"areaSqm"`
	Location     *string  `json:"location"`
	Images       []string `json:"images"`
	AgentID      *string  `json:"agentId"`
	IsFeatured   *bool    `json:"isFeatured"`
	DisplayOrder *int     `json:"displayOrder"`
	IsActive     *bool    `json:"isActive"`
}

// joinAgentNames attaches the owning agent's name onto each property.
func (svc *PropertyService) joinAgentNames(properties []model.Property) ([]model.Property, error) {
	agents, err := store.Read[model.Agent](svc.store, model.CollectionAgents)
	if err != nil {
		return nil, err
	}
	return query.JoinOne(properties,
		func(p model.Property) string { return p.AgentID },
		agents,
		func(a model.Agent) string { return a.ID },
		func(p *model.Property, a *model.Agent) {
			if a != nil {
				p.AgentName = &a.Name
			}
		},
	), nil
}

// ListPublic returns active properties in the marketing-site order:
// featured first, then manual position, then newest.
func (svc *PropertyService) ListPublic() ([]model.Property, error) {
	properties, err := store.Read[model.Property](svc.store, model.CollectionProperties)
	if err != nil {
		return nil, err
	}
	properties = query.FilterActive(properties)
	properties = query.SortBy(properties,
		query.ByFeatured[model.Property](),
		query.ByDisplayOrder[model.Property](),
		query.ByRecency[model.Property](),
	)
	return svc.joinAgentNames(properties)
}

// ListAdmin returns every property, active or not, in the standard order.
func (svc *PropertyService) ListAdmin() ([]model.Property, error) {
	properties, err := store.Read[model.Property](svc.store, model.CollectionProperties)
	if err != nil {
		return nil, err
	}
	return svc.joinAgentNames(query.SortByDisplayThenRecency(properties))
}

// Get returns one property by id.
func (svc *PropertyService) Get(id string) (*model.Property, error) {
	properties, err := store.Read[model.Property](svc.store, model.CollectionProperties)
	if err != nil {
		return nil, err
	}
	i := indexOf(properties, id)
	if i < 0 {
		return nil, apperrors.NewNotFoundError("property")
	}
	joined, err := svc.joinAgentNames(properties[i : i+1])
	if err != nil {
		return nil, err
	}
	return &joined[0], nil
}

// Create adds a property. Visibility defaults to active when unspecified.
func (svc *PropertyService) Create(input PropertyInput) (*model.Property, error) {
	if input.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	property := model.Property{
		Meta:        newMeta(svc.codec),
		ActiveFlag:  model.ActiveFlag{IsActive: input.IsActive},
		Ordering:    model.Ordering{DisplayOrder: input.DisplayOrder},
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		AreaSqm:     input.AreaSqm,
		Location:    input.Location,
		Images:      input.Images,
		AgentID:     input.AgentID,
		IsFeatured:  input.IsFeatured,
	}
	if property.IsActive == nil {
		property.IsActive = model.Bool(true)
	}

	err := store.Mutate(svc.store, model.CollectionProperties, func(properties []model.Property) ([]model.Property, error) {
		return append(properties, property), nil
	})
	if err != nil {
		return nil, err
	}

	svc.logger.Infof("property created: %s", property.ID)
	return &property, nil
}

// Update merges the supplied fields onto an existing property; all other
// fields are retained and updatedAt is refreshed.
func (svc *PropertyService) Update(id string, update PropertyUpdate) (*model.Property, error) {
	var updated model.Property
	err := store.Mutate(svc.store, model.CollectionProperties, func(properties []model.Property) ([]model.Property, error) {
		i := indexOf(properties, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError("property")
		}

		p := &properties[i]
		setString(&p.Title, update.Title)
		setString(&p.Description, update.Description)
		setFloat(&p.Price, update.Price)
		setInt(&p.Bedrooms, update.Bedrooms)
		setInt(&p.Bathrooms, update.Bathrooms)
		setFloat(&p.AreaSqm, update.AreaSqm)
		setString(&p.Location, update.Location)
		if update.Images != nil {
			p.Images = update.Images
		}
		setString(&p.AgentID, update.AgentID)
		setBool(&p.IsFeatured, update.IsFeatured)
		setInt(&p.DisplayOrder, update.DisplayOrder)
		if update.IsActive != nil {
			p.IsActive = update.IsActive
		}
		p.UpdatedAt = svc.codec.Now()

		updated = *p
		return properties, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a property. No cascade: reviews and messages referencing
// its agent are unrelated, and nothing references a property by required key.
func (svc *PropertyService) Delete(id string) error {
	return store.Mutate(svc.store, model.CollectionProperties, func(properties []model.Property) ([]model.Property, error) {
		i := indexOf(properties, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError("property")
		}
		return append(properties[:i], properties[i+1:]...), nil
	})
}
