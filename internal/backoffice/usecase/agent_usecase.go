package usecase

import (
	"estatehub/internal/domain/model"
	"estatehub/internal/query"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"
)

// AgentService owns the agent profile call sites.
type AgentService struct {
	store  *store.Store
	codec  *store.Codec
	logger logger.Logger
}

// NewAgentService creates the agent service.
func NewAgentService(s *store.Store, codec *store.Codec, log logger.Logger) *AgentService {
	return &AgentService{store: s, codec: codec, logger: log.WithComponent("agents")}
}

// AgentInput carries the caller-supplied fields of an agent profile.
type AgentInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	PhotoURL     string `json:"photoUrl"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

// AgentUpdate is a field-merge update: only non-nil fields change.
type AgentUpdate struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Title        *string `json:"title"`
	Bio          *string `json:"bio"`
	PhotoURL     *string `json:"photoUrl"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// ListPublic returns active agents in the standard public-listing order.
func (svc *AgentService) ListPublic() ([]model.Agent, error) {
	agents, err := store.Read[model.Agent](svc.store, model.CollectionAgents)
	if err != nil {
		return nil, err
	}
	return query.SortByDisplayThenRecency(query.FilterActive(agents)), nil
}

// ListAdmin returns every agent, active or not.
func (svc *AgentService) ListAdmin() ([]model.Agent, error) {
	agents, err := store.Read[model.Agent](svc.store, model.CollectionAgents)
	if err != nil {
		return nil, err
	}
	return query.SortByDisplayThenRecency(agents), nil
}

// Create adds an agent profile.
func (svc *AgentService) Create(input AgentInput) (*model.Agent, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	agent := model.Agent{
		Meta:       newMeta(svc.codec),
		ActiveFlag: model.ActiveFlag{IsActive: input.IsActive},
		Ordering:   model.Ordering{DisplayOrder: input.DisplayOrder},
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Title:      input.Title,
		Bio:        input.Bio,
		PhotoURL:   input.PhotoURL,
	}
	if agent.IsActive == nil {
		agent.IsActive = model.Bool(true)
	}

	err := store.Mutate(svc.store, model.CollectionAgents, func(agents []model.Agent) ([]model.Agent, error) {
		return append(agents, agent), nil
	})
	if err != nil {
		return nil, err
	}

	svc.logger.Infof("agent created: %s", agent.ID)
	return &agent, nil
}

// Update merges the supplied fields onto an existing agent.
func (svc *AgentService) Update(id string, update AgentUpdate) (*model.Agent, error) {
	var updated model.Agent
	err := store.Mutate(svc.store, model.CollectionAgents, func(agents []model.Agent) ([]model.Agent, error) {
		i := indexOf(agents, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError("agent")
		}

		a := &agents[i]
		setString(&a.Name, update.Name)
		setString(&a.Email, update.Email)
		setString(&a.Phone, update.Phone)
		setString(&a.Title, update.Title)
		setString(&a.Bio, update.Bio)
		setString(&a.PhotoURL, update.PhotoURL)
		setInt(&a.DisplayOrder, update.DisplayOrder)
		if update.IsActive != nil {
			a.IsActive = update.IsActive
		}
		a.UpdatedAt = svc.codec.Now()

		updated = *a
		return agents, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an agent. Properties, reviews, and messages keep their
// agentId; those references are optional and resolve to null on join.
func (svc *AgentService) Delete(id string) error {
	return store.Mutate(svc.store, model.CollectionAgents, func(agents []model.Agent) ([]model.Agent, error) {
		i := indexOf(agents, id)
		if i < 0 {
			return nil, apperrors.NewNotFoundError("agent")
		}
		return append(agents[:i], agents[i+1:]...), nil
	})
}
