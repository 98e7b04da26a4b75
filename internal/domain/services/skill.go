package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
)

// DefaultProgressLimit bounds progress-history fetches.
const DefaultProgressLimit = 20

// NewSkillRequest is the client-side payload for creating a skill.
type NewSkillRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Category string `json:"category,omitempty"`
}

// UpdateSkillRequest is the client-side payload for updating a skill.
// Zero-valued fields are left unchanged; Active is tri-state so a patch
// can leave the flag alone.
type UpdateSkillRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,notblank"`
	Category string `json:"category,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

// XPRequest is the client-side payload for an XP gain.
type XPRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Reason string  `json:"reason,omitempty"`
}

// ExtractRequest is the client-side payload for skill extraction.
type ExtractRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}

// SkillService wraps the skill-tracker endpoints. XP accounting lives
// server-side; this layer only validates requests and derives display
// percentages.
type SkillService struct {
	api      ports.SkillAPI
	log      zerolog.Logger
	validate *validator.Validate
}

// NewSkillService creates a new skill service.
func NewSkillService(api ports.SkillAPI, log zerolog.Logger) *SkillService {
	return &SkillService{
		api:      api,
		log:      log.With().Str("component", "skills").Logger(),
		validate: newValidator(),
	}
}

// List returns skills matching the options.
func (s *SkillService) List(ctx context.Context, opts ports.SkillListOptions) ([]entities.Skill, error) {
	skills, err := s.api.Skills(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	return skills, nil
}

// Get fetches one skill by id.
func (s *SkillService) Get(ctx context.Context, id string) (*entities.Skill, error) {
	skill, err := s.api.Skill(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching skill %s: %w", id, err)
	}
	return skill, nil
}

// Create registers a new skill after validating the request locally.
func (s *SkillService) Create(ctx context.Context, req NewSkillRequest) (*entities.Skill, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid skill: %w", formatValidationError(err))
	}

	skill, err := s.api.CreateSkill(ctx, entities.Skill{
		Name:     req.Name,
		Category: req.Category,
		Level:    1,
		Active:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating skill: %w", err)
	}
	return skill, nil
}

// Update patches an existing skill. The current record is fetched first
// so unset fields keep their values, and a blank name never reaches the
// wire.
func (s *SkillService) Update(ctx context.Context, id string, req UpdateSkillRequest) (*entities.Skill, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid skill update: %w", formatValidationError(err))
	}

	current, err := s.api.Skill(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching skill %s: %w", id, err)
	}

	if req.Name != "" {
		current.Name = req.Name
	}
	if req.Category != "" {
		current.Category = req.Category
	}
	if req.Active != nil {
		current.Active = *req.Active
	}

	updated, err := s.api.UpdateSkill(ctx, id, *current)
	if err != nil {
		return nil, fmt.Errorf("updating skill %s: %w", id, err)
	}

	s.log.Info().Str("skill_id", id).Msg("skill updated")
	return updated, nil
}

// Delete removes a skill.
func (s *SkillService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteSkill(ctx, id); err != nil {
		return fmt.Errorf("deleting skill %s: %w", id, err)
	}
	return nil
}

// AddXP posts an XP gain. Amounts must be positive; invalid amounts never
// reach the wire.
func (s *SkillService) AddXP(ctx context.Context, id string, req XPRequest) (*entities.Skill, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid xp request: %w", formatValidationError(err))
	}

	skill, err := s.api.AddXP(ctx, id, req.Amount, req.Reason)
	if err != nil {
		return nil, fmt.Errorf("adding xp to skill %s: %w", id, err)
	}

	s.log.Info().Str("skill_id", id).Float64("amount", req.Amount).Msg("xp added")
	return skill, nil
}

// Progress returns the skill's progress history, newest first.
func (s *SkillService) Progress(ctx context.Context, id string, limit int) ([]entities.SkillProgress, error) {
	if limit <= 0 {
		limit = DefaultProgressLimit
	}
	log, err := s.api.SkillProgress(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching progress for skill %s: %w", id, err)
	}
	return log, nil
}

// Extract asks the backend to pull skill mentions out of free text.
func (s *SkillService) Extract(ctx context.Context, text string) ([]entities.Skill, error) {
	if err := s.validate.Struct(ExtractRequest{Text: text}); err != nil {
		return nil, fmt.Errorf("invalid extract request: %w", formatValidationError(err))
	}

	skills, err := s.api.ExtractSkills(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extracting skills: %w", err)
	}
	return skills, nil
}
