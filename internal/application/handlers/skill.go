package handlers

import (
	"context"
	"fmt"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/services"
)

// SkillHandler handles skill tracker operations.
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// SkillRow is one skill prepared for display, with the derived
// level-progress percentage.
type SkillRow struct {
	Skill    entities.Skill
	Progress float64
}

// List returns display rows for the matching skills.
func (h *SkillHandler) List(ctx context.Context, opts ports.SkillListOptions) ([]SkillRow, error) {
	skills, err := h.skillService.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	rows := make([]SkillRow, 0, len(skills))
	for _, s := range skills {
		rows = append(rows, SkillRow{Skill: s, Progress: s.LevelProgress()})
	}
	return rows, nil
}

// Show returns one skill with its progress history.
func (h *SkillHandler) Show(ctx context.Context, id string, historyLimit int) (*SkillRow, []entities.SkillProgress, error) {
	skill, err := h.skillService.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	history, err := h.skillService.Progress(ctx, id, historyLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("loading history: %w", err)
	}

	return &SkillRow{Skill: *skill, Progress: skill.LevelProgress()}, history, nil
}

// Create registers a new skill and returns its display row.
func (h *SkillHandler) Create(ctx context.Context, name, category string) (*SkillRow, error) {
	skill, err := h.skillService.Create(ctx, services.NewSkillRequest{Name: name, Category: category})
	if err != nil {
		return nil, err
	}
	return &SkillRow{Skill: *skill, Progress: skill.LevelProgress()}, nil
}

// Update patches a skill and returns the refreshed display row.
func (h *SkillHandler) Update(ctx context.Context, id string, req services.UpdateSkillRequest) (*SkillRow, error) {
	skill, err := h.skillService.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return &SkillRow{Skill: *skill, Progress: skill.LevelProgress()}, nil
}

// Delete removes a skill.
func (h *SkillHandler) Delete(ctx context.Context, id string) error {
	return h.skillService.Delete(ctx, id)
}

// AddXP posts an XP gain and returns the updated display row.
func (h *SkillHandler) AddXP(ctx context.Context, id string, amount float64, reason string) (*SkillRow, error) {
	skill, err := h.skillService.AddXP(ctx, id, services.XPRequest{Amount: amount, Reason: reason})
	if err != nil {
		return nil, err
	}
	return &SkillRow{Skill: *skill, Progress: skill.LevelProgress()}, nil
}

// Extract asks the backend to pull skills out of free text.
func (h *SkillHandler) Extract(ctx context.Context, text string) ([]entities.Skill, error) {
	return h.skillService.Extract(ctx, text)
}
