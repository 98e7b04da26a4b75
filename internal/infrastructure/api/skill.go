package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
)

// Skills lists skills matching the options.
func (c *Client) Skills(ctx context.Context, opts ports.SkillListOptions) ([]entities.Skill, error) {
	q := url.Values{}
	if opts.ActiveOnly {
		q.Set("active_only", "true")
	}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}

	var out struct {
		Skills []entities.Skill `json:"skills"`
	}
	if err := c.get(ctx, "/api/skills", q, &out); err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	return out.Skills, nil
}

// Skill fetches one skill record.
func (c *Client) Skill(ctx context.Context, id string) (*entities.Skill, error) {
	var out struct {
		Skill entities.Skill `json:"skill"`
	}
	if err := c.get(ctx, "/api/skills/"+id, nil, &out); err != nil {
		return nil, fmt.Errorf("fetching skill %s: %w", id, err)
	}
	return &out.Skill, nil
}

// CreateSkill registers a new skill.
func (c *Client) CreateSkill(ctx context.Context, skill entities.Skill) (*entities.Skill, error) {
	var out struct {
		Skill entities.Skill `json:"skill"`
	}
	if err := c.post(ctx, "/api/skills", skill, &out); err != nil {
		return nil, fmt.Errorf("creating skill: %w", err)
	}
	return &out.Skill, nil
}

// UpdateSkill patches an existing skill.
func (c *Client) UpdateSkill(ctx context.Context, id string, skill entities.Skill) (*entities.Skill, error) {
	var out struct {
		Skill entities.Skill `json:"skill"`
	}
	if err := c.patch(ctx, "/api/skills/"+id, skill, &out); err != nil {
		return nil, fmt.Errorf("updating skill %s: %w", id, err)
	}
	return &out.Skill, nil
}

// DeleteSkill removes a skill.
func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/api/skills/"+id); err != nil {
		return fmt.Errorf("deleting skill %s: %w", id, err)
	}
	return nil
}

// AddXP posts an XP gain and returns the updated skill.
func (c *Client) AddXP(ctx context.Context, id string, amount float64, reason string) (*entities.Skill, error) {
	body := map[string]any{"amount": amount, "reason": reason}
	var out struct {
		Skill entities.Skill `json:"skill"`
	}
	if err := c.post(ctx, "/api/skills/"+id+"/xp", body, &out); err != nil {
		return nil, fmt.Errorf("adding xp to skill %s: %w", id, err)
	}
	return &out.Skill, nil
}

// SkillProgress fetches the progress history log, newest first.
func (c *Client) SkillProgress(ctx context.Context, id string, limit int) ([]entities.SkillProgress, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var out struct {
		Progress []entities.SkillProgress `json:"progress"`
	}
	if err := c.get(ctx, "/api/skills/"+id+"/progress", q, &out); err != nil {
		return nil, fmt.Errorf("fetching progress for skill %s: %w", id, err)
	}
	return out.Progress, nil
}

// ExtractSkills asks the backend to extract skill mentions from text.
func (c *Client) ExtractSkills(ctx context.Context, text string) ([]entities.Skill, error) {
	body := map[string]any{"text": text}
	var out struct {
		Skills []entities.Skill `json:"skills"`
	}
	if err := c.post(ctx, "/api/skills/extract", body, &out); err != nil {
		return nil, fmt.Errorf("extracting skills: %w", err)
	}
	return out.Skills, nil
}
