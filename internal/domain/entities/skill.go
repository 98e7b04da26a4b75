package entities

import (
	"math"
	"time"
)

// baseLevelXP is the XP needed to complete level 1. Each subsequent level
// costs 1.5x the previous one.
const baseLevelXP = 100

// Skill is a leveling-system record. XP accounting is server state; the
// client only derives display percentages from it.
type Skill struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Category  string        `json:"category,omitempty"`
	Level     int           `json:"level"`
	XP        float64       `json:"xp"`
	Active    bool          `json:"active"`
	Metadata  SkillMetadata `json:"metadata,omitempty"`
	CreatedAt time.Time     `json:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at,omitempty"`
}

// SkillMetadata carries optional descriptive fields.
type SkillMetadata struct {
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// SkillProgress is one entry in a skill's progress history log.
type SkillProgress struct {
	SkillID    string    `json:"skill_id"`
	XPDelta    float64   `json:"xp_delta"`
	Level      int       `json:"level"`
	Reason     string    `json:"reason,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// XPForLevel returns the XP required to complete the given level,
// following the geometric curve 100 * 1.5^(level-1). Levels below 1 are
// treated as level 1.
func XPForLevel(level int) float64 {
	if level < 1 {
		level = 1
	}
	return baseLevelXP * math.Pow(1.5, float64(level-1))
}

// LevelProgress returns how far the skill is through its current level as
// a percentage, clamped to [0, 100]. XP is the amount earned within the
// current level, not a lifetime total.
func (s Skill) LevelProgress() float64 {
	required := XPForLevel(s.Level)
	pct := s.XP / required * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
