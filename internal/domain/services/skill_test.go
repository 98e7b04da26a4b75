package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/mocks"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
)

func skillFixture() *mocks.SkillAPI {
	return &mocks.SkillAPI{
		SkillList: []entities.Skill{
			{ID: "s1", Name: "Writing", Category: "creative", Level: 4, XP: 120, Active: true},
			{ID: "s2", Name: "Hiking", Category: "fitness", Level: 2, XP: 40, Active: true},
			{ID: "s3", Name: "Piano", Category: "creative", Level: 5, XP: 10, Active: false},
		},
	}
}

func TestSkillList_Filters(t *testing.T) {
	svc := NewSkillService(skillFixture(), zerolog.Nop())

	all, err := svc.List(context.Background(), ports.SkillListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := svc.List(context.Background(), ports.SkillListOptions{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	creative, err := svc.List(context.Background(), ports.SkillListOptions{Category: "creative"})
	require.NoError(t, err)
	assert.Len(t, creative, 2)
}

func TestSkillCreate_Validation(t *testing.T) {
	api := skillFixture()
	svc := NewSkillService(api, zerolog.Nop())

	_, err := svc.Create(context.Background(), NewSkillRequest{Name: "   "})
	require.Error(t, err)
	assert.Len(t, api.SkillList, 3)

	skill, err := svc.Create(context.Background(), NewSkillRequest{Name: "Gardening", Category: "home"})
	require.NoError(t, err)
	assert.Equal(t, 1, skill.Level)
	assert.True(t, skill.Active)
	assert.Len(t, api.SkillList, 4)
}

func TestSkillUpdate_PatchesOnlySetFields(t *testing.T) {
	api := skillFixture()
	svc := NewSkillService(api, zerolog.Nop())

	inactive := false
	skill, err := svc.Update(context.Background(), "s1", UpdateSkillRequest{
		Name:   "Longform Writing",
		Active: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Longform Writing", skill.Name)
	assert.False(t, skill.Active)
	// Unset fields keep their current values.
	assert.Equal(t, "creative", skill.Category)
	assert.Equal(t, 4, skill.Level)

	// A patch without the active flag leaves the state alone.
	skill, err = svc.Update(context.Background(), "s1", UpdateSkillRequest{Category: "work"})
	require.NoError(t, err)
	assert.Equal(t, "work", skill.Category)
	assert.False(t, skill.Active)
}

func TestSkillUpdate_BlankNameNeverSent(t *testing.T) {
	api := skillFixture()
	svc := NewSkillService(api, zerolog.Nop())

	_, err := svc.Update(context.Background(), "s1", UpdateSkillRequest{Name: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be blank")

	skill, getErr := svc.Get(context.Background(), "s1")
	require.NoError(t, getErr)
	assert.Equal(t, "Writing", skill.Name)
}

func TestSkillAddXP_Validation(t *testing.T) {
	api := skillFixture()
	svc := NewSkillService(api, zerolog.Nop())

	_, err := svc.AddXP(context.Background(), "s1", XPRequest{Amount: 0})
	require.Error(t, err)
	_, err = svc.AddXP(context.Background(), "s1", XPRequest{Amount: -5})
	require.Error(t, err)
	assert.Empty(t, api.XPCalls)

	_, err = svc.AddXP(context.Background(), "s1", XPRequest{Amount: 25, Reason: "finished a chapter"})
	require.NoError(t, err)
	require.Len(t, api.XPCalls, 1)
	assert.Equal(t, mocks.XPCall{ID: "s1", Amount: 25, Reason: "finished a chapter"}, api.XPCalls[0])
}

func TestSkillExtract_Validation(t *testing.T) {
	api := skillFixture()
	api.Extracted = []entities.Skill{{Name: "Baking"}}
	svc := NewSkillService(api, zerolog.Nop())

	_, err := svc.Extract(context.Background(), "  ")
	require.Error(t, err)

	skills, err := svc.Extract(context.Background(), "Spent the weekend baking bread")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Baking", skills[0].Name)
}

func TestSkillGetAndDelete(t *testing.T) {
	api := skillFixture()
	svc := NewSkillService(api, zerolog.Nop())

	skill, err := svc.Get(context.Background(), "s2")
	require.NoError(t, err)
	assert.Equal(t, "Hiking", skill.Name)

	require.NoError(t, svc.Delete(context.Background(), "s2"))
	_, err = svc.Get(context.Background(), "s2")
	require.Error(t, err)
}
