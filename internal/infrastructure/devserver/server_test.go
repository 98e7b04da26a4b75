package devserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/infrastructure/api"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/infrastructure/config"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/infrastructure/devserver"
)

// newTestBackend runs the development server and returns a client wired
// to it. The round trip through the real HTTP client keeps the two wire
// formats honest with each other.
func newTestBackend(t *testing.T) *api.Client {
	t.Helper()

	srv := devserver.NewServer(zerolog.Nop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	client, err := api.NewClient(config.APIConfig{BaseURL: ts.URL}, zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestSemanticSearch_RanksByOverlap(t *testing.T) {
	client := newTestBackend(t)

	hits, err := client.SemanticSearch(context.Background(), "espresso machine", 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)

	// The espresso entry matches both terms and must rank first.
	top, err := client.Entry(context.Background(), hits[0].EntryID)
	require.NoError(t, err)
	assert.Equal(t, "Learning to make espresso", top.Title)

	for i := 1; i < len(hits); i++ {
		assert.LessOrEqual(t, hits[i].Score, hits[i-1].Score)
	}
}

func TestKeywordSearch_SubstringMatch(t *testing.T) {
	client := newTestBackend(t)

	entries, err := client.KeywordSearch(context.Background(), "dumpling", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Grandma's dumpling recipe", entries[0].Title)
}

func TestClusters_GroupBySharedTag(t *testing.T) {
	client := newTestBackend(t)

	entries, err := client.KeywordSearch(context.Background(), "dumpling", 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	clusters, err := client.Clusters(context.Background(), []string{entries[0].ID})
	require.NoError(t, err)
	require.NotEmpty(t, clusters)

	// The dumpling entry is tagged food, which it shares with the
	// espresso entry.
	var food *entities.Cluster
	for i := range clusters {
		if clusters[i].Label == "food" {
			food = &clusters[i]
		}
	}
	require.NotNil(t, food)
	assert.GreaterOrEqual(t, len(food.Entries), 2)
	assert.NotEmpty(t, food.Reason)
}

func TestRecent_NewestFirst(t *testing.T) {
	client := newTestBackend(t)

	entries, err := client.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Date.After(entries[i-1].Date))
	}
}

func TestLocations_FullSet(t *testing.T) {
	client := newTestBackend(t)

	locations, err := client.Locations(context.Background())
	require.NoError(t, err)
	assert.Len(t, locations, 12)
}

func TestProposalLifecycle(t *testing.T) {
	client := newTestBackend(t)
	ctx := context.Background()

	pending, err := client.PendingProposals(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 4)

	require.NoError(t, client.ApproveProposal(ctx, pending[0].ID))
	require.NoError(t, client.RejectProposal(ctx, pending[1].ID, "not supported by the entries"))

	after, err := client.PendingProposals(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)

	// Terminal states stay terminal.
	err = client.ApproveProposal(ctx, pending[0].ID)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestMergeAndRevert(t *testing.T) {
	client := newTestBackend(t)
	ctx := context.Background()

	dash, err := client.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, dash.Conflicts, 1)
	conflict := dash.Conflicts[0]

	err = client.MergeEntities(ctx, entities.MergeRequest{
		SourceID: conflict.EntityBID,
		TargetID: conflict.EntityAID,
		Reason:   "same person, shortened name",
	})
	require.NoError(t, err)

	merged, err := client.Dashboard(ctx)
	require.NoError(t, err)
	assert.Empty(t, merged.Conflicts)
	require.Len(t, merged.MergeHistory, 1)
	record := merged.MergeHistory[0]
	assert.True(t, record.CanRevert())

	// The absorbed entity is gone and its name lives on as an alias.
	for _, e := range merged.Entities {
		assert.NotEqual(t, conflict.EntityBID, e.ID)
	}

	require.NoError(t, client.RevertMerge(ctx, record.ID))

	reverted, err := client.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, reverted.MergeHistory, 1)
	assert.False(t, reverted.MergeHistory[0].CanRevert())

	restored := false
	for _, e := range reverted.Entities {
		if e.ID == conflict.EntityBID {
			restored = true
		}
	}
	assert.True(t, restored)

	// A second revert of the same merge is rejected.
	err = client.RevertMerge(ctx, record.ID)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestMerge_RequiresReason(t *testing.T) {
	client := newTestBackend(t)

	err := client.MergeEntities(context.Background(), entities.MergeRequest{
		SourceID: "a", TargetID: "b",
	})
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestDismissConflict(t *testing.T) {
	client := newTestBackend(t)
	ctx := context.Background()

	dash, err := client.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, dash.Conflicts, 1)

	require.NoError(t, client.DismissConflict(ctx, dash.Conflicts[0].ID))

	after, err := client.Dashboard(ctx)
	require.NoError(t, err)
	assert.Empty(t, after.Conflicts)
	assert.Empty(t, after.MergeHistory)
}

func TestSkillLifecycle(t *testing.T) {
	client := newTestBackend(t)
	ctx := context.Background()

	skills, err := client.Skills(ctx, ports.SkillListOptions{})
	require.NoError(t, err)
	require.Len(t, skills, 5)

	active, err := client.Skills(ctx, ports.SkillListOptions{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 4)

	creative, err := client.Skills(ctx, ports.SkillListOptions{Category: "creative"})
	require.NoError(t, err)
	assert.Len(t, creative, 2)

	created, err := client.CreateSkill(ctx, entities.Skill{Name: "Photography", Category: "creative", Active: true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, created.Level)

	renamed, err := client.UpdateSkill(ctx, created.ID, entities.Skill{
		Name: "Street Photography", Category: "creative", Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Street Photography", renamed.Name)

	require.NoError(t, client.DeleteSkill(ctx, created.ID))
	_, err = client.Skill(ctx, created.ID)
	require.Error(t, err)
}

func TestAddXP_LevelsUpAndLogsProgress(t *testing.T) {
	client := newTestBackend(t)
	ctx := context.Background()

	created, err := client.CreateSkill(ctx, entities.Skill{Name: "Sketching", Active: true})
	require.NoError(t, err)

	// Level 1 completes at 100 XP; the surplus carries into level 2.
	updated, err := client.AddXP(ctx, created.ID, 130, "filled a notebook")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Level)
	assert.InDelta(t, 30, updated.XP, 0.001)

	progress, err := client.SkillProgress(ctx, created.ID, 10)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, float64(130), progress[0].XPDelta)
	assert.Equal(t, "filled a notebook", progress[0].Reason)
}

func TestExtractSkills_MatchesKnownNames(t *testing.T) {
	client := newTestBackend(t)

	skills, err := client.ExtractSkills(context.Background(), "Spent the weekend hiking and cooking for friends")
	require.NoError(t, err)

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	assert.ElementsMatch(t, []string{"Hiking", "Cooking"}, names)
}

func TestPopulate_ResetsState(t *testing.T) {
	client := newTestBackend(t)
	ctx := context.Background()

	pending, err := client.PendingProposals(ctx)
	require.NoError(t, err)
	require.NoError(t, client.ApproveProposal(ctx, pending[0].ID))

	require.NoError(t, client.PopulateDummyData(ctx))

	after, err := client.PendingProposals(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 4)
}
