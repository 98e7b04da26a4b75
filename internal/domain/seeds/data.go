package seeds

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
)

// seedNamespace scopes the deterministic seed ids.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("lorebook/seeds"))

// seedID derives a stable id for a seed record, so the same seed always
// carries the same identity across runs and tests.
func seedID(kind string, n int) string {
	return uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s/%d", kind, n))).String()
}

func seedDate(daysAgo int) time.Time {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, -daysAgo)
}

// RegisterDefaults registers the built-in seed sets for every domain.
func RegisterDefaults(r *Registry) {
	r.Register(DomainMemories, Memories())
	r.Register(DomainLocations, Locations())
	r.Register(DomainProposals, Proposals())
	r.Register(DomainSkills, Skills())
}

// Memories returns the seed journal entries.
func Memories() []entities.Entry {
	return []entities.Entry{
		{
			ID:         seedID("memory", 1),
			Title:      "First day at the new job",
			Content:    "Walked into the office not knowing anyone. By lunch I had three coffee invitations.",
			Date:       seedDate(240),
			Tags:       []string{"work", "beginnings"},
			Mood:       "nervous",
			Source:     "seed",
			Characters: []string{"Priya"},
		},
		{
			ID:      seedID("memory", 2),
			Title:   "Hiking the ridge trail",
			Content: "Six hours up, two down. The fog broke right at the summit.",
			Date:    seedDate(180),
			Tags:    []string{"outdoors", "achievement"},
			Mood:    "elated",
			Source:  "seed",
		},
		{
			ID:         seedID("memory", 3),
			Title:      "Grandma's dumpling recipe",
			Content:    "She finally wrote it down. Measurements are still 'a handful' and 'enough'.",
			Date:       seedDate(150),
			Tags:       []string{"family", "food"},
			Mood:       "warm",
			Source:     "seed",
			Characters: []string{"Grandma Lin"},
			Favorite:   true,
		},
		{
			ID:      seedID("memory", 4),
			Title:   "The move across town",
			Content: "Forty boxes, one broken lamp, zero regrets.",
			Date:    seedDate(90),
			Tags:    []string{"home", "change"},
			Mood:    "tired",
			Source:  "seed",
		},
		{
			ID:         seedID("memory", 5),
			Title:      "Late night debugging session",
			Content:    "Found the off-by-one at 2am. Sam stayed on the call the whole time.",
			Date:       seedDate(45),
			Tags:       []string{"work", "friendship"},
			Mood:       "grateful",
			Source:     "seed",
			Characters: []string{"Sam"},
		},
		{
			ID:      seedID("memory", 6),
			Title:   "Learning to make espresso",
			Content: "Third machine this year. This one might survive.",
			Date:    seedDate(10),
			Tags:    []string{"hobby", "food"},
			Mood:    "amused",
			Source:  "seed",
		},
	}
}

// Locations returns the twelve seed locations for the location book.
func Locations() []entities.Location {
	names := []struct {
		name, description, region string
	}{
		{"Riverside Apartment", "The first place that felt like mine.", "East Side"},
		{"Corner Cafe", "Where most of the journal got written.", "Downtown"},
		{"Ridge Trail Summit", "Fog below, sun above.", "North Hills"},
		{"Grandma Lin's Kitchen", "Smells like ginger and flour.", "Old Town"},
		{"The Office", "Fourth floor, window desk.", "Downtown"},
		{"City Library", "Quiet corner, third shelf from the stairs.", "Downtown"},
		{"Harbor Walk", "Sunday morning route.", "Waterfront"},
		{"Sam's Garage", "Half workshop, half museum of broken machines.", "West End"},
		{"Night Market", "Best noodles after midnight.", "Old Town"},
		{"Union Station", "Every goodbye and most hellos.", "Downtown"},
		{"The Old School Field", "Still smells like cut grass.", "East Side"},
		{"Lighthouse Point", "Where the year-end entries get written.", "Waterfront"},
	}

	locations := make([]entities.Location, 0, len(names))
	for i, n := range names {
		locations = append(locations, entities.Location{
			ID:          seedID("location", i+1),
			Name:        n.name,
			Description: n.description,
			Region:      n.region,
			VisitCount:  (i*7)%23 + 1,
			LastVisited: seedDate(i * 12),
		})
	}
	return locations
}

// Proposals returns the seed review-queue proposals.
func Proposals() []entities.Proposal {
	return []entities.Proposal{
		{
			ID:            seedID("proposal", 1),
			ClaimText:     "Sam and Priya are the same person",
			RiskLevel:     entities.RiskHigh,
			Confidence:    0.41,
			Reasoning:     "Both appear in work entries around the same dates.",
			SourceExcerpt: "Sam stayed on the call the whole time.",
			Status:        entities.ProposalPending,
			CreatedAt:     seedDate(8),
		},
		{
			ID:         seedID("proposal", 2),
			ClaimText:  "The ridge trail hike marks the start of the outdoors arc",
			RiskLevel:  entities.RiskMedium,
			Confidence: 0.72,
			Status:     entities.ProposalPending,
			CreatedAt:  seedDate(6),
		},
		{
			ID:         seedID("proposal", 3),
			ClaimText:  "Corner Cafe should be tagged as a writing spot",
			RiskLevel:  entities.RiskLow,
			Confidence: 0.93,
			Status:     entities.ProposalPending,
			CreatedAt:  seedDate(4),
		},
		{
			ID:            seedID("proposal", 4),
			ClaimText:     "Grandma Lin's recipe entry belongs to the family saga",
			RiskLevel:     entities.RiskLow,
			Confidence:    0.88,
			SourceExcerpt: "She finally wrote it down.",
			Status:        entities.ProposalPending,
			CreatedAt:     seedDate(2),
		},
	}
}

// Skills returns the seed skill records.
func Skills() []entities.Skill {
	return []entities.Skill{
		{ID: seedID("skill", 1), Name: "Writing", Category: "creative", Level: 4, XP: 120, Active: true},
		{ID: seedID("skill", 2), Name: "Hiking", Category: "fitness", Level: 2, XP: 40, Active: true},
		{ID: seedID("skill", 3), Name: "Cooking", Category: "home", Level: 3, XP: 200, Active: true},
		{ID: seedID("skill", 4), Name: "Espresso Making", Category: "hobby", Level: 1, XP: 65, Active: true},
		{ID: seedID("skill", 5), Name: "Piano", Category: "creative", Level: 5, XP: 10, Active: false},
	}
}
