package ranking

import (
	"Hustings/internal/model"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func relations(n int) []model.Relation {
	out := make([]model.Relation, n)
	for i := range out {
		out[i] = model.Relation(fmt.Sprintf(`{"id":%d}`, i+1))
	}
	return out
}

func candidate(id, position string, votes, reactions, comments, profileComments int) CandidateEngagement {
	t := Tally{
		ID:              id,
		Name:            strPtr("Candidate " + id),
		ProfileVotes:    votes,
		BlogReactions:   reactions,
		BlogComments:    comments,
		ProfileComments: profileComments,
	}
	if position != "" {
		t.Position = strPtr(position)
	}
	return Score(t)
}

// TestTotalScore tests the weighted formula
func TestTotalScore(t *testing.T) {
	cases := []struct {
		name            string
		votes           int
		reactions       int
		blogC           int
		profileComments int
		expected        float64
	}{
		{"zero engagement", 0, 0, 0, 0, 0},
		{"votes only", 4, 0, 0, 0, 12},
		{"reactions only", 0, 7, 0, 0, 7},
		{"blog comments only", 0, 0, 5, 0, 10},
		{"profile comments only", 0, 0, 0, 3, 4.5},
		{"mixed", 10, 2, 1, 0, 34},
		{"half point", 1, 1, 1, 1, 7.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tally := Tally{
				ProfileVotes:    tc.votes,
				BlogReactions:   tc.reactions,
				BlogComments:    tc.blogC,
				ProfileComments: tc.profileComments,
			}
			assert.Equal(t, tc.expected, tally.TotalScore())
			assert.Equal(t, tc.expected, Score(tally).TotalScore)
		})
	}
}

// TestCount tests raw relation counting from CMS profiles
func TestCount(t *testing.T) {
	t.Run("sums blog relations", func(t *testing.T) {
		p := &model.CandidateProfile{
			ID:           "p1",
			Name:         strPtr("Ada"),
			Department:   strPtr("Computing"),
			Position:     &model.PositionRef{Name: "President"},
			ProfileVotes: relations(3),
			Comments:     relations(2),
			Blogs: []*model.Blog{
				{ID: "b1", Reactions: relations(4), Comments: relations(1)},
				{ID: "b2", Reactions: relations(1), Comments: relations(2)},
			},
		}

		tally := Count(p)

		assert.Equal(t, "p1", tally.ID)
		assert.Equal(t, "Ada", *tally.Name)
		require.NotNil(t, tally.Position)
		assert.Equal(t, "President", *tally.Position)
		assert.Equal(t, 3, tally.ProfileVotes)
		assert.Equal(t, 5, tally.BlogReactions)
		assert.Equal(t, 3, tally.BlogComments)
		assert.Equal(t, 2, tally.ProfileComments)
		assert.Equal(t, 9+5+6+3.0, tally.TotalScore())
	})

	t.Run("nil relations count as zero", func(t *testing.T) {
		p := &model.CandidateProfile{ID: "p2"}

		engagement := Aggregate([]*model.CandidateProfile{p})

		require.Len(t, engagement, 1)
		assert.Equal(t, 0.0, engagement[0].TotalScore)
		assert.Nil(t, engagement[0].Position)
	})

	t.Run("null blog entries are skipped", func(t *testing.T) {
		p := &model.CandidateProfile{
			ID:    "p3",
			Blogs: []*model.Blog{nil, {ID: "b1", Reactions: relations(2)}},
		}

		assert.Equal(t, 2, Count(p).BlogReactions)
	})

	t.Run("blank position is treated as absent", func(t *testing.T) {
		p := &model.CandidateProfile{ID: "p4", Position: &model.PositionRef{Name: "  "}}

		assert.Nil(t, Count(p).Position)
	})

	t.Run("zero engagement candidates are kept", func(t *testing.T) {
		profiles := []*model.CandidateProfile{{ID: "a"}, {ID: "b"}, {ID: "c"}}

		assert.Len(t, Aggregate(profiles), 3)
	})
}

// TestTopCandidates tests the bounded leaderboard
func TestTopCandidates(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		top := TopCandidates(nil)

		assert.NotNil(t, top)
		assert.Empty(t, top)
	})

	t.Run("bounded to ten and ordered", func(t *testing.T) {
		for _, n := range []int{1, 5, 10, 11, 25} {
			input := make([]CandidateEngagement, 0, n)
			for i := 0; i < n; i++ {
				input = append(input, candidate(fmt.Sprintf("c%02d", i), "", (i*7)%5, i%3, (i*3)%4, i%2))
			}

			top := TopCandidates(input)

			assert.Len(t, top, min(n, TopLimit))
			for i := 1; i < len(top); i++ {
				assert.GreaterOrEqual(t, top[i-1].TotalScore, top[i].TotalScore)
			}
		}
	})

	t.Run("includes candidates without position", func(t *testing.T) {
		input := []CandidateEngagement{
			candidate("a", "", 10, 0, 0, 0),
			candidate("b", "President", 1, 0, 0, 0),
		}

		top := TopCandidates(input)

		require.Len(t, top, 2)
		assert.Equal(t, "a", top[0].ID)
	})

	t.Run("ties break on id ascending", func(t *testing.T) {
		input := []CandidateEngagement{
			candidate("c", "", 1, 0, 0, 0),
			candidate("a", "", 1, 0, 0, 0),
			candidate("b", "", 1, 0, 0, 0),
		}

		top := TopCandidates(input)

		assert.Equal(t, []string{"a", "b", "c"}, []string{top[0].ID, top[1].ID, top[2].ID})
	})

	t.Run("does not reorder input", func(t *testing.T) {
		input := []CandidateEngagement{
			candidate("low", "", 0, 0, 0, 1),
			candidate("high", "", 5, 0, 0, 0),
		}

		_ = TopCandidates(input)

		assert.Equal(t, "low", input[0].ID)
	})
}

// TestSelectPanel tests per-position selection
func TestSelectPanel(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		panel := SelectPanel(nil)

		assert.NotNil(t, panel)
		assert.Empty(t, panel)
	})

	t.Run("one member per position with max score", func(t *testing.T) {
		input := []CandidateEngagement{
			candidate("p1", "President", 2, 0, 0, 0),
			candidate("p2", "President", 9, 0, 0, 0),
			candidate("p3", "President", 4, 0, 0, 0),
			candidate("t1", "Treasurer", 0, 3, 0, 0),
			candidate("t2", "Treasurer", 0, 1, 1, 0),
			candidate("s1", "Secretary", 0, 0, 0, 2),
		}

		panel := SelectPanel(input)

		require.Len(t, panel, 3)
		seen := map[string]bool{}
		for _, m := range panel {
			assert.False(t, seen[m.Position], "duplicate position %s", m.Position)
			seen[m.Position] = true

			for _, c := range input {
				if c.Position != nil && *c.Position == m.Position {
					assert.GreaterOrEqual(t, m.TotalScore, c.TotalScore)
				}
			}
		}
		assert.Equal(t, "p2", panel[0].ID)
		for i := 1; i < len(panel); i++ {
			assert.GreaterOrEqual(t, panel[i-1].TotalScore, panel[i].TotalScore)
		}
	})

	t.Run("positionless candidates are excluded", func(t *testing.T) {
		input := []CandidateEngagement{
			candidate("star", "", 100, 100, 100, 100),
			candidate("p1", "President", 1, 0, 0, 0),
		}

		panel := SelectPanel(input)

		require.Len(t, panel, 1)
		assert.Equal(t, "p1", panel[0].ID)
	})

	t.Run("only positionless candidates", func(t *testing.T) {
		panel := SelectPanel([]CandidateEngagement{candidate("x", "", 3, 0, 0, 0)})

		assert.Empty(t, panel)
	})

	t.Run("positions are compared exactly", func(t *testing.T) {
		input := []CandidateEngagement{
			candidate("a", "President", 1, 0, 0, 0),
			candidate("b", "president", 2, 0, 0, 0),
		}

		assert.Len(t, SelectPanel(input), 2)
	})

	t.Run("blank position names never form a group", func(t *testing.T) {
		profiles := []*model.CandidateProfile{
			{ID: "blank", Position: &model.PositionRef{Name: "   "}, ProfileVotes: relations(50)},
			{ID: "empty", Position: &model.PositionRef{Name: ""}, ProfileVotes: relations(40)},
			{ID: "padded", Position: &model.PositionRef{Name: " President"}, ProfileVotes: relations(2)},
			{ID: "plain", Position: &model.PositionRef{Name: "President"}, ProfileVotes: relations(1)},
		}

		panel := SelectPanel(Aggregate(profiles))

		require.Len(t, panel, 2)
		assert.Equal(t, "padded", panel[0].ID)
		assert.Equal(t, " President", panel[0].Position)
		assert.Equal(t, "plain", panel[1].ID)
		assert.Equal(t, "President", panel[1].Position)
	})

	t.Run("tie within a position picks lowest id", func(t *testing.T) {
		input := []CandidateEngagement{
			candidate("z", "Welfare", 1, 0, 0, 0),
			candidate("m", "Welfare", 1, 0, 0, 0),
		}

		panel := SelectPanel(input)

		require.Len(t, panel, 1)
		assert.Equal(t, "m", panel[0].ID)
	})
}

// TestEndToEndExample tests the reference three-candidate scenario
func TestEndToEndExample(t *testing.T) {
	profiles := []*model.CandidateProfile{
		{
			ID:           "C",
			Position:     &model.PositionRef{Name: "Secretary"},
			ProfileVotes: relations(1),
			Comments:     relations(1),
			Blogs:        []*model.Blog{{ID: "c1", Reactions: relations(1), Comments: relations(1)}},
		},
		{
			ID:           "A",
			Position:     &model.PositionRef{Name: "President"},
			ProfileVotes: relations(10),
			Blogs:        []*model.Blog{{ID: "a1", Reactions: relations(2), Comments: relations(1)}},
		},
		{
			ID:           "B",
			Position:     &model.PositionRef{Name: "President"},
			ProfileVotes: relations(5),
			Comments:     relations(2),
		},
	}

	engagement := Aggregate(profiles)

	panel := SelectPanel(engagement)
	require.Len(t, panel, 2)
	assert.Equal(t, "A", panel[0].ID)
	assert.Equal(t, "President", panel[0].Position)
	assert.Equal(t, 34.0, panel[0].TotalScore)
	assert.Equal(t, "C", panel[1].ID)
	assert.Equal(t, "Secretary", panel[1].Position)
	assert.Equal(t, 7.5, panel[1].TotalScore)

	top := TopCandidates(engagement)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{top[0].ID, top[1].ID, top[2].ID})
	assert.Equal(t, []float64{34, 18, 7.5}, []float64{top[0].TotalScore, top[1].TotalScore, top[2].TotalScore})
}
