// Package ranking 候选人互动评分、排行榜与各职位代表（panel）选取
package ranking

import (
	"Hustings/internal/model"
	"sort"
)

// 评分权重，固定不可配置
const (
	ProfileVoteWeight    = 3.0
	BlogReactionWeight   = 1.0
	BlogCommentWeight    = 2.0
	ProfileCommentWeight = 1.5
)

// TopLimit 排行榜最多返回的候选人数
const TopLimit = 10

// Tally 候选人的原始互动计数，可缓存
type Tally struct {
	ID              string  `json:"id"`
	Name            *string `json:"name"`
	Image           *string `json:"image"`
	Department      *string `json:"department"`
	Position        *string `json:"position"`
	ProfileVotes    int     `json:"profile_votes"`
	BlogReactions   int     `json:"blog_reactions"`
	BlogComments    int     `json:"blog_comments"`
	ProfileComments int     `json:"profile_comments"`
}

// CandidateEngagement 带总分的候选人互动数据，每次请求重新计算
type CandidateEngagement struct {
	ID              string
	Name            *string
	Image           *string
	Department      *string
	Position        *string
	ProfileVotes    int
	BlogReactions   int
	BlogComments    int
	ProfileComments int
	TotalScore      float64
}

// PanelMember 某职位得分最高的候选人
type PanelMember struct {
	ID              string
	Name            *string
	Image           *string
	Department      *string
	Position        string
	ProfileVotes    int
	BlogReactions   int
	BlogComments    int
	ProfileComments int
	TotalScore      float64
}

// Count 统计单个 profile 的原始互动数
func Count(p *model.CandidateProfile) Tally {
	t := Tally{
		ID:              string(p.ID),
		Name:            p.Name,
		Image:           p.Image,
		Department:      p.Department,
		ProfileVotes:    len(p.ProfileVotes),
		ProfileComments: len(p.Comments),
	}
	if name, ok := p.PositionName(); ok {
		t.Position = &name
	}
	for _, blog := range p.Blogs {
		if blog == nil {
			continue
		}
		t.BlogReactions += len(blog.Reactions)
		t.BlogComments += len(blog.Comments)
	}
	return t
}

// CountAll 统计全部 profile，不做过滤
func CountAll(profiles []*model.CandidateProfile) []Tally {
	tallies := make([]Tally, 0, len(profiles))
	for _, p := range profiles {
		tallies = append(tallies, Count(p))
	}
	return tallies
}

// TotalScore 按固定权重计算总分
func (t Tally) TotalScore() float64 {
	return float64(t.ProfileVotes)*ProfileVoteWeight +
		float64(t.BlogReactions)*BlogReactionWeight +
		float64(t.BlogComments)*BlogCommentWeight +
		float64(t.ProfileComments)*ProfileCommentWeight
}

// Score 计算单个候选人的总分
func Score(t Tally) CandidateEngagement {
	return CandidateEngagement{
		ID:              t.ID,
		Name:            t.Name,
		Image:           t.Image,
		Department:      t.Department,
		Position:        t.Position,
		ProfileVotes:    t.ProfileVotes,
		BlogReactions:   t.BlogReactions,
		BlogComments:    t.BlogComments,
		ProfileComments: t.ProfileComments,
		TotalScore:      t.TotalScore(),
	}
}

// ScoreAll 对所有计数计算总分，顺序与输入一致
func ScoreAll(tallies []Tally) []CandidateEngagement {
	out := make([]CandidateEngagement, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, Score(t))
	}
	return out
}

// Aggregate 从 CMS 记录直接得到带分数的候选人列表
func Aggregate(profiles []*model.CandidateProfile) []CandidateEngagement {
	return ScoreAll(CountAll(profiles))
}

// ranksBefore 分数降序，同分按 id 升序
func ranksBefore(scoreA float64, idA string, scoreB float64, idB string) bool {
	if scoreA != scoreB {
		return scoreA > scoreB
	}
	return idA < idB
}

// SortByScore 原地排序
func SortByScore(candidates []CandidateEngagement) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return ranksBefore(candidates[i].TotalScore, candidates[i].ID, candidates[j].TotalScore, candidates[j].ID)
	})
}

// Top 返回得分最高的前 limit 名，不修改入参
func Top(candidates []CandidateEngagement, limit int) []CandidateEngagement {
	sorted := make([]CandidateEngagement, len(candidates))
	copy(sorted, candidates)
	SortByScore(sorted)
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// TopCandidates 排行榜前 TopLimit 名
func TopCandidates(candidates []CandidateEngagement) []CandidateEngagement {
	return Top(candidates, TopLimit)
}

// SelectPanel 每个职位取得分最高的一人，结果按分数降序
// 没有职位的候选人不参与
func SelectPanel(candidates []CandidateEngagement) []PanelMember {
	best := make(map[string]CandidateEngagement)
	for _, c := range candidates {
		if c.Position == nil {
			continue
		}
		current, ok := best[*c.Position]
		if !ok || ranksBefore(c.TotalScore, c.ID, current.TotalScore, current.ID) {
			best[*c.Position] = c
		}
	}

	panel := make([]PanelMember, 0, len(best))
	for position, c := range best {
		panel = append(panel, PanelMember{
			ID:              c.ID,
			Name:            c.Name,
			Image:           c.Image,
			Department:      c.Department,
			Position:        position,
			ProfileVotes:    c.ProfileVotes,
			BlogReactions:   c.BlogReactions,
			BlogComments:    c.BlogComments,
			ProfileComments: c.ProfileComments,
			TotalScore:      c.TotalScore,
		})
	}

	sort.SliceStable(panel, func(i, j int) bool {
		if panel[i].TotalScore != panel[j].TotalScore {
			return panel[i].TotalScore > panel[j].TotalScore
		}
		if panel[i].ID != panel[j].ID {
			return panel[i].ID < panel[j].ID
		}
		return panel[i].Position < panel[j].Position
	})
	return panel
}
