package dto

// TopCandidateDTO 排行榜条目
type TopCandidateDTO struct {
	ID              string  `json:"id"`
	Name            *string `json:"name"`
	Image           *string `json:"image"`
	Department      *string `json:"department"`
	Position        *string `json:"position"`
	TotalScore      float64 `json:"totalScore"`
	ProfileComments int     `json:"profileComments"`
	ProfileVotes    int     `json:"profileVotes"`
}

// PanelMemberDTO 各职位得分最高的候选人
type PanelMemberDTO struct {
	ID              string  `json:"id"`
	Name            *string `json:"name"`
	Image           *string `json:"image"`
	Department      *string `json:"department"`
	Position        string  `json:"position"`
	TotalScore      float64 `json:"totalScore"`
	ProfileVotes    int     `json:"profileVotes"`
	BlogReactions   int     `json:"blogReactions"`
	BlogComments    int     `json:"blogComments"`
	ProfileComments int     `json:"profileComments"`
}

// CandidateEngagementDTO 管理端完整互动明细
type CandidateEngagementDTO struct {
	ID              string  `json:"id"`
	Name            *string `json:"name"`
	Image           *string `json:"image"`
	Department      *string `json:"department"`
	Position        *string `json:"position"`
	ProfileVotes    int     `json:"profileVotes"`
	BlogReactions   int     `json:"blogReactions"`
	BlogComments    int     `json:"blogComments"`
	ProfileComments int     `json:"profileComments"`
	TotalScore      float64 `json:"totalScore"`
}

// EngagementRefreshDTO 重建缓存结果
type EngagementRefreshDTO struct {
	Candidates int  `json:"candidates"`
	Cached     bool `json:"cached"`
}
