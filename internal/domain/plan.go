package domain

// Unlimited marks a plan limit with no ceiling.
const Unlimited = -1

// PlanItem is one subscription tier.
type PlanItem struct {
	Code                 string   `json:"code"`
	Name                 string   `json:"name"`
	Period               string   `json:"period"`
	SourceLimit          int      `json:"sourceLimit"`
	DiscussionLimitDaily int      `json:"discussionLimitDaily"`
	AgentTrainLimit      string   `json:"agentTrainLimit"`
	Features             []string `json:"features"`
}

// Plans returns the static plan catalogue. Each call returns fresh slices,
// so callers may modify the result freely.
func Plans() []PlanItem {
	return []PlanItem{
		{
			Code:                 "BASIC",
			Name:                 "基础套餐",
			Period:               "WEEK/MONTH",
			SourceLimit:          20,
			DiscussionLimitDaily: 5,
			AgentTrainLimit:      "无",
			Features:             []string{"信息源<=20", "无观点冲突标记", "摘要token<=1000/天"},
		},
		{
			Code:                 "ADVANCED",
			Name:                 "进阶套餐",
			Period:               "WEEK/MONTH",
			SourceLimit:          50,
			DiscussionLimitDaily: 20,
			AgentTrainLimit:      "3次/周",
			Features:             []string{"信息源<=50", "观点冲突标记无限", "摘要token<=5000/天"},
		},
		{
			Code:                 "CUSTOM",
			Name:                 "定制套餐",
			Period:               "WEEK/MONTH",
			SourceLimit:          Unlimited,
			DiscussionLimitDaily: Unlimited,
			AgentTrainLimit:      "无限",
			Features:             []string{"信息源无限", "全功能无限", "按实时算力动态计费"},
		},
	}
}

// IsUnlimited reports whether a limit value means "no ceiling".
func IsUnlimited(limit int) bool {
	return limit == Unlimited
}
