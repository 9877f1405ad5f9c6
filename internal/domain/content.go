package domain

// AIGeneratedTag marks every piece of synthesised content.
const AIGeneratedTag = "AI生成，仅供参考"

// CardItem is a condensed AI digest of a piece of external content.
type CardItem struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Platform    string `json:"platform"`
	Title       string `json:"title"`
	Guide       string `json:"guide"`
	AIGenerated bool   `json:"aiGenerated"`
}

// MindmapNode is a labelled node of a card's mindmap.
type MindmapNode struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Level    string `json:"level"`
	Conflict bool   `json:"conflict"`
}

// Mindmap is the argument tree of a card.
type Mindmap struct {
	CardID string        `json:"cardId"`
	Root   string        `json:"root"`
	Nodes  []MindmapNode `json:"nodes"`
	Tag    string        `json:"tag"`
}

// Drilldown links a mindmap node back to the paragraph it came from.
type Drilldown struct {
	CardID       string `json:"cardId"`
	NodeID       string `json:"nodeId"`
	OriginalText string `json:"originalText"`
	Tag          string `json:"tag"`
}

// DailyQuestion opens a Socratic discussion.
type DailyQuestion struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	Tag        string `json:"tag"`
}

// DiscussionReply is the follow-up prompt after a user's answer.
type DiscussionReply struct {
	DiscussionID     string `json:"discussionId"`
	FollowUpQuestion string `json:"followUpQuestion"`
	Tag              string `json:"tag"`
}

// DiscussionSummary closes a discussion.
type DiscussionSummary struct {
	DiscussionID string `json:"discussionId"`
	Summary      string `json:"summary"`
	NextQuestion string `json:"nextQuestion"`
	Tag          string `json:"tag"`
}
