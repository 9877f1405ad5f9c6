package generation

import (
	"context"
	"fmt"

	"github.com/evomind/evomind-api/internal/domain"
)

// Placeholder content returned by PlaceholderSynthesiser.
const (
	MindmapRoot          = "核心论点"
	DrilldownText        = "这是与节点关联的原文段落（临时抓取示例，不落地存储）。"
	DailyQuestionText    = "你今天愿意放弃哪一件低价值任务，换来30分钟深度学习？"
	FollowUpTemplate     = "你提到了%s，请给出一个明天就能执行的具体动作。"
	DiscussionSummary    = "你已形成可执行策略：每天固定30分钟复盘+输出。"
	DiscussionNextPrompt = "如何持续8周不间断？"
)

// PlaceholderSynthesiser returns fixed demo content. Only identifiers vary
// between calls.
type PlaceholderSynthesiser struct{}

// Ensure PlaceholderSynthesiser implements Synthesiser
var _ Synthesiser = PlaceholderSynthesiser{}

// NewPlaceholderSynthesiser creates a PlaceholderSynthesiser.
func NewPlaceholderSynthesiser() PlaceholderSynthesiser {
	return PlaceholderSynthesiser{}
}

// BuildCards implements Synthesiser.BuildCards
func (PlaceholderSynthesiser) BuildCards(ctx context.Context, userID string) ([]domain.CardItem, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return []domain.CardItem{
		{
			ID:          domain.NewID(),
			Source:      "科技博主A",
			Platform:    "知乎",
			Title:       "从信息焦虑到行动闭环",
			Guide:       "核心：输入筛选+日清行动。",
			AIGenerated: true,
		},
		{
			ID:          domain.NewID(),
			Source:      "产品观察B",
			Platform:    "公众号",
			Title:       "AI时代的学习节奏",
			Guide:       "亮点：把输出作为唯一学习指标。",
			AIGenerated: true,
		},
	}, nil
}

// BuildMindmap implements Synthesiser.BuildMindmap
func (PlaceholderSynthesiser) BuildMindmap(ctx context.Context, cardID string) (domain.Mindmap, error) {
	if err := checkContext(ctx); err != nil {
		return domain.Mindmap{}, err
	}
	return domain.Mindmap{
		CardID: cardID,
		Root:   MindmapRoot,
		Nodes: []domain.MindmapNode{
			{ID: "n1", Text: "输入源质量优先", Level: "L1", Conflict: false},
			{ID: "n2", Text: "行动反馈驱动迭代", Level: "L1", Conflict: true},
		},
		Tag: domain.AIGeneratedTag,
	}, nil
}

// Drilldown implements Synthesiser.Drilldown
func (PlaceholderSynthesiser) Drilldown(ctx context.Context, cardID, nodeID string) (domain.Drilldown, error) {
	if err := checkContext(ctx); err != nil {
		return domain.Drilldown{}, err
	}
	return domain.Drilldown{
		CardID:       cardID,
		NodeID:       nodeID,
		OriginalText: DrilldownText,
		Tag:          domain.AIGeneratedTag,
	}, nil
}

// DailyQuestion implements Synthesiser.DailyQuestion
func (PlaceholderSynthesiser) DailyQuestion(ctx context.Context) (domain.DailyQuestion, error) {
	if err := checkContext(ctx); err != nil {
		return domain.DailyQuestion{}, err
	}
	return domain.DailyQuestion{
		QuestionID: domain.NewID(),
		Question:   DailyQuestionText,
		Tag:        domain.AIGeneratedTag,
	}, nil
}

// FollowUp implements Synthesiser.FollowUp
func (PlaceholderSynthesiser) FollowUp(
	ctx context.Context,
	discussionID, answer string,
) (domain.DiscussionReply, error) {
	if err := checkContext(ctx); err != nil {
		return domain.DiscussionReply{}, err
	}
	return domain.DiscussionReply{
		DiscussionID:     discussionID,
		FollowUpQuestion: fmt.Sprintf(FollowUpTemplate, answer),
		Tag:              domain.AIGeneratedTag,
	}, nil
}

// FinalizeDiscussion implements Synthesiser.FinalizeDiscussion
func (PlaceholderSynthesiser) FinalizeDiscussion(
	ctx context.Context,
	discussionID string,
) (domain.DiscussionSummary, error) {
	if err := checkContext(ctx); err != nil {
		return domain.DiscussionSummary{}, err
	}
	return domain.DiscussionSummary{
		DiscussionID: discussionID,
		Summary:      DiscussionSummary,
		NextQuestion: DiscussionNextPrompt,
		Tag:          domain.AIGeneratedTag,
	}, nil
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return nil
}
