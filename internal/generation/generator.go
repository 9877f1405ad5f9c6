package generation

import (
	"context"

	"github.com/evomind/evomind-api/internal/domain"
)

// Synthesiser produces AI-generated content. Every result carries
// domain.AIGeneratedTag so clients can label it.
//
// Implementations must be safe for concurrent use.
type Synthesiser interface {
	// BuildCards returns the card feed for a user.
	BuildCards(ctx context.Context, userID string) ([]domain.CardItem, error)

	// BuildMindmap returns the argument tree of a card.
	BuildMindmap(ctx context.Context, cardID string) (domain.Mindmap, error)

	// Drilldown returns the source paragraph behind a mindmap node.
	Drilldown(ctx context.Context, cardID, nodeID string) (domain.Drilldown, error)

	// DailyQuestion opens a new discussion.
	DailyQuestion(ctx context.Context) (domain.DailyQuestion, error)

	// FollowUp answers a user's reply with a sharper question.
	FollowUp(ctx context.Context, discussionID, answer string) (domain.DiscussionReply, error)

	// FinalizeDiscussion summarises a discussion and proposes the next question.
	FinalizeDiscussion(ctx context.Context, discussionID string) (domain.DiscussionSummary, error)
}
