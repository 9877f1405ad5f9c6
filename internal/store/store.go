package store

import (
	"context"

	"github.com/evomind/evomind-api/internal/domain"
)

// OnboardingStore tracks whether each user has finished the onboarding guide.
type OnboardingStore interface {
	// IsOnboardingDone reports whether the user completed onboarding.
	// Unknown users have not.
	IsOnboardingDone(ctx context.Context, userID string) bool

	// CompleteOnboarding marks onboarding as done. It is idempotent and the
	// flag never reverts.
	CompleteOnboarding(ctx context.Context, userID string)
}

// SourceStore manages each user's information sources.
type SourceStore interface {
	// GetSources returns the user's sources in insertion order.
	// An unknown user gets an empty list, which is materialised for later calls.
	GetSources(ctx context.Context, userID string) []domain.SourceItem

	// AddSource appends a new unpinned source in the default group.
	AddSource(ctx context.Context, userID, platform, nickname, homepage string) domain.SourceItem

	// ImportSources appends one source per candidate and returns them in input order.
	// Duplicate homepages are allowed.
	ImportSources(
		ctx context.Context,
		userID, platform string,
		items []domain.SourceCandidate,
	) []domain.SourceItem

	// RemoveSource deletes the source with the given ID from the user's list.
	// It reports whether anything was removed.
	RemoveSource(ctx context.Context, userID, id string) bool
}

// TaskStore manages the single challenge task each user holds.
type TaskStore interface {
	// GetOrInitTask returns the user's task, creating the default one on first read.
	GetOrInitTask(ctx context.Context, userID string) domain.ChallengeTask

	// UpdateTaskStatus replaces the status of the user's task, creating the
	// task first if needed. Any status string is accepted.
	UpdateTaskStatus(ctx context.Context, userID, status string) domain.ChallengeTask
}

// OrderStore records each user's order history.
type OrderStore interface {
	// CreateOrder stores a new paid order with a fresh order number.
	// Returns an error wrapping ErrInvalidEntity if the request is invalid.
	CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderItem, error)

	// Orders returns the user's orders in creation order.
	Orders(ctx context.Context, userID string) []domain.OrderItem
}

// Store combines every per-user state the API works with.
type Store interface {
	OnboardingStore
	SourceStore
	TaskStore
	OrderStore
}
