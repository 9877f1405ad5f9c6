package store

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/evomind/evomind-api/internal/domain"
	"github.com/evomind/evomind-api/internal/platform/logger"
)

// userPartition holds everything the store knows about one user.
// All fields are guarded by mu.
type userPartition struct {
	mu        sync.Mutex
	onboarded bool
	sources   []domain.SourceItem
	task      *domain.ChallengeTask
	orders    []domain.OrderItem
}

// MemoryStore is a process-wide, concurrency-safe Store kept entirely in memory.
type MemoryStore struct {
	users    sync.Map // userID -> *userPartition
	orderSeq *domain.Sequence
	timeFunc func() time.Time // Injectable for testing
	logger   *slog.Logger
}

// Ensure MemoryStore implements Store interface
var _ Store = (*MemoryStore)(nil)

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClock overrides the clock used for timestamps and deadlines.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.timeFunc = now
	}
}

// WithOrderSequence shares an order number sequence with other components.
func WithOrderSequence(seq *domain.Sequence) Option {
	return func(s *MemoryStore) {
		s.orderSeq = seq
	}
}

// WithLogger sets the store's base logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *MemoryStore) {
		s.logger = l
	}
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		timeFunc: time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.orderSeq == nil {
		s.orderSeq = domain.NewSequence(s.timeFunc)
	}
	s.logger = s.logger.With(slog.String("component", "memory_store"))
	return s
}

// partition returns the user's partition, creating it if absent.
func (s *MemoryStore) partition(userID string) *userPartition {
	if p, ok := s.users.Load(userID); ok {
		return p.(*userPartition)
	}
	p, _ := s.users.LoadOrStore(userID, &userPartition{})
	return p.(*userPartition)
}

// existing returns the user's partition without creating one.
func (s *MemoryStore) existing(userID string) (*userPartition, bool) {
	p, ok := s.users.Load(userID)
	if !ok {
		return nil, false
	}
	return p.(*userPartition), true
}

// IsOnboardingDone implements OnboardingStore.IsOnboardingDone
func (s *MemoryStore) IsOnboardingDone(ctx context.Context, userID string) bool {
	p, ok := s.existing(userID)
	if !ok {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.onboarded
}

// CompleteOnboarding implements OnboardingStore.CompleteOnboarding
func (s *MemoryStore) CompleteOnboarding(ctx context.Context, userID string) {
	p := s.partition(userID)
	p.mu.Lock()
	p.onboarded = true
	p.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("onboarding completed",
		slog.String("user_id", userID))
}

// GetSources implements SourceStore.GetSources
func (s *MemoryStore) GetSources(ctx context.Context, userID string) []domain.SourceItem {
	p := s.partition(userID)
	p.mu.Lock()
	defer p.mu.Unlock()
	return cloneOrEmpty(p.sources)
}

// AddSource implements SourceStore.AddSource
func (s *MemoryStore) AddSource(
	ctx context.Context,
	userID, platform, nickname, homepage string,
) domain.SourceItem {
	item := domain.NewSourceItem(platform, nickname, homepage, s.timeFunc())

	p := s.partition(userID)
	p.mu.Lock()
	p.sources = append(p.sources, item)
	count := len(p.sources)
	p.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("source added",
		slog.String("user_id", userID),
		slog.String("source_id", item.ID),
		slog.Int("source_count", count))
	return item
}

// ImportSources implements SourceStore.ImportSources
// The whole batch is appended under one lock, so concurrent readers see
// either none or all of it.
func (s *MemoryStore) ImportSources(
	ctx context.Context,
	userID, platform string,
	items []domain.SourceCandidate,
) []domain.SourceItem {
	now := s.timeFunc()
	added := make([]domain.SourceItem, 0, len(items))
	for _, it := range items {
		added = append(added, domain.NewSourceItem(platform, it.Nickname, it.Homepage, now))
	}

	p := s.partition(userID)
	p.mu.Lock()
	p.sources = append(p.sources, added...)
	p.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("sources imported",
		slog.String("user_id", userID),
		slog.String("platform", platform),
		slog.Int("imported", len(added)))
	return slices.Clone(added)
}

// RemoveSource implements SourceStore.RemoveSource
func (s *MemoryStore) RemoveSource(ctx context.Context, userID, id string) bool {
	p := s.partition(userID)
	p.mu.Lock()
	idx := slices.IndexFunc(p.sources, func(it domain.SourceItem) bool { return it.ID == id })
	if idx >= 0 {
		p.sources = slices.Delete(p.sources, idx, idx+1)
	}
	p.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("source removal",
		slog.String("user_id", userID),
		slog.String("source_id", id),
		slog.Bool("removed", idx >= 0))
	return idx >= 0
}

// GetOrInitTask implements TaskStore.GetOrInitTask
func (s *MemoryStore) GetOrInitTask(ctx context.Context, userID string) domain.ChallengeTask {
	p := s.partition(userID)
	p.mu.Lock()
	defer p.mu.Unlock()
	return *s.taskLocked(p)
}

// UpdateTaskStatus implements TaskStore.UpdateTaskStatus
func (s *MemoryStore) UpdateTaskStatus(ctx context.Context, userID, status string) domain.ChallengeTask {
	p := s.partition(userID)
	p.mu.Lock()
	updated := s.taskLocked(p).WithStatus(status)
	p.task = &updated
	p.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task status updated",
		slog.String("user_id", userID),
		slog.String("task_id", updated.ID),
		slog.String("status", status))
	return updated
}

// taskLocked returns the partition's task, creating the default one.
// p.mu must be held.
func (s *MemoryStore) taskLocked(p *userPartition) *domain.ChallengeTask {
	if p.task == nil {
		task := domain.NewDefaultChallengeTask(s.timeFunc())
		p.task = &task
	}
	return p.task
}

// CreateOrder implements OrderStore.CreateOrder
func (s *MemoryStore) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	order, err := domain.NewOrderItem(s.orderSeq.NextWithPrefix(domain.OrderNoPrefix), req, s.timeFunc())
	if err != nil {
		log.Debug("rejected invalid order",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()))
		return domain.OrderItem{}, NewStoreError("order", "create", "invalid order",
			errors.Join(ErrInvalidEntity, err))
	}

	p := s.partition(req.UserID)
	p.mu.Lock()
	p.orders = append(p.orders, order)
	p.mu.Unlock()

	log.Info("order created",
		slog.String("user_id", order.UserID),
		slog.String("order_no", order.OrderNo),
		slog.String("plan_code", order.PlanCode),
		slog.Int("amount", order.Amount))
	return order, nil
}

// Orders implements OrderStore.Orders
func (s *MemoryStore) Orders(ctx context.Context, userID string) []domain.OrderItem {
	p, ok := s.existing(userID)
	if !ok {
		return []domain.OrderItem{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return cloneOrEmpty(p.orders)
}

// cloneOrEmpty copies items, turning nil into an empty slice so it encodes as [].
func cloneOrEmpty[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return slices.Clone(items)
}
