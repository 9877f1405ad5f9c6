package billing

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Unit prices in yuan per unit of usage.
var (
	PriceSource     = decimal.RequireFromString("0.03")
	PriceConflict   = decimal.RequireFromString("0.06")
	PriceToken      = decimal.RequireFromString("0.0004")
	PriceDiscussion = decimal.RequireFromString("0.08")
	PriceAgentTrain = decimal.RequireFromString("1.20")
)

const (
	// Formula explains how the subscription fee is derived.
	Formula = "订阅费 = 向上取整(实时算力成本) × 2"

	// Note breaks down what the fee pays for.
	Note = "费用构成：80%算力成本 + 20%运营成本"

	feeMultiplier = 2

	// MaxSubscriptionFee is the largest fee an estimate can report.
	MaxSubscriptionFee = math.MaxInt32
)

var (
	// ErrNegativeUsage is returned when any usage component is below zero.
	ErrNegativeUsage = errors.New("usage cannot be negative")

	// ErrNonFiniteUsage is returned when a usage component is NaN or infinite.
	ErrNonFiniteUsage = errors.New("usage must be a finite number")

	// ErrUsageTooLarge is returned when the subscription fee would exceed
	// MaxSubscriptionFee.
	ErrUsageTooLarge = errors.New("usage too large to estimate")
)

// Usage is the amount of each billable resource consumed.
type Usage struct {
	SourceCount        float64 `json:"sourceCount"        validate:"gte=0"`
	ConflictCheckCount float64 `json:"conflictCheckCount" validate:"gte=0"`
	SummaryTokens      float64 `json:"summaryTokens"      validate:"gte=0"`
	DiscussionRounds   float64 `json:"discussionRounds"   validate:"gte=0"`
	AgentTrainCount    float64 `json:"agentTrainCount"    validate:"gte=0"`
}

// CostEstimate is the priced breakdown of a Usage.
type CostEstimate struct {
	RealtimeCost    float64 `json:"realtimeCost"`
	RoundedCost     int     `json:"roundedCost"`
	SubscriptionFee int     `json:"subscriptionFee"`
	Formula         string  `json:"formula"`
	Note            string  `json:"note"`
}

type component struct {
	name  string
	value float64
	price decimal.Decimal
}

func (u Usage) components() []component {
	return []component{
		{"sourceCount", u.SourceCount, PriceSource},
		{"conflictCheckCount", u.ConflictCheckCount, PriceConflict},
		{"summaryTokens", u.SummaryTokens, PriceToken},
		{"discussionRounds", u.DiscussionRounds, PriceDiscussion},
		{"agentTrainCount", u.AgentTrainCount, PriceAgentTrain},
	}
}

// Validate reports the first component that is negative or not finite.
func (u Usage) Validate() error {
	for _, c := range u.components() {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%s: %w", c.name, ErrNonFiniteUsage)
		}
		if c.value < 0 {
			return fmt.Errorf("%s: %w", c.name, ErrNegativeUsage)
		}
	}
	return nil
}

// RawCost is the unrounded realtime cost of u. It assumes u is valid.
func RawCost(u Usage) decimal.Decimal {
	total := decimal.Zero
	for _, c := range u.components() {
		total = total.Add(decimal.NewFromFloat(c.value).Mul(c.price))
	}
	return total
}

// Estimate prices u. The realtime cost is rounded half away from zero to
// two places; the rounded cost is the ceiling of the unrounded raw cost.
func Estimate(u Usage) (CostEstimate, error) {
	if err := u.Validate(); err != nil {
		return CostEstimate{}, err
	}

	raw := RawCost(u)
	ceil := raw.Ceil()
	if ceil.Mul(decimal.NewFromInt(feeMultiplier)).GreaterThan(decimal.NewFromInt(MaxSubscriptionFee)) {
		return CostEstimate{}, fmt.Errorf("subscription fee for cost %s exceeds %d: %w",
			ceil.String(), MaxSubscriptionFee, ErrUsageTooLarge)
	}
	rounded := int(ceil.IntPart())

	return CostEstimate{
		RealtimeCost:    raw.Round(2).InexactFloat64(),
		RoundedCost:     rounded,
		SubscriptionFee: rounded * feeMultiplier,
		Formula:         Formula,
		Note:            Note,
	}, nil
}
