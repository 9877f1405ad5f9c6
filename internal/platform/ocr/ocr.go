// Package ocr recognises content creators from screenshots of a platform's
// following list.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evomind/evomind-api/internal/domain"
)

// StubLatencyMs is the latency the stub reports for every recognition.
const StubLatencyMs = 900

var (
	// ErrRecognitionFailed is returned when an image cannot be recognised.
	ErrRecognitionFailed = errors.New("ocr recognition failed")

	// ErrEmptyImage is returned when no image payload was supplied.
	ErrEmptyImage = errors.New("image payload is empty")
)

// Result lists the candidate sources found in an image.
type Result struct {
	LatencyMs  int                      `json:"latencyMs"`
	Candidates []domain.SourceCandidate `json:"candidates"`
	Note       string                   `json:"note"`
}

// Recognizer extracts source candidates from a base64 encoded screenshot.
type Recognizer interface {
	Recognize(ctx context.Context, platform, imageBase64 string) (Result, error)
}

// StubRecognizer returns two fixed candidates named after the platform.
// It never inspects the image.
type StubRecognizer struct{}

// Ensure StubRecognizer implements Recognizer
var _ Recognizer = StubRecognizer{}

// Recognize implements Recognizer.Recognize
func (StubRecognizer) Recognize(ctx context.Context, platform, imageBase64 string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrRecognitionFailed, err)
	}
	if strings.TrimSpace(imageBase64) == "" {
		return Result{}, ErrEmptyImage
	}
	return Result{
		LatencyMs: StubLatencyMs,
		Candidates: []domain.SourceCandidate{
			{Nickname: platform + "优质博主A", Homepage: "https://example.cn/a"},
			{Nickname: platform + "优质博主B", Homepage: "https://example.cn/b"},
		},
		Note: domain.AIGeneratedTag,
	}, nil
}
