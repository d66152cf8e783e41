// Package media provides the mock transcription and image-analysis
// collaborators that turn uploaded blobs into search queries. Real STT and
// vision models are out of scope; these stand-ins pick canned outputs so the
// rest of the pipeline can be exercised end to end.
package media

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/curio-labs/searchlab/internal/domain"
)

// Transcriber converts an audio blob into a query string.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Analyzer extracts descriptive features from an image blob.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte) ([]string, error)
}

// Canned outputs, mirroring the phrases a live model would plausibly return
// for the demo catalog.
var (
	transcriptions = []string{
		"diamond ring",
		"gold necklace",
		"pearl earrings",
		"silver bracelet",
		"vintage emerald",
	}

	featureSets = [][]string{
		{"ring", "gold", "diamond"},
		{"necklace", "chain", "pendant"},
		{"earrings", "pearl", "elegant"},
		{"bracelet", "silver", "sparkle"},
		{"ring", "emerald", "vintage"},
	}
)

// MockTranscriber returns a canned transcription regardless of input.
type MockTranscriber struct {
	rng *rand.Rand
}

// NewMockTranscriber creates a transcriber backed by the global PRNG.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// NewSeededTranscriber creates a reproducible transcriber.
func NewSeededTranscriber(seed uint64) *MockTranscriber {
	return &MockTranscriber{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Transcribe picks one of the canned phrases. Empty input is rejected so a
// malformed upload cannot silently search for nothing.
func (t *MockTranscriber) Transcribe(_ context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload: %w", domain.ErrInvalidArgument)
	}
	return transcriptions[t.intN(len(transcriptions))], nil
}

func (t *MockTranscriber) intN(n int) int {
	if t.rng != nil {
		return t.rng.IntN(n)
	}
	return rand.IntN(n)
}

// MockAnalyzer returns a canned feature set regardless of input.
type MockAnalyzer struct {
	rng *rand.Rand
}

// NewMockAnalyzer creates an analyzer backed by the global PRNG.
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

// NewSeededAnalyzer creates a reproducible analyzer.
func NewSeededAnalyzer(seed uint64) *MockAnalyzer {
	return &MockAnalyzer{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Analyze picks one of the canned feature sets.
func (a *MockAnalyzer) Analyze(_ context.Context, image []byte) ([]string, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("empty image payload: %w", domain.ErrInvalidArgument)
	}
	features := featureSets[a.intN(len(featureSets))]
	out := make([]string, len(features))
	copy(out, features)
	return out, nil
}

func (a *MockAnalyzer) intN(n int) int {
	if a.rng != nil {
		return a.rng.IntN(n)
	}
	return rand.IntN(n)
}
