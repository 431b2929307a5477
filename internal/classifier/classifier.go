// Package classifier asks a generative model which search results are small,
// local or independent businesses and filters the results accordingly.
//
// Classification is advisory. It never fails the caller:
//   - a reply that selects nothing usable degrades to the first FallbackSize places;
//   - a failed call (transport, timeout, bad payload) degrades to the unfiltered input.
package classifier

import (
	"context"
	"fmt"

	"github.com/prperemyshlev/localmaps-api/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// FallbackSize is how many leading places are returned when the model selects none.
const FallbackSize = 5

const (
	outcomeSkipped  = "skipped"
	outcomeFiltered = "filtered"
	outcomeFallback = "fallback"
	outcomeFailOpen = "fail_open"
)

// Generator produces a text completion for a single-turn prompt
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Classifier filters places down to independent businesses
type Classifier struct {
	generator Generator
	logger    *zap.Logger
	outcomes  metric.Int64Counter
}

func New(generator Generator, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}

	outcomes, err := otel.Meter("localmaps/classifier").Int64Counter(
		"classifier_outcomes_total",
		metric.WithDescription("Business classification results by outcome"),
	)
	if err != nil {
		logger.Warn("failed to create classifier metrics", zap.Error(err))
	}

	return &Classifier{
		generator: generator,
		logger:    logger,
		outcomes:  outcomes,
	}
}

// FilterSmallBusinesses returns the subsequence of places the model judged to
// be small businesses, in the order the model listed them.
func (c *Classifier) FilterSmallBusinesses(ctx context.Context, places []domain.Place, query string) []domain.Place {
	if len(places) == 0 {
		c.record(ctx, outcomeSkipped)
		return places
	}

	filtered, err := c.classify(ctx, places, query)
	if err != nil {
		c.logger.Warn("business classification failed, returning unfiltered places",
			zap.String("query", query),
			zap.Int("places", len(places)),
			zap.Error(err),
		)
		c.record(ctx, outcomeFailOpen)
		return places
	}

	if len(filtered) == 0 {
		c.logger.Info("classifier selected no places, falling back to top results",
			zap.String("query", query),
			zap.Int("places", len(places)),
		)
		c.record(ctx, outcomeFallback)
		return places[:min(FallbackSize, len(places))]
	}

	c.record(ctx, outcomeFiltered)
	return filtered
}

func (c *Classifier) classify(ctx context.Context, places []domain.Place, query string) (filtered []domain.Place, err error) {
	// A malformed place payload must not take the search down with it.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classification panicked: %v", r)
		}
	}()

	prompt, err := BuildPrompt(Summarize(places), query)
	if err != nil {
		return nil, err
	}

	reply, err := c.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return SelectPlaces(places, ParseIndices(reply)), nil
}

// SelectPlaces maps indices back to places, dropping any outside [0, len(places)).
func SelectPlaces(places []domain.Place, indices []int) []domain.Place {
	selected := make([]domain.Place, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(places) {
			continue
		}
		selected = append(selected, places[idx])
	}
	return selected
}

func (c *Classifier) record(ctx context.Context, outcome string) {
	if c.outcomes == nil {
		return
	}
	c.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
