// Package pipeline turns a parsed configuration into a batch of sprites.
package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/spritegen/internal/config"
	"github.com/alexisbeaulieu97/spritegen/internal/logger"
	"github.com/alexisbeaulieu97/spritegen/internal/model"
	"github.com/alexisbeaulieu97/spritegen/pkg/builder"
	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
)

const (
	defaultWorkers = 4
	fillStepID     = "fill"
)

type compiledStep struct {
	id    string
	apply stepFunc
}

// Generator produces sprites for a configuration. It is safe for concurrent
// use: every sprite gets its own builder and random source.
type Generator struct {
	cfg     *config.Config
	log     *logger.Logger
	workers int
	seed    uint64

	base  []builder.Option
	steps []compiledStep
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *logger.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// WithWorkers bounds how many sprites are generated concurrently.
func WithWorkers(n int) Option {
	return func(g *Generator) { g.workers = n }
}

// WithSeed overrides the configured seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.seed = seed }
}

// New compiles cfg into a Generator. Without a seed in the configuration or
// WithSeed, one is drawn at random and reported by Seed.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	if cfg == nil {
		return nil, spriteerrors.NewValidationError("config", "configuration is nil", nil)
	}

	g := &Generator{cfg: cfg, log: logger.Nop(), workers: defaultWorkers}
	if cfg.Seed != nil {
		g.seed = *cfg.Seed
	} else {
		g.seed = rand.Uint64()
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logger.Nop()
	}
	if g.workers <= 0 {
		g.workers = 1
	}

	base, err := builderOptions(cfg.Sprite)
	if err != nil {
		return nil, spriteerrors.NewValidationError("sprite", err.Error(), err)
	}
	g.base = base

	for i, step := range cfg.Steps {
		apply, err := compileStep(i, step)
		if err != nil {
			return nil, spriteerrors.NewValidationError(fmt.Sprintf("steps[%d]", i), err.Error(), err)
		}
		g.steps = append(g.steps, compiledStep{id: step.ID(i), apply: apply})
	}

	return g, nil
}

// Seed returns the seed sprites are derived from.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Count returns the configured batch size.
func (g *Generator) Count() int {
	if g.cfg.Count <= 0 {
		return 1
	}
	return g.cfg.Count
}

// Reseed returns a copy of g that derives sprites from seed.
func (g *Generator) Reseed(seed uint64) *Generator {
	next := *g
	next.seed = seed
	return &next
}

// Generate produces the whole batch. Results keep batch order; the returned
// error is the first failure in that order.
func (g *Generator) Generate(ctx context.Context) (*model.GenerationSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	count := g.Count()
	results := make([]model.GenerationResult, count)
	pool := make(chan struct{}, g.workers)
	var wg sync.WaitGroup

	g.log.WithFields(map[string]any{
		"name":  g.cfg.Name,
		"count": count,
		"seed":  g.seed,
	}).Info("generating sprites")

	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			select {
			case pool <- struct{}{}:
				defer func() { <-pool }()
			case <-ctx.Done():
				results[index] = model.GenerationResult{
					Index: index,
					Error: spriteerrors.NewExecutionError(fillStepID, ctx.Err()),
				}
				return
			}

			results[index] = g.GenerateOne(ctx, index)
		}(i)
	}
	wg.Wait()

	summary := &model.GenerationSummary{Seed: g.seed}
	var firstErr error
	for _, res := range results {
		summary.Add(res)
		if res.Error != nil && firstErr == nil {
			firstErr = res.Error
		}
	}

	g.log.WithFields(map[string]any{
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Debug("generation finished")

	return summary, firstErr
}

// GenerateOne produces the sprite at index. The same seed and index always
// yield the same sprite.
func (g *Generator) GenerateOne(ctx context.Context, index int) model.GenerationResult {
	start := time.Now()
	result := model.GenerationResult{Index: index}
	log := g.log.WithFields(map[string]any{"sprite": index})

	if err := ctx.Err(); err != nil {
		result.Error = spriteerrors.NewExecutionError(fillStepID, err)
		return result
	}

	rng := rand.New(rand.NewPCG(g.seed, uint64(index)))
	opts := append(append([]builder.Option(nil), g.base...),
		builder.WithRand(rng),
		builder.WithLogger(log.Zerolog()),
	)

	b, err := builder.New(opts...)
	if err != nil {
		result.Error = spriteerrors.NewExecutionError(fillStepID, err)
		result.Steps = append(result.Steps, failedStep(fillStepID, err, start))
		result.Duration = time.Since(start)
		return result
	}

	result.Steps = append(result.Steps, runStep(fillStepID, func() error { return b.Single().Err() }))

	for _, step := range g.steps {
		if b.Err() != nil {
			result.Steps = append(result.Steps, model.StepResult{
				StepID:    step.id,
				Status:    model.StatusSkipped,
				Message:   "skipped after earlier failure",
				Timestamp: time.Now(),
			})
			continue
		}
		apply := step.apply
		result.Steps = append(result.Steps, runStep(step.id, func() error { return apply(b).Err() }))
	}

	sp, err := b.Build()
	result.Duration = time.Since(start)
	if err != nil {
		result.Error = spriteerrors.NewExecutionError(failedStepID(result.Steps), err)
		log.Error(err, "sprite generation failed")
		return result
	}

	result.Sprite = sp
	return result
}

func runStep(id string, fn func() error) model.StepResult {
	start := time.Now()
	if err := fn(); err != nil {
		return failedStep(id, err, start)
	}
	return model.StepResult{
		StepID:    id,
		Status:    model.StatusSuccess,
		Message:   "completed",
		Duration:  time.Since(start),
		Timestamp: time.Now(),
	}
}

func failedStep(id string, err error, start time.Time) model.StepResult {
	return model.StepResult{
		StepID:    id,
		Status:    model.StatusFailed,
		Message:   err.Error(),
		Error:     err,
		Duration:  time.Since(start),
		Timestamp: time.Now(),
	}
}

func failedStepID(steps []model.StepResult) string {
	for _, s := range steps {
		if s.Status == model.StatusFailed {
			return s.StepID
		}
	}
	return ""
}
