package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/SeasonOutlook/internal/display"
	"github.com/Alias1177/SeasonOutlook/models"
)

// Source tells where the displayed data came from.
type Source string

const (
	SourceNone Source = ""
	SourceAPI  Source = "api"
	SourceMock Source = "mock"
)

// State is the pipeline's application state: the latest prediction and
// history list. Each slot is replaced wholesale, never merged.
type State struct {
	Current   *models.Prediction  `json:"current,omitempty"`
	History   []models.Prediction `json:"history"`
	Source    Source              `json:"source"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Notifier receives a text summary after each successful generate.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Options configures a Pipeline.
type Options struct {
	TeamID       int
	HistoryLimit int
	// LabelReset is how long a transient trigger label stays up.
	LabelReset time.Duration
	// BarDelay defers bar width updates after the text update. Zero applies them inline.
	BarDelay time.Duration
	Location *time.Location
	Notifier Notifier
	Now      func() time.Time
}

func (o *Options) applyDefaults() {
	if o.TeamID <= 0 {
		o.TeamID = 1
	}
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = 10
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Pipeline fetches prediction data and writes it to a display surface.
type Pipeline struct {
	source  models.PredictionSource
	surface *display.Surface
	opts    Options
	logger  zerolog.Logger

	mu    sync.RWMutex
	state State

	// render serializes surface updates so one load lands as a unit.
	// Lock order: render, then bars, then mu.
	render     sync.Mutex
	bars       sync.Mutex
	barTimer   *time.Timer
	pendingBar func()
}

// NewPipeline wires a prediction source to a surface.
func NewPipeline(source models.PredictionSource, surface *display.Surface, opts Options) *Pipeline {
	opts.applyDefaults()
	return &Pipeline{
		source:  source,
		surface: surface,
		opts:    opts,
		logger:  log.With().Str("component", "dashboard").Logger(),
	}
}

// Surface returns the surface the pipeline renders into.
func (p *Pipeline) Surface() *display.Surface {
	return p.surface
}

// Snapshot returns a copy of the current state.
func (p *Pipeline) Snapshot() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := p.state
	if p.state.History != nil {
		out.History = append([]models.Prediction(nil), p.state.History...)
	}
	return out
}

// Initialize loads the current prediction, season stats and history in
// order. If any call fails the whole page shows the mock dataset instead;
// real and mock data are never mixed.
func (p *Pipeline) Initialize(ctx context.Context) Source {
	data, err := p.load(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("Error initializing dashboard")
		p.logger.Info().Msg("Using mock data for demonstration - API not available")
		p.show(models.MockDataset(p.opts.Now()), SourceMock)
		return SourceMock
	}

	p.show(data, SourceAPI)
	return SourceAPI
}

func (p *Pipeline) load(ctx context.Context) (models.Dataset, error) {
	var data models.Dataset
	var err error

	if data.Prediction, err = p.source.CurrentPrediction(ctx); err != nil {
		return data, eris.Wrap(err, "loading prediction")
	}
	if data.Stats, err = p.source.TeamSeason(ctx, p.opts.TeamID); err != nil {
		return data, eris.Wrap(err, "loading stats")
	}
	if data.History, err = p.source.History(ctx, p.opts.HistoryLimit); err != nil {
		return data, eris.Wrap(err, "loading history")
	}
	return data, nil
}

func (p *Pipeline) show(data models.Dataset, source Source) {
	p.render.Lock()
	defer p.render.Unlock()

	p.mu.Lock()
	p.state = State{
		Current:   data.Prediction,
		History:   data.History,
		Source:    source,
		UpdatedAt: p.opts.Now(),
	}
	p.mu.Unlock()

	p.renderPrediction(data.Prediction)
	p.renderStats(data.Stats)
	p.renderHistory(data.History)
}

// Generate creates a new prediction on the server, shows it and reloads the
// history. The trigger is disabled while the request runs and always comes
// back enabled after LabelReset, whatever the outcome.
func (p *Pipeline) Generate(ctx context.Context) error {
	logger := p.logger.With().Str("action_id", uuid.NewString()).Logger()
	trigger := p.surface.Trigger()
	trigger.Begin(display.LabelGenerating)

	if err := p.generate(ctx); err != nil {
		logger.Error().Err(err).Msg("Error generating prediction")
		trigger.Settle(display.LabelError, p.opts.LabelReset)
		return err
	}

	trigger.Settle(display.LabelUpdated, p.opts.LabelReset)
	logger.Info().Msg("Prediction updated")

	if p.opts.Notifier != nil {
		if err := p.opts.Notifier.Notify(ctx, Summary(p.surface.Snapshot())); err != nil {
			logger.Warn().Err(err).Msg("Failed to send prediction notification")
		}
	}
	return nil
}

func (p *Pipeline) generate(ctx context.Context) error {
	pred, err := p.source.GeneratePrediction(ctx)
	if err != nil {
		return err
	}
	p.render.Lock()
	p.mu.Lock()
	p.state.Current = pred
	p.state.Source = SourceAPI
	p.state.UpdatedAt = p.opts.Now()
	p.mu.Unlock()
	p.renderPrediction(pred)
	p.render.Unlock()

	history, err := p.source.History(ctx, p.opts.HistoryLimit)
	if err != nil {
		return err
	}
	p.render.Lock()
	p.mu.Lock()
	p.state.History = history
	p.mu.Unlock()
	p.renderHistory(history)
	p.render.Unlock()
	return nil
}
