package dashboard

import (
	"bytes"
	"html/template"
	"time"

	"github.com/Alias1177/SeasonOutlook/internal/display"
	"github.com/Alias1177/SeasonOutlook/models"
)

// NoHistory is the placeholder shown when there is no prediction history.
const NoHistory template.HTML = `<div class="loading">No prediction history available</div>`

type predictionBinding struct {
	target string
	value  func(*models.Prediction) float64
}

var predictionText = []predictionBinding{
	{display.PlayoffProb, func(p *models.Prediction) float64 { return p.PlayoffProbability }},
	{display.DivisionProb, func(p *models.Prediction) float64 { return p.DivisionProbability }},
	{display.ConferenceProb, func(p *models.Prediction) float64 { return p.ConferenceProbability }},
	{display.SuperbowlProb, func(p *models.Prediction) float64 { return p.SuperbowlProbability }},
	{display.Confidence, func(p *models.Prediction) float64 { return p.ConfidenceScore }},
}

var predictionBars = []predictionBinding{
	{display.PlayoffBar, func(p *models.Prediction) float64 { return p.PlayoffProbability }},
	{display.DivisionBar, func(p *models.Prediction) float64 { return p.DivisionProbability }},
	{display.ConferenceBar, func(p *models.Prediction) float64 { return p.ConferenceProbability }},
	{display.SuperbowlBar, func(p *models.Prediction) float64 { return p.SuperbowlProbability }},
}

type statsBinding struct {
	target string
	value  func(*models.SeasonStats) string
}

var statsText = []statsBinding{
	{display.RecordText, func(s *models.SeasonStats) string { return display.Record(s.Wins, s.Losses, s.Ties) }},
	{display.WinPctText, func(s *models.SeasonStats) string { return display.WinPct(s.WinPercentage) }},
	{display.OffRating, func(s *models.SeasonStats) string { return display.Rating(s.OffensiveRating) }},
	{display.DefRating, func(s *models.SeasonStats) string { return display.Rating(s.DefensiveRating) }},
}

// RenderPrediction writes the rounded percentages, then the bar widths after BarDelay.
func (p *Pipeline) RenderPrediction(pred *models.Prediction) {
	p.render.Lock()
	defer p.render.Unlock()
	p.renderPrediction(pred)
}

func (p *Pipeline) renderPrediction(pred *models.Prediction) {
	if pred == nil {
		return
	}
	for _, b := range predictionText {
		p.surface.SetText(b.target, display.PercentText(b.value(pred)))
	}

	bars := func() {
		for _, b := range predictionBars {
			p.surface.SetWidth(b.target, display.Percent(b.value(pred)))
		}
	}

	p.bars.Lock()
	defer p.bars.Unlock()
	p.stopBarsLocked()
	if p.opts.BarDelay <= 0 {
		bars()
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(p.opts.BarDelay, func() {
		p.render.Lock()
		defer p.render.Unlock()
		p.bars.Lock()
		defer p.bars.Unlock()
		if p.barTimer != timer {
			return
		}
		p.barTimer, p.pendingBar = nil, nil
		bars()
	})
	p.barTimer, p.pendingBar = timer, bars
}

// FlushBars applies any bar widths still waiting on BarDelay. Static
// renderings call it so bars always match the percentages beside them.
func (p *Pipeline) FlushBars() {
	p.render.Lock()
	defer p.render.Unlock()
	p.bars.Lock()
	defer p.bars.Unlock()

	apply := p.pendingBar
	p.stopBarsLocked()
	if apply != nil {
		apply()
	}
}

func (p *Pipeline) stopBarsLocked() {
	if p.barTimer != nil {
		p.barTimer.Stop()
	}
	p.barTimer, p.pendingBar = nil, nil
}

// RenderStats writes record, win percentage and ratings. A payload without
// a season is ignored.
func (p *Pipeline) RenderStats(payload *models.TeamSeasonResponse) {
	p.render.Lock()
	defer p.render.Unlock()
	p.renderStats(payload)
}

func (p *Pipeline) renderStats(payload *models.TeamSeasonResponse) {
	if payload == nil || payload.Season == nil {
		return
	}
	for _, b := range statsText {
		p.surface.SetText(b.target, b.value(payload.Season))
	}
}

// RenderHistory replaces the history list with one card per record, in order.
func (p *Pipeline) RenderHistory(history []models.Prediction) {
	p.render.Lock()
	defer p.render.Unlock()
	p.renderHistory(history)
}

func (p *Pipeline) renderHistory(history []models.Prediction) {
	if !p.surface.Has(display.HistoryList) {
		return
	}
	p.surface.SetHTML(display.HistoryList, HistoryHTML(history, p.opts.Location))
}

type historyValue struct {
	Label string
	Value string
}

type historyCard struct {
	Date   string
	Values []historyValue
}

var historyTmpl = template.Must(template.New("history").Parse(`{{range .}}
<div class="history-item">
    <div class="history-date">{{.Date}}</div>
    <div class="history-predictions">{{range .Values}}
        <div class="history-pred">
            <div class="history-pred-label">{{.Label}}</div>
            <div class="history-pred-value">{{.Value}}</div>
        </div>{{end}}
    </div>
</div>{{end}}`))

// HistoryHTML renders history cards, or the NoHistory placeholder when empty.
func HistoryHTML(history []models.Prediction, loc *time.Location) template.HTML {
	if len(history) == 0 {
		return NoHistory
	}

	cards := make([]historyCard, 0, len(history))
	for _, pred := range history {
		cards = append(cards, historyCard{
			Date: display.HistoryDate(pred.CreatedAt, loc),
			Values: []historyValue{
				{"PLAYOFFS", display.PercentText(pred.PlayoffProbability)},
				{"DIVISION", display.PercentText(pred.DivisionProbability)},
				{"CONFERENCE", display.PercentText(pred.ConferenceProbability)},
				{"SUPER BOWL", display.PercentText(pred.SuperbowlProbability)},
			},
		})
	}

	var buf bytes.Buffer
	if err := historyTmpl.Execute(&buf, cards); err != nil {
		// only string fields are rendered, so this cannot fail
		panic(err)
	}
	return template.HTML(buf.String())
}
