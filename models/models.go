package models

import (
	"time"
)

// Prediction is one season-outcome forecast as served by the predictions API.
// Probabilities and confidence are fractions in [0,1].
type Prediction struct {
	PlayoffProbability    float64   `json:"playoff_probability"`
	DivisionProbability   float64   `json:"division_probability"`
	ConferenceProbability float64   `json:"conference_probability"`
	SuperbowlProbability  float64   `json:"superbowl_probability"`
	ConfidenceScore       float64   `json:"confidence_score"`
	CreatedAt             time.Time `json:"created_at"`
}

// SeasonStats is the team's record for the current season. Optional fields
// are pointers so that "absent" and "zero" stay distinguishable on the wire.
type SeasonStats struct {
	Wins            int      `json:"wins"`
	Losses          int      `json:"losses"`
	Ties            int      `json:"ties"`
	WinPercentage   *float64 `json:"win_percentage,omitempty"`
	OffensiveRating *float64 `json:"offensive_rating,omitempty"`
	DefensiveRating *float64 `json:"defensive_rating,omitempty"`
}

// PredictionResponse is the body of GET /predictions/current and POST /predictions/generate.
type PredictionResponse struct {
	Prediction *Prediction `json:"prediction"`
}

// TeamSeasonResponse is the body of GET /teams/{id}/current.
type TeamSeasonResponse struct {
	Season *SeasonStats `json:"season"`
}

// HistoryResponse is the body of GET /predictions/history.
type HistoryResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// Dataset is everything one page load displays.
type Dataset struct {
	Prediction *Prediction
	Stats      *TeamSeasonResponse
	History    []Prediction
}

// Float returns a pointer to v, for building optional stats fields.
func Float(v float64) *float64 {
	return &v
}
