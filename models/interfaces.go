package models

import "context"

// PredictionSource is the remote predictions API as seen by the dashboard.
type PredictionSource interface {
	CurrentPrediction(ctx context.Context) (*Prediction, error)
	GeneratePrediction(ctx context.Context) (*Prediction, error)
	TeamSeason(ctx context.Context, teamID int) (*TeamSeasonResponse, error)
	History(ctx context.Context, limit int) ([]Prediction, error)
}
