package models

import "time"

// MockDataset returns the fixed demonstration data shown when the API is
// unreachable. History timestamps are relative to now, one day apart.
func MockDataset(now time.Time) Dataset {
	day := 24 * time.Hour
	return Dataset{
		Prediction: &Prediction{
			PlayoffProbability:    0.42,
			DivisionProbability:   0.28,
			ConferenceProbability: 0.12,
			SuperbowlProbability:  0.06,
			ConfidenceScore:       0.73,
		},
		Stats: &TeamSeasonResponse{
			Season: &SeasonStats{
				Wins:            3,
				Losses:          3,
				Ties:            0,
				WinPercentage:   Float(0.500),
				OffensiveRating: Float(78.5),
				DefensiveRating: Float(82.3),
			},
		},
		History: []Prediction{
			{CreatedAt: now, PlayoffProbability: 0.42, DivisionProbability: 0.28, ConferenceProbability: 0.12, SuperbowlProbability: 0.06},
			{CreatedAt: now.Add(-1 * day), PlayoffProbability: 0.45, DivisionProbability: 0.31, ConferenceProbability: 0.14, SuperbowlProbability: 0.07},
			{CreatedAt: now.Add(-2 * day), PlayoffProbability: 0.38, DivisionProbability: 0.25, ConferenceProbability: 0.10, SuperbowlProbability: 0.05},
			{CreatedAt: now.Add(-3 * day), PlayoffProbability: 0.35, DivisionProbability: 0.22, ConferenceProbability: 0.08, SuperbowlProbability: 0.04},
		},
	}
}
