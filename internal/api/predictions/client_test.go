package predictions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/SeasonOutlook/internal/config"
	platformhttp "github.com/Alias1177/SeasonOutlook/internal/platform/http"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.Config{
		APIURL:         srv.URL + "/api",
		RequestTimeout: 2,
		RequestsPerSec: 100,
	})
}

func TestCurrentPrediction(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/predictions/current", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prediction":{"playoff_probability":0.42,"division_probability":0.28,
			"conference_probability":0.12,"superbowl_probability":0.06,"confidence_score":0.73,
			"created_at":"2026-10-18T15:04:00Z"}}`))
	})

	got, err := client.CurrentPrediction(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 0.42, got.PlayoffProbability, 1e-9)
	assert.InDelta(t, 0.73, got.ConfidenceScore, 1e-9)
	assert.Equal(t, time.Date(2026, 10, 18, 15, 4, 0, 0, time.UTC), got.CreatedAt.UTC())
}

func TestGeneratePrediction_UsesPost(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/predictions/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"prediction":{"playoff_probability":0.5}}`))
	})

	got, err := client.GeneratePrediction(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got.PlayoffProbability, 1e-9)
}

func TestTeamSeason(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/teams/7/current", r.URL.Path)
		w.Write([]byte(`{"season":{"wins":3,"losses":3,"ties":0,"win_percentage":0.5,"offensive_rating":78.5}}`))
	})

	got, err := client.TeamSeason(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, got.Season)
	assert.Equal(t, 3, got.Season.Wins)
	require.NotNil(t, got.Season.WinPercentage)
	assert.InDelta(t, 0.5, *got.Season.WinPercentage, 1e-9)
	assert.Nil(t, got.Season.DefensiveRating)
}

func TestTeamSeason_MissingSeason(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"team":{"id":1}}`))
	})

	got, err := client.TeamSeason(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, got.Season)
}

func TestHistory(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/predictions/history", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"predictions":[{"playoff_probability":0.1},{"playoff_probability":0.2},{"playoff_probability":0.3}]}`))
	})

	got, err := client.History(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.1, got[0].PlayoffProbability, 1e-9)
	assert.InDelta(t, 0.2, got[1].PlayoffProbability, 1e-9)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantDecode  bool
		wantRequest bool
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantRequest: true,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantRequest: true,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"prediction":`))
			},
			wantDecode: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, tt.handler)
			_, err := client.CurrentPrediction(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to fetch prediction")
			assert.Equal(t, tt.wantDecode, IsDecodeError(err))
			assert.Equal(t, tt.wantRequest, IsNetworkOrServerError(err))
		})
	}
}

func TestErrors_StatusCodeExposed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.History(context.Background(), 10)
	require.Error(t, err)

	var statusErr *platformhttp.HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}
