package predictions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/SeasonOutlook/internal/config"
	platformhttp "github.com/Alias1177/SeasonOutlook/internal/platform/http"
	"github.com/Alias1177/SeasonOutlook/models"
)

// Client talks to the predictions REST API.
type Client struct {
	http    *platformhttp.Client
	baseURL string
	logger  zerolog.Logger
}

var _ models.PredictionSource = (*Client)(nil)

// NewClient creates a new API client with rate limiting
func NewClient(cfg *config.Config) *Client {
	return &Client{
		http: platformhttp.NewClient(platformhttp.ClientOptions{
			Timeout:        cfg.RequestTimeoutDuration(),
			RequestsPerSec: cfg.RequestsPerSec,
			MaxRetries:     cfg.MaxRetries,
		}),
		baseURL: cfg.APIURL,
		logger:  log.With().Str("component", "predictions_client").Logger(),
	}
}

// CurrentPrediction fetches GET /predictions/current.
func (c *Client) CurrentPrediction(ctx context.Context) (*models.Prediction, error) {
	var data models.PredictionResponse
	if err := c.do(ctx, http.MethodGet, "/predictions/current", &data); err != nil {
		return nil, eris.Wrap(err, "failed to fetch prediction")
	}
	return data.Prediction, nil
}

// GeneratePrediction asks the API to create a new prediction via POST /predictions/generate.
func (c *Client) GeneratePrediction(ctx context.Context) (*models.Prediction, error) {
	var data models.PredictionResponse
	if err := c.do(ctx, http.MethodPost, "/predictions/generate", &data); err != nil {
		return nil, eris.Wrap(err, "failed to generate prediction")
	}
	return data.Prediction, nil
}

// TeamSeason fetches GET /teams/{id}/current. The whole payload is returned so
// callers can tell a missing "season" field from an empty one.
func (c *Client) TeamSeason(ctx context.Context, teamID int) (*models.TeamSeasonResponse, error) {
	var data models.TeamSeasonResponse
	path := "/teams/" + strconv.Itoa(teamID) + "/current"
	if err := c.do(ctx, http.MethodGet, path, &data); err != nil {
		return nil, eris.Wrap(err, "failed to fetch stats")
	}
	return &data, nil
}

// History fetches GET /predictions/history?limit=N, newest first.
func (c *Client) History(ctx context.Context, limit int) ([]models.Prediction, error) {
	var data models.HistoryResponse
	path := "/predictions/history?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, &data); err != nil {
		return nil, eris.Wrap(err, "failed to fetch history")
	}
	// The server owns ordering; only the cap is enforced here.
	if limit > 0 && len(data.Predictions) > limit {
		data.Predictions = data.Predictions[:limit]
	}
	return data.Predictions, nil
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	endpoint := c.baseURL + path

	c.logger.Debug().Str("method", method).Str("url", endpoint).Msg("Calling predictions API")

	// Create a new request with context
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return eris.Wrap(err, "creating request")
	}
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.DoRequest(ctx, req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("Predictions API request failed")
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &platformhttp.NetworkError{Method: method, URL: endpoint, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return &DecodeError{URL: endpoint, Body: string(body), Err: err}
	}

	return nil
}
