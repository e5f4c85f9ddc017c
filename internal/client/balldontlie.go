package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// APIError describes a non-2xx response from the BallDontLie API
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("balldontlie: HTTP %d for %s: %s", e.StatusCode, e.Path, e.Body)
}

// Retryable reports whether the status indicates a transient provider condition
func (e *APIError) Retryable() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Options configures optional client behavior
type Options struct {
	Timeout     time.Duration
	MinInterval time.Duration
	MaxRetries  int
	RetryDelay  time.Duration
	PerPage     int
}

// Client is the BallDontLie NFL API client
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *RateLimiter
	maxRetries int
	retryDelay time.Duration
	perPage    int
}

// NewClient creates a new BallDontLie NFL API client with connection reuse
func NewClient(baseURL, apiKey string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MinInterval <= 0 {
		opts.MinInterval = 110 * time.Millisecond
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 500 * time.Millisecond
	}
	if opts.PerPage <= 0 {
		opts.PerPage = 100
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    NewRateLimiter(opts.MinInterval),
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		perPage:    opts.PerPage,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// get performs a GET request with rate limiting and retry logic.
// 429 responses honor the Retry-After header; transport errors back off and
// retry up to maxRetries; any other non-2xx status fails immediately.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Authorization", c.apiKey)
		req.Header.Set("Accept", "application/json")
		if len(params) > 0 {
			req.URL.RawQuery = params.Encode()
		}

		log.Debug().
			Str("path", path).
			Int("attempt", attempt+1).
			Msg("Making API request")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("API request failed: %w", err)
			if attempt < c.maxRetries {
				if serr := sleepContext(ctx, c.retryDelay); serr != nil {
					return nil, serr
				}
				continue
			}
			return nil, lastErr
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)
			if attempt < c.maxRetries {
				continue
			}
			return nil, lastErr
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			wait := retryAfter(resp.Header, c.retryDelay)
			lastErr = &APIError{StatusCode: resp.StatusCode, Path: path, Body: string(body)}
			log.Warn().
				Str("path", path).
				Dur("wait", wait).
				Int("attempt", attempt+1).
				Msg("Rate limited by provider, backing off")
			if attempt < c.maxRetries {
				if serr := sleepContext(ctx, wait); serr != nil {
					return nil, serr
				}
				continue
			}
			return nil, lastErr
		}

		return nil, &APIError{StatusCode: resp.StatusCode, Path: path, Body: string(body)}
	}

	return nil, lastErr
}

// retryAfter parses the Retry-After header, falling back to the given delay
func retryAfter(h http.Header, fallback time.Duration) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return fallback
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs < 0 {
		return fallback
	}
	return time.Duration(secs * float64(time.Second))
}

// envelope is the standard paginated response shape
type envelope struct {
	Data []json.RawMessage `json:"data"`
	Meta *pageMeta         `json:"meta"`
}

type pageMeta struct {
	NextCursor json.RawMessage `json:"next_cursor"`
}

// nextCursor normalizes the cursor token, which the provider returns as
// either a number or a string. Empty means no further pages.
func (m *pageMeta) nextCursor() string {
	if m == nil || len(m.NextCursor) == 0 {
		return ""
	}
	tok := bytes.Trim(m.NextCursor, `"`)
	if len(tok) == 0 || string(tok) == "null" {
		return ""
	}
	return string(tok)
}

// Paginate lazily walks a cursor-paginated endpoint, yielding one raw record
// at a time. Iteration stops on the first error or when the caller breaks;
// there is no resumption, a restarted iteration begins at the first page.
func (c *Client) Paginate(ctx context.Context, path string, params url.Values) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		cursor := ""
		for {
			q := url.Values{}
			for k, vs := range params {
				q[k] = vs
			}
			if q.Get("per_page") == "" {
				q.Set("per_page", strconv.Itoa(c.perPage))
			}
			if cursor != "" {
				q.Set("cursor", cursor)
			}

			body, err := c.get(ctx, path, q)
			if err != nil {
				yield(nil, err)
				return
			}

			var page envelope
			if err := json.Unmarshal(body, &page); err != nil {
				yield(nil, fmt.Errorf("failed to decode %s page: %w", path, err))
				return
			}

			for _, rec := range page.Data {
				if !yield(rec, nil) {
					return
				}
			}

			cursor = page.Meta.nextCursor()
			if cursor == "" {
				return
			}
		}
	}
}

// getData performs a one-shot request against a non-paginated data endpoint
func (c *Client) getData(ctx context.Context, path string, params url.Values) ([]json.RawMessage, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var payload envelope
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return payload.Data, nil
}

func intValues(key string, vals []int) url.Values {
	q := url.Values{}
	for _, v := range vals {
		q.Add(key, strconv.Itoa(v))
	}
	return q
}

// Teams fetches all teams in one request
func (c *Client) Teams(ctx context.Context) ([]json.RawMessage, error) {
	data, err := c.getData(ctx, "/teams", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}
	return data, nil
}

// Players iterates every player in the league, active or not
func (c *Client) Players(ctx context.Context) iter.Seq2[json.RawMessage, error] {
	return c.Paginate(ctx, "/players", nil)
}

// ActivePlayers iterates players currently on a roster
func (c *Client) ActivePlayers(ctx context.Context) iter.Seq2[json.RawMessage, error] {
	return c.Paginate(ctx, "/players/active", nil)
}

// Games iterates the schedule for the given seasons, optionally limited to weeks
func (c *Client) Games(ctx context.Context, seasons, weeks []int) iter.Seq2[json.RawMessage, error] {
	params := intValues("seasons[]", seasons)
	for _, w := range weeks {
		params.Add("weeks[]", strconv.Itoa(w))
	}
	return c.Paginate(ctx, "/games", params)
}

// PlayerSeasonStats iterates aggregated player stats for a season
func (c *Client) PlayerSeasonStats(ctx context.Context, season int) iter.Seq2[json.RawMessage, error] {
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))
	return c.Paginate(ctx, "/season_stats", params)
}

// PlayerGameStats iterates per-game player box score lines
func (c *Client) PlayerGameStats(ctx context.Context, seasons []int) iter.Seq2[json.RawMessage, error] {
	return c.Paginate(ctx, "/stats", intValues("seasons[]", seasons))
}

// advancedParams builds the query for the advanced stat endpoints. Week 0
// asks for the full-season aggregate.
func advancedParams(season, week int, postseason bool) url.Values {
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))
	params.Set("week", strconv.Itoa(week))
	if postseason {
		params.Set("postseason", "true")
	}
	return params
}

// AdvancedReceiving iterates tracking-derived receiving stats
func (c *Client) AdvancedReceiving(ctx context.Context, season, week int, postseason bool) iter.Seq2[json.RawMessage, error] {
	return c.Paginate(ctx, "/advanced_stats/receiving", advancedParams(season, week, postseason))
}

// AdvancedRushing iterates tracking-derived rushing stats
func (c *Client) AdvancedRushing(ctx context.Context, season, week int, postseason bool) iter.Seq2[json.RawMessage, error] {
	return c.Paginate(ctx, "/advanced_stats/rushing", advancedParams(season, week, postseason))
}

// AdvancedPassing iterates tracking-derived passing stats
func (c *Client) AdvancedPassing(ctx context.Context, season, week int, postseason bool) iter.Seq2[json.RawMessage, error] {
	return c.Paginate(ctx, "/advanced_stats/passing", advancedParams(season, week, postseason))
}

// TeamSeasonStats iterates aggregated team stats. The provider requires an
// explicit team_ids filter on this endpoint.
func (c *Client) TeamSeasonStats(ctx context.Context, season int, teamIDs []int) iter.Seq2[json.RawMessage, error] {
	params := intValues("team_ids[]", teamIDs)
	params.Set("season", strconv.Itoa(season))
	return c.Paginate(ctx, "/team_season_stats", params)
}

// TeamGameStats iterates per-game team box score lines for a season
func (c *Client) TeamGameStats(ctx context.Context, season int) iter.Seq2[json.RawMessage, error] {
	return c.Paginate(ctx, "/team_stats", intValues("seasons[]", []int{season}))
}

// Standings iterates team standings for a season
func (c *Client) Standings(ctx context.Context, season int) iter.Seq2[json.RawMessage, error] {
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))
	return c.Paginate(ctx, "/standings", params)
}

// Injuries iterates current injury reports, optionally filtered by team
func (c *Client) Injuries(ctx context.Context, teamIDs []int) iter.Seq2[json.RawMessage, error] {
	var params url.Values
	if len(teamIDs) > 0 {
		params = intValues("team_ids[]", teamIDs)
	}
	return c.Paginate(ctx, "/player_injuries", params)
}

// TeamRoster fetches a team's roster for a season. This endpoint returns the
// full data array in one response.
func (c *Client) TeamRoster(ctx context.Context, teamID, season int) ([]json.RawMessage, error) {
	params := url.Values{}
	if season > 0 {
		params.Set("season", strconv.Itoa(season))
	}
	data, err := c.getData(ctx, fmt.Sprintf("/teams/%d/roster", teamID), params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster for team %d: %w", teamID, err)
	}
	return data, nil
}

// GameOdds iterates betting odds for the given games
func (c *Client) GameOdds(ctx context.Context, gameIDs []int) iter.Seq2[json.RawMessage, error] {
	return c.Paginate(ctx, "/odds", intValues("game_ids[]", gameIDs))
}

// PlayerProps iterates player prop lines for a game from the given vendors
func (c *Client) PlayerProps(ctx context.Context, gameID int, vendors []string) iter.Seq2[json.RawMessage, error] {
	params := url.Values{}
	params.Set("game_id", strconv.Itoa(gameID))
	for _, v := range vendors {
		params.Add("vendors[]", v)
	}
	return c.Paginate(ctx, "/odds/player_props", params)
}
