package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"games-in-common/core/failure"
	"games-in-common/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const userAgent = "games-in-common/1.0"

// maxBodySize caps how much of a response is read.
const maxBodySize = 16 << 20

// statusError is returned for unexpected HTTP status codes.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.code)
}

// Client talks to the Steam Web API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
	metrics    metrics.Recorder
	apiKey     string
	baseURL    string
	storeURL   string
}

// NewClient creates a Client from cfg. A nil recorder disables metrics.
func NewClient(cfg Config, logger *zap.Logger, rec metrics.Recorder) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	if rec == nil {
		rec = metrics.Nop{}
	}

	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		logger:     logger,
		metrics:    rec,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		storeURL:   strings.TrimSuffix(cfg.StoreURL, "/"),
	}
}

// ResolveVanityURL returns the Steam ID for a vanity name, or ErrNoMatch.
func (c *Client) ResolveVanityURL(ctx context.Context, vanity string) (PlayerID, error) {
	const op = "ResolveVanityURL"
	var body vanityResponse
	start := time.Now()
	err := c.getJSON(ctx, "/ISteamUser/ResolveVanityURL/v0001/", url.Values{"vanityurl": {vanity}}, &body)
	if err != nil {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeError, time.Since(start))
		return "", failure.Remote(op, vanity, err)
	}

	if body.Response.Success != 1 || !IsCanonical(body.Response.SteamID) {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeEmpty, time.Since(start))
		c.logger.Debug("Vanity name did not resolve",
			zap.String("vanity", vanity),
			zap.Int("success", body.Response.Success),
			zap.String("message", body.Response.Message))
		return "", ErrNoMatch
	}

	c.metrics.RecordRemoteCall(op, metrics.OutcomeOK, time.Since(start))
	return PlayerID(body.Response.SteamID), nil
}

// GetOwnedGames returns the app ids owned by id. An empty slice with a nil error means the
// library is private or empty.
func (c *Client) GetOwnedGames(ctx context.Context, id PlayerID) ([]AppID, error) {
	const op = "GetOwnedGames"
	var body ownedGamesResponse
	start := time.Now()
	params := url.Values{
		"steamid":                   {id.String()},
		"include_played_free_games": {"1"},
	}
	if err := c.getJSON(ctx, "/IPlayerService/GetOwnedGames/v0001/", params, &body); err != nil {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeError, time.Since(start))
		return nil, failure.Remote(op, id.String(), err)
	}

	games := make([]AppID, 0, len(body.Response.Games))
	for _, g := range body.Response.Games {
		games = append(games, g.AppID)
	}

	if len(games) == 0 {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeEmpty, time.Since(start))
		c.logger.Info("Got zero games for player; is the profile public?", zap.String("steam_id", id.String()))
	} else {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeOK, time.Since(start))
	}
	return games, nil
}

// GetFriendList returns the friends of id. Steam answers 401 for private friend lists,
// which is reported as an empty slice.
func (c *Client) GetFriendList(ctx context.Context, id PlayerID) ([]PlayerID, error) {
	const op = "GetFriendList"
	var body friendListResponse
	start := time.Now()
	params := url.Values{
		"steamid":      {id.String()},
		"relationship": {"friend"},
	}
	if err := c.getJSON(ctx, "/ISteamUser/GetFriendList/v0001/", params, &body); err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusUnauthorized {
			c.metrics.RecordRemoteCall(op, metrics.OutcomeEmpty, time.Since(start))
			return []PlayerID{}, nil
		}
		c.metrics.RecordRemoteCall(op, metrics.OutcomeError, time.Since(start))
		return nil, failure.Remote(op, id.String(), err)
	}

	friends := make([]PlayerID, 0, len(body.FriendsList.Friends))
	for _, f := range body.FriendsList.Friends {
		if IsCanonical(f.SteamID.String()) {
			friends = append(friends, f.SteamID)
		}
	}

	outcome := metrics.OutcomeOK
	if len(friends) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	c.metrics.RecordRemoteCall(op, outcome, time.Since(start))
	return friends, nil
}

// GetPlayerSummaries returns nicknames for at most MaxSummariesPerRequest players.
// Players Steam does not know about are absent from the map.
func (c *Client) GetPlayerSummaries(ctx context.Context, ids []PlayerID) (map[PlayerID]string, error) {
	const op = "GetPlayerSummaries"
	if len(ids) == 0 {
		return map[PlayerID]string{}, nil
	}
	if len(ids) > MaxSummariesPerRequest {
		return nil, fmt.Errorf("too many player ids: %d > %d", len(ids), MaxSummariesPerRequest)
	}

	joined := make([]string, len(ids))
	for i, id := range ids {
		joined[i] = id.String()
	}

	var body playerSummariesResponse
	start := time.Now()
	err := c.getJSON(ctx, "/ISteamUser/GetPlayerSummaries/v0002/", url.Values{"steamids": {strings.Join(joined, ",")}}, &body)
	if err != nil {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeError, time.Since(start))
		return nil, failure.Remote(op, "", err)
	}

	nicks := make(map[PlayerID]string, len(body.Response.Players))
	for _, p := range body.Response.Players {
		if p.SteamID == "" || p.PersonaName == "" {
			continue
		}
		nicks[p.SteamID] = p.PersonaName
	}

	c.metrics.RecordRemoteCall(op, metrics.OutcomeOK, time.Since(start))
	return nicks, nil
}

// GetAppList returns every app Steam knows about.
func (c *Client) GetAppList(ctx context.Context) ([]App, error) {
	const op = "GetAppList"
	var body AppListDocument
	start := time.Now()
	if err := c.getJSON(ctx, "/ISteamApps/GetAppList/v2/", nil, &body); err != nil {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeError, time.Since(start))
		return nil, failure.Remote(op, "", err)
	}
	c.metrics.RecordRemoteCall(op, metrics.OutcomeOK, time.Since(start))
	return body.AppList.Apps, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dst any) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	q.Set("format", "json")

	resp, err := c.do(ctx, c.baseURL+path+"?"+q.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Steam API returned an error status",
			zap.String("path", path),
			zap.Int("http_status", resp.StatusCode))
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(dst); err != nil {
		c.logger.Warn("Failed to decode Steam API response",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, rawURL string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Steam request failed", zap.Error(err))
		return nil, err
	}
	return resp, nil
}
