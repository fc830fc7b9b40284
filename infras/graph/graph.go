// Package graph creates online meetings through Microsoft Graph using the
// client-credentials flow. Creation walks an ordered list of strategies and
// retries each one on throttling and server errors.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"meetslot/config"
	"meetslot/infras/meeting"
	"meetslot/infras/otel"
	"meetslot/shared"
	"meetslot/shared/cache"
	"meetslot/shared/constant"
)

const (
	tokenScope         = "https://graph.microsoft.com/.default"
	tokenGrantType     = "client_credentials"
	tokenExpirySkew    = 60
	requestTimeout     = 15 * time.Second
	maxResponseBytes   = 1 << 20
	errorBodyPreview   = 512
	otelAttrStrategy   = "graph.strategy"
	otelAttrOrganizer  = "graph.organizer"
	authorizationValue = "Bearer "
)

// StatusError is a non-2xx answer from Graph or the token endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("graph responded %d: %s", e.StatusCode, e.Body)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type client struct {
	cfg        *config.Config
	http       *http.Client
	cache      cache.RedisCache
	otel       otel.Otel
	strategies []strategy
	backOff    func() backoff.BackOff
}

func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) meeting.Provider {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   requestTimeout,
	}

	log.Info().Str("baseURL", cfg.External.Graph.BaseURL).Msg("Graph meeting provider initialized")

	return newClient(cfg, cache, httpClient, otel)
}

func newClient(cfg *config.Config, cache cache.RedisCache, httpClient *http.Client, otel otel.Otel) *client {
	return &client{
		cfg:        cfg,
		http:       httpClient,
		cache:      cache,
		otel:       otel,
		strategies: defaultStrategies(),
		backOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// Create tries each strategy in order and returns the first meeting created.
func (c *client) Create(ctx context.Context, req meeting.Request) (res meeting.Meeting, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelGraphScopeName, constant.OtelGraphScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrOrganizer, req.Organizer)

	token, err := c.token(ctx)
	if err != nil {
		return res, err
	}

	failures := make([]error, 0, len(c.strategies))

	for _, st := range c.strategies {
		scope.SetAttribute(otelAttrStrategy, st.name)

		created, tryErr := c.try(ctx, token, st, req)
		if tryErr == nil {
			log.Info().Str("strategy", st.name).Str("meetingId", created.ID).Msg("meeting created")

			return created, nil
		}

		if ctx.Err() != nil {
			return res, fmt.Errorf("meeting creation aborted: %w", ctx.Err())
		}

		log.Warn().Err(tryErr).Str("strategy", st.name).Msg("meeting strategy failed, trying next")
		failures = append(failures, fmt.Errorf("%s: %w", st.name, tryErr))
	}

	return res, fmt.Errorf("%w: %w", meeting.ErrNoProvider, errors.Join(failures...))
}

func (c *client) try(ctx context.Context, token string, st strategy, req meeting.Request) (meeting.Meeting, error) {
	payload, err := json.Marshal(st.body(req))
	if err != nil {
		return meeting.Meeting{}, fmt.Errorf("failed to encode %s payload: %w", st.name, err)
	}

	endpoint := strings.TrimRight(c.cfg.External.Graph.BaseURL, "/") + st.path(url.PathEscape(req.Organizer))

	body, err := c.retry(ctx, func() ([]byte, error) {
		return c.send(ctx, endpoint, token, constant.ContentTypeJSON, payload)
	})
	if err != nil {
		return meeting.Meeting{}, err
	}

	created, err := st.decode(body)
	if err != nil {
		return meeting.Meeting{}, err
	}

	created.Provider = st.name
	created.Start = req.Start
	created.End = req.End

	return created, nil
}

func (c *client) token(ctx context.Context) (string, error) {
	graphCfg := c.cfg.External.Graph
	key := shared.BuildCacheKey(constant.CacheKeyGraphToken, graphCfg.TenantID)

	var cached string
	if err := c.cache.Get(ctx, key, &cached); err == nil && cached != "" {
		return cached, nil
	}

	form := url.Values{}
	form.Set("grant_type", tokenGrantType)
	form.Set("client_id", graphCfg.ClientID)
	form.Set("client_secret", graphCfg.ClientSecret)
	form.Set("scope", tokenScope)

	endpoint := fmt.Sprintf("%s/%s/oauth2/v2.0/token", strings.TrimRight(graphCfg.AuthorityURL, "/"), url.PathEscape(graphCfg.TenantID))
	payload := []byte(form.Encode())

	body, err := c.retry(ctx, func() ([]byte, error) {
		return c.send(ctx, endpoint, "", constant.ContentTypeFormURLEncoded, payload)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire graph token")

		return "", fmt.Errorf("failed to acquire graph token: %w", err)
	}

	var tok tokenResponse
	if err = json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		return "", fmt.Errorf("failed to decode graph token: %w", errors.Join(err, errors.New("empty access token")))
	}

	if ttl := tok.ExpiresIn - tokenExpirySkew; ttl > 0 {
		if err = c.cache.Save(ctx, key, tok.AccessToken, ttl); err != nil {
			log.Warn().Err(err).Msg("failed to cache graph token")
		}
	}

	return tok.AccessToken, nil
}

func (c *client) retry(ctx context.Context, op backoff.Operation[[]byte]) ([]byte, error) {
	tries := c.cfg.External.Graph.MaxRetry
	if tries == 0 {
		tries = 1
	}

	return backoff.Retry(ctx, op, backoff.WithBackOff(c.backOff()), backoff.WithMaxTries(tries)) //nolint:wrapcheck
}

// send performs one POST. Throttling, 5xx and transport errors are retryable;
// any other non-2xx answer is permanent.
func (c *client) send(ctx context.Context, endpoint, token, contentType string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build graph request: %w", err))
	}

	req.Header.Set(constant.RequestHeaderContentType, contentType)

	if token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, authorizationValue+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graph request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read graph response: %w", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode, Body: preview(body)}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		if seconds, convErr := strconv.Atoi(resp.Header.Get(constant.RequestHeaderRetryAfter)); convErr == nil && seconds > 0 {
			return nil, backoff.RetryAfter(seconds)
		}

		return nil, statusErr
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, statusErr
	default:
		return nil, backoff.Permanent(statusErr)
	}
}

func preview(body []byte) string {
	if len(body) > errorBodyPreview {
		return string(body[:errorBodyPreview])
	}

	return string(body)
}
