package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/internal/config"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

const defaultRetryBaseDelay = 100 * time.Millisecond

type httpServerAdapter struct {
	client *utils.HTTPClient

	maxRetries     uint64
	retryBaseDelay time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	baseDelay := cfg.RetryBaseDelay
	if baseDelay <= 0 {
		baseDelay = defaultRetryBaseDelay
	}

	return &httpServerAdapter{
		client:         client,
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: baseDelay,
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/register and keeps the bearer token of the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(user).SetResult(&created).Post("/api/auth/register")
	})
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return created, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and keeps the bearer token of the Authorization response
// header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var found models.User

	resp, err := h.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(user).SetResult(&found).Post("/api/auth/login")
	})
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return found, nil
}

// GetAppVersion implements [ServerAdapter]. GET /api/version answers with
// plain text.
func (h *httpServerAdapter) GetAppVersion(ctx context.Context) (string, error) {
	resp, err := h.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Accept", "text/plain").Get("/api/version")
	})
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) GetPreferences(ctx context.Context) (models.UserPreferences, error) {
	return h.preferences(ctx, "get preferences", func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/api/preferences")
	})
}

func (h *httpServerAdapter) UpdatePreferences(ctx context.Context, patch models.PreferencesPatch) (models.UserPreferences, error) {
	return h.preferences(ctx, "update preferences", func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(patch).Patch("/api/preferences")
	})
}

func (h *httpServerAdapter) ResetPreferences(ctx context.Context) (models.UserPreferences, error) {
	return h.preferences(ctx, "reset preferences", func(r *resty.Request) (*resty.Response, error) {
		return r.Delete("/api/preferences")
	})
}

// preferences sends a preferences request and unwraps the
// [models.PreferencesResult] envelope.
func (h *httpServerAdapter) preferences(ctx context.Context, op string, send func(*resty.Request) (*resty.Response, error)) (models.UserPreferences, error) {
	var result models.PreferencesResult

	_, err := h.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		result = models.PreferencesResult{}
		return send(r.SetResult(&result))
	})
	if err != nil {
		return models.UserPreferences{}, fmt.Errorf("%s request: %w", op, err)
	}

	if !result.Success || result.Preferences == nil {
		return models.UserPreferences{}, fmt.Errorf("%s: %w", op, rejected(result.Error))
	}
	return *result.Preferences, nil
}

// FetchLogs implements [ServerAdapter]. A 200 answer carrying an error
// marker, such as a missing session, is returned as [ErrRejected].
func (h *httpServerAdapter) FetchLogs(ctx context.Context, query models.LogsQuery) (models.LogsPage, error) {
	var result models.LogsResult

	_, err := h.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		result = models.LogsResult{}
		r.SetResult(&result).SetQueryParam("search", query.SearchQuery)
		if query.Page > 0 {
			r.SetQueryParam("page", strconv.Itoa(query.Page))
		}
		if query.PageSize > 0 {
			r.SetQueryParam("pageSize", strconv.Itoa(query.PageSize))
		}
		if query.SortBy != "" {
			r.SetQueryParam("sortBy", string(query.SortBy))
		}
		return r.Get("/api/logs")
	})
	if err != nil {
		return models.LogsPage{}, fmt.Errorf("fetch logs request: %w", err)
	}

	if result.Error != "" {
		return models.LogsPage{}, fmt.Errorf("fetch logs: %w", rejected(result.Error))
	}
	return result.LogsPage, nil
}

// do sends the request built by send and retries transport failures and 5xx
// answers with exponential backoff. Other non-2xx answers are returned at once.
func (h *httpServerAdapter) do(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	backoff := retry.WithMaxRetries(h.maxRetries, retry.NewExponential(h.retryBaseDelay))

	attempt := 0
	return retry.DoValue(ctx, backoff, func(ctx context.Context) (*resty.Response, error) {
		attempt++
		resp, err := send(h.authedRequest(ctx))
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil, err
			}
			h.logger.Warn().Err(err).Int("attempt", attempt).Msg("transport failure, retrying")
			return nil, retry.RetryableError(err)
		}

		if err = mapHTTPError(resp); err != nil {
			if resp.StatusCode() >= http.StatusInternalServerError {
				h.logger.Warn().Err(err).Int("attempt", attempt).Msg("server failure, retrying")
				return nil, retry.RetryableError(err)
			}
			return nil, err
		}
		return resp, nil
	})
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
