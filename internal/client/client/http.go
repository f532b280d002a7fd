package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/wandergenie/internal/client/models"
	"github.com/dmitrijs2005/wandergenie/internal/common"
	"github.com/dmitrijs2005/wandergenie/internal/logging"
)

const (
	PathRegister    = "/auth/register"
	PathLogin       = "/auth/login"
	PathMe          = "/auth/me"
	PathPlan        = "/plan"
	PathItineraries = "/itineraries"
	PathHealth      = "/health"
)

// maxErrorBody bounds how much of an error response is read for its detail.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
	newID   func() string
}

// NewHTTPClient returns a client for the backend at baseURL. A zero timeout
// disables the per-request deadline.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
		newID:   uuid.NewString,
	}
}

// auth selects where the bearer token of a request comes from.
type auth struct {
	none     bool
	explicit string
}

var (
	noAuth   = auth{none: true}
	slotAuth = auth{}
)

func bearer(token string) auth { return auth{explicit: token} }

func (c *HTTPClient) Register(ctx context.Context, data models.Registration) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, PathRegister, data, &u, noAuth); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.Token, error) {
	var tok models.Token
	if err := c.do(ctx, http.MethodPost, PathLogin, creds, &tok, noAuth); err != nil {
		return nil, err
	}
	return &tok, nil
}

func (c *HTTPClient) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, PathMe, nil, &u, bearer(token)); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Plan(ctx context.Context, req models.PlanRequest) (*models.Itinerary, error) {
	var it models.Itinerary
	if err := c.do(ctx, http.MethodPost, PathPlan, req, &it, slotAuth); err != nil {
		return nil, err
	}
	return &it, nil
}

func (c *HTTPClient) Itineraries(ctx context.Context) (*models.ItineraryHistory, error) {
	var h models.ItineraryHistory
	if err := c.do(ctx, http.MethodGet, PathItineraries, nil, &h, slotAuth); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *HTTPClient) Health(ctx context.Context) (*models.Health, error) {
	var h models.Health
	if err := c.do(ctx, http.MethodGet, PathHealth, nil, &h, noAuth); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *HTTPClient) token(ctx context.Context, a auth) string {
	switch {
	case a.none:
		return ""
	case a.explicit != "":
		return a.explicit
	case c.tokens == nil:
		return ""
	}
	tok, err := c.tokens.Get(ctx)
	if err != nil {
		c.log.Warn(ctx, "token slot unreadable, sending request without credentials", "error", err)
		return ""
	}
	return tok
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, a auth) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	reqID := c.newID()
	req.Header.Set(common.RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(ctx, a); tok != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", reqID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return mapError(path, resp.StatusCode, parseDetail(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// mapError translates a non-2xx response into an *APIError carrying the
// matching sentinel.
func mapError(path string, status int, detail string) error {
	e := &APIError{StatusCode: status, Detail: detail}

	switch {
	case status >= 500:
		e.Err = ErrUnavailable
	case status == http.StatusUnauthorized && path == PathLogin:
		e.Err = ErrInvalidCredentials
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		e.Err = ErrUnauthorized
	case status == http.StatusConflict:
		e.Err = ErrConflict
	case status == http.StatusBadRequest && reportsExistingAccount(detail):
		e.Err = ErrConflict
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		e.Err = ErrValidation
	}
	return e
}

func reportsExistingAccount(detail string) bool {
	d := strings.ToLower(detail)
	return strings.Contains(d, "already registered") || strings.Contains(d, "already exists")
}

// parseDetail extracts the "detail" member of an error body. It is either a
// string or a list of validation items with a "msg" each; anything else is
// returned verbatim.
func parseDetail(raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return string(body.Detail)
}
