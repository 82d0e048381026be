// Package indexer reads staged and resolved intents back from the indexing
// service. Records are schema-validated before they reach the converter, so
// a malformed backend response fails at the boundary instead of surfacing as
// a confusing conversion error.
package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// ResolvedIntent is one intent whose gating outcome has resolved, as
// reported by the indexer.
type ResolvedIntent struct {
	IntentID        string                  `json:"intentId"`
	AccountID       string                  `json:"accountId"`
	Context         contracts.IntentContext `json:"context"`
	Outcome         contracts.OutcomeKey    `json:"outcome"`
	Executed        bool                    `json:"executed"`
	ResolvedAt      time.Time               `json:"resolvedAt"`
	ExecutableAfter time.Time               `json:"executableAfter"`
}

// Client fetches observed actions and resolved intents over HTTP.
type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
	tracer  trace.Tracer
	schema  *jsonschema.Schema
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRateLimit caps outbound requests per second.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// NewClient creates an indexer client for the given base URL.
func NewClient(base string, opts ...Option) (*Client, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("action.json", strings.NewReader(actionSchema)); err != nil {
		return nil, fmt.Errorf("indexer schema: %w", err)
	}
	schema, err := compiler.Compile("action.json")
	if err != nil {
		return nil, fmt.Errorf("indexer schema: %w", err)
	}
	c := &Client{
		base:    strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(20), 40),
		tracer:  otel.Tracer("intentkit/indexer"),
		schema:  schema,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// IntentActions returns the observed actions staged for one outcome of an
// intent, ordered by index.
func (c *Client) IntentActions(ctx context.Context, intentID string, outcome contracts.OutcomeKey) ([]contracts.RawObservedAction, error) {
	ctx, span := c.tracer.Start(ctx, "indexer.intent_actions",
		trace.WithAttributes(attribute.String("intent.id", intentID)))
	defer span.End()

	var payload struct {
		Actions []json.RawMessage `json:"actions"`
	}
	path := fmt.Sprintf("/intents/%s/outcomes/%s/actions", url.PathEscape(intentID), url.PathEscape(string(outcome)))
	if err := c.get(ctx, path, &payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	actions := make([]contracts.RawObservedAction, 0, len(payload.Actions))
	for i, raw := range payload.Actions {
		if err := c.validate(raw); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("action %d: invalid indexer record: %w", i, err)
		}
		var a contracts.RawObservedAction
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	span.SetAttributes(attribute.Int("actions.count", len(actions)))
	return actions, nil
}

// ResolvedIntents returns intents whose outcome resolved at or after since.
// The filter is inclusive: a caller that clamps its cursor to an intent's
// resolve time sees that intent again on the next poll. Used by automated
// executors.
func (c *Client) ResolvedIntents(ctx context.Context, since time.Time) ([]ResolvedIntent, error) {
	ctx, span := c.tracer.Start(ctx, "indexer.resolved_intents")
	defer span.End()

	var payload struct {
		Intents []ResolvedIntent `json:"intents"`
	}
	path := "/intents/resolved?since=" + url.QueryEscape(since.UTC().Format(time.RFC3339))
	if err := c.get(ctx, path, &payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("intents.count", len(payload.Intents)))
	return payload.Intents, nil
}

func (c *Client) validate(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return c.schema.Validate(v)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("indexer request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("read indexer response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("indexer request %s: http %d", path, resp.StatusCode)
	}
	return json.Unmarshal(body, out)
}
