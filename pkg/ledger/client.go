package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/praxis-labs/intentkit/pkg/contracts"
)

const rpcMethod = "ledger_submitTransaction"

// Client is the production Caller: JSON-RPC over HTTP with client-side rate
// limiting and tracing. A ledger-side refusal (arity or type mismatch,
// missing capability, unresolved outcome, double execution) surfaces as
// contracts.ExternalRejection and is never retried here.
type Client struct {
	endpoint string
	http     *http.Client
	limiter  *rate.Limiter
	tracer   trace.Tracer
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithRateLimit caps outbound submissions per second.
func WithRateLimit(perSecond float64, burst int) ClientOption {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// NewClient creates a ledger client for the given RPC endpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(10), 20),
		tracer:   otel.Tracer("intentkit/ledger"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result *TxResult `json:"result,omitempty"`
	Error  *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Submit sends the transaction and returns the ledger's result. Transport
// failures are returned as-is; committed-but-failed transactions and RPC
// errors are wrapped as ExternalRejection.
func (c *Client) Submit(ctx context.Context, tx *Transaction) (*TxResult, error) {
	ctx, span := c.tracer.Start(ctx, "ledger.submit",
		trace.WithAttributes(
			attribute.Int("tx.calls", tx.Len()),
			attribute.String("tx.sender", tx.Sender),
		))
	defer span.End()

	for _, call := range tx.Calls() {
		if err := ValidateCall(call); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  rpcMethod,
		Params:  []any{tx},
	})
	if err != nil {
		return nil, fmt.Errorf("encode transaction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("submit transaction: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, resp.Status)
		return nil, fmt.Errorf("submit transaction: http %d", resp.StatusCode)
	}

	var parsed rpcResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		span.SetStatus(codes.Error, parsed.Error.Message)
		return nil, &contracts.ExternalRejection{Err: parsed.Error}
	}
	if parsed.Result == nil {
		return nil, fmt.Errorf("decode response: missing result")
	}
	if !parsed.Result.Succeeded() {
		span.SetStatus(codes.Error, parsed.Result.Error)
		return nil, &contracts.ExternalRejection{Err: fmt.Errorf("%s", parsed.Result.Error)}
	}
	span.SetAttributes(attribute.String("tx.digest", parsed.Result.Digest))
	return parsed.Result, nil
}
