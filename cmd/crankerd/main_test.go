package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-labs/intentkit/pkg/contracts"
	"github.com/praxis-labs/intentkit/pkg/indexer"
	"github.com/praxis-labs/intentkit/pkg/ledger"
	"github.com/praxis-labs/intentkit/pkg/workflow"
)

type stubSource struct {
	intents []indexer.ResolvedIntent
	err     error
	since   []time.Time
}

func (s *stubSource) ResolvedIntents(_ context.Context, since time.Time) ([]indexer.ResolvedIntent, error) {
	s.since = append(s.since, since)
	if s.err != nil {
		return nil, s.err
	}
	var out []indexer.ResolvedIntent
	for _, in := range s.intents {
		if !in.ResolvedAt.Before(since) {
			out = append(out, in)
		}
	}
	return out, nil
}

type stubExecutor struct {
	fail  map[string]error
	calls []string
}

func (s *stubExecutor) ExecuteObserved(_ context.Context, req workflow.ExecuteRequest, _ contracts.OutcomeKey) (*ledger.TxResult, error) {
	s.calls = append(s.calls, req.IntentID)
	if err := s.fail[req.IntentID]; err != nil {
		return nil, err
	}
	return &ledger.TxResult{Digest: "0xd", Status: "success"}, nil
}

func newTestCranker(src intentSource, exec intentExecutor) *cranker {
	return &cranker{
		svc: exec,
		idx: src,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSweepAdvancesCursorWhenAllExecute(t *testing.T) {
	now := time.Now()
	src := &stubSource{intents: []indexer.ResolvedIntent{
		{IntentID: "raise-1", ResolvedAt: now.Add(-2 * time.Minute), Outcome: contracts.OutcomeSuccess},
		{IntentID: "raise-2", ResolvedAt: now.Add(-1 * time.Minute), Outcome: contracts.OutcomeFailure},
	}}
	exec := &stubExecutor{}
	c := newTestCranker(src, exec)

	next, err := c.sweep(context.Background(), now.Add(-5*time.Minute), now)
	require.NoError(t, err)
	assert.Equal(t, now, next)
	assert.Equal(t, []string{"raise-1", "raise-2"}, exec.calls)
}

func TestSweepHoldsCursorAtUnexecutedIntent(t *testing.T) {
	now := time.Now()
	gated := indexer.ResolvedIntent{
		IntentID:        "raise-gated",
		ResolvedAt:      now.Add(-time.Second),
		ExecutableAfter: now.Add(5 * time.Minute),
		Outcome:         contracts.OutcomeSuccess,
	}
	src := &stubSource{intents: []indexer.ResolvedIntent{
		{IntentID: "raise-ok", ResolvedAt: now.Add(-time.Minute), Outcome: contracts.OutcomeSuccess},
		gated,
	}}
	exec := &stubExecutor{fail: map[string]error{
		"raise-gated": errors.New("begin raise-gated: intent not yet executable"),
	}}
	c := newTestCranker(src, exec)

	next, err := c.sweep(context.Background(), now.Add(-5*time.Minute), now)
	require.NoError(t, err)
	assert.Equal(t, gated.ResolvedAt, next, "cursor must not pass an intent that did not execute")

	// Next poll from the returned cursor still sees the gated intent, and
	// once its gate opens it executes and the cursor moves on.
	exec.fail = nil
	later := now.Add(6 * time.Minute)
	next, err = c.sweep(context.Background(), next, later)
	require.NoError(t, err)
	assert.Equal(t, later, next)
	assert.Equal(t, []string{"raise-ok", "raise-gated", "raise-gated"}, exec.calls)
}

func TestSweepSkipsAlreadyExecuted(t *testing.T) {
	now := time.Now()
	src := &stubSource{intents: []indexer.ResolvedIntent{
		{IntentID: "raise-done", ResolvedAt: now.Add(-time.Minute), Executed: true},
	}}
	exec := &stubExecutor{}
	c := newTestCranker(src, exec)

	next, err := c.sweep(context.Background(), now.Add(-5*time.Minute), now)
	require.NoError(t, err)
	assert.Equal(t, now, next)
	assert.Empty(t, exec.calls)
}

func TestSweepKeepsCursorOnSourceError(t *testing.T) {
	boom := errors.New("indexer down")
	src := &stubSource{err: boom}
	c := newTestCranker(src, &stubExecutor{})

	since := time.Now().Add(-time.Minute)
	next, err := c.sweep(context.Background(), since, time.Now())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, since, next)
}
