// Command crankerd polls the indexer for resolved intents and executes
// their outcome batches against the ledger.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/config"
	"github.com/praxis-labs/intentkit/pkg/contracts"
	"github.com/praxis-labs/intentkit/pkg/execution"
	"github.com/praxis-labs/intentkit/pkg/indexer"
	"github.com/praxis-labs/intentkit/pkg/ledger"
	"github.com/praxis-labs/intentkit/pkg/observability"
	"github.com/praxis-labs/intentkit/pkg/workflow"
)

func main() {
	if err := run(); err != nil {
		slog.Error("crankerd exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obs, err := observability.New(ctx, &observability.Config{
		ServiceName:    "intentkit-cranker",
		ServiceVersion: "1.0.0",
		Environment:    "production",
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SampleRate:     1.0,
		BatchTimeout:   5 * time.Second,
		Insecure:       true,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			logger.Error("observability shutdown failed", "error", err)
		}
	}()

	addrs := catalog.DefaultAddresses()
	if cfg.ActionsPkg != "" {
		addrs.Actions = cfg.ActionsPkg
	}
	if cfg.ProtocolPkg != "" {
		addrs.Protocol = cfg.ProtocolPkg
	}
	cat, err := catalog.New(addrs)
	if err != nil {
		return err
	}

	caller := ledger.NewClient(cfg.LedgerURL)
	idx, err := indexer.NewClient(cfg.IndexerURL)
	if err != nil {
		return err
	}

	svc := workflow.New(cat, addrs, caller, cfg.Sender,
		workflow.WithActionSource(idx),
		workflow.WithLogger(logger))

	logger.Info("crankerd started",
		"ledger", cfg.LedgerURL,
		"indexer", cfg.IndexerURL,
		"poll_interval", cfg.PollInterval)

	cranker := &cranker{svc: svc, idx: idx, log: logger}
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	// Look back one interval on startup so a restart does not skip
	// intents that resolved while the daemon was down.
	since := time.Now().Add(-cfg.PollInterval)
	for {
		select {
		case <-ctx.Done():
			logger.Info("crankerd stopping")
			return nil
		case <-ticker.C:
			next, err := cranker.sweep(ctx, since, time.Now())
			if err != nil {
				logger.Error("sweep failed", "error", err)
				continue
			}
			since = next
		}
	}
}

// intentSource is the slice of indexer.Client the sweep loop needs.
type intentSource interface {
	ResolvedIntents(ctx context.Context, since time.Time) ([]indexer.ResolvedIntent, error)
}

// intentExecutor is the slice of workflow.Service the sweep loop needs.
type intentExecutor interface {
	ExecuteObserved(ctx context.Context, req workflow.ExecuteRequest, outcome contracts.OutcomeKey) (*ledger.TxResult, error)
}

type cranker struct {
	svc intentExecutor
	idx intentSource
	log *slog.Logger
}

// sweep executes every resolved, unexecuted intent seen since the cursor and
// returns the next cursor. A failure on one intent does not block the rest of
// the sweep, and the cursor never advances past an intent that has not
// executed: it is clamped to the earliest unexecuted intent's resolve time so
// the next sweep sees it again. Time-gated intents hit this path routinely,
// failing here until their gate opens.
func (c *cranker) sweep(ctx context.Context, since, now time.Time) (time.Time, error) {
	intents, err := c.idx.ResolvedIntents(ctx, since)
	if err != nil {
		return since, err
	}
	next := now
	for _, in := range intents {
		if in.Executed {
			continue
		}
		req := workflow.ExecuteRequest{
			IntentID:  in.IntentID,
			AccountID: in.AccountID,
			Context:   in.Context,
			Status: execution.IntentStatus{
				Resolved:        true,
				ExecutableAfter: in.ExecutableAfter,
			},
		}
		res, err := c.svc.ExecuteObserved(ctx, req, in.Outcome)
		if err != nil {
			c.log.Error("intent execution failed",
				"intent_id", in.IntentID, "outcome", string(in.Outcome), "error", err)
			if in.ResolvedAt.Before(next) {
				next = in.ResolvedAt
			}
			continue
		}
		c.log.Info("intent executed",
			"intent_id", in.IntentID, "outcome", string(in.Outcome), "digest", res.Digest)
	}
	return next, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
