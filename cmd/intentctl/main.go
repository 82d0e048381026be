// Command intentctl stages intent batches from YAML batch files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/config"
	"github.com/praxis-labs/intentkit/pkg/ledger"
	"github.com/praxis-labs/intentkit/pkg/workflow"
)

func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run is the entrypoint, split out for testing.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, "usage: intentctl stage -intent <id> -account <id> <batch.yaml>")
		return 2
	}
	switch args[1] {
	case "stage":
		return runStage(args[2:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[1])
		return 2
	}
}

func runStage(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stage", flag.ContinueOnError)
	fs.SetOutput(stderr)
	intentID := fs.String("intent", "", "intent id to stage against")
	accountID := fs.String("account", "", "owning account id")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *intentID == "" || *accountID == "" || fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: intentctl stage -intent <id> -account <id> <batch.yaml>")
		return 2
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer f.Close()

	spec, err := workflow.LoadBatchSpec(f)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	addrs := catalog.DefaultAddresses()
	if cfg.ActionsPkg != "" {
		addrs.Actions = cfg.ActionsPkg
	}
	if cfg.ProtocolPkg != "" {
		addrs.Protocol = cfg.ProtocolPkg
	}
	cat, err := catalog.New(addrs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	svc := workflow.New(cat, addrs, ledger.NewClient(cfg.LedgerURL), cfg.Sender)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ref, _, err := svc.StageActions(ctx, workflow.BatchConfig{
		IntentID:  *intentID,
		AccountID: *accountID,
		Context:   spec.Context,
		Outcome:   spec.Outcome,
		Configs:   spec.Configs(),
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "staged %d actions for %s/%s (digest %s)\n",
		ref.Size, ref.IntentID, ref.Outcome, ref.TxDigest)
	return 0
}
