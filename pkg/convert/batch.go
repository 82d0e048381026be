package convert

import (
	"errors"
	"fmt"

	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// BatchMode selects how ConvertBatch reports failures.
type BatchMode int

const (
	// FailFast stops at the first conversion error, reporting its index and
	// reason.
	FailFast BatchMode = iota
	// CollectAll converts every record and reports all errors together.
	CollectAll
)

// BatchResult is the outcome of validating and converting a whole observed
// batch. Success is true exactly when Errors is empty; a partial result is
// never reported as success.
type BatchResult struct {
	Success bool
	Configs []contracts.ExecutionConfig
	Errors  []*contracts.ConversionError
}

// ConvertBatch converts an ordered batch of observed actions. In FailFast
// mode the first error aborts the batch; in CollectAll mode the full error
// list is joined into one error and no configs are returned.
func (c *Converter) ConvertBatch(raws []contracts.RawObservedAction, mode BatchMode) ([]contracts.ExecutionConfig, error) {
	if mode == FailFast {
		configs := make([]contracts.ExecutionConfig, 0, len(raws))
		for _, raw := range raws {
			cfg, err := c.Convert(raw)
			if err != nil {
				return nil, fmt.Errorf("batch conversion failed: %w", err)
			}
			configs = append(configs, cfg)
		}
		return configs, nil
	}

	res := c.ValidateAndConvert(raws)
	if !res.Success {
		errs := make([]error, 0, len(res.Errors))
		for _, e := range res.Errors {
			errs = append(errs, e)
		}
		return nil, fmt.Errorf("batch conversion failed: %w", errors.Join(errs...))
	}
	return res.Configs, nil
}

// ValidateAndConvert converts every record, collecting one error entry per
// failed index. Configs holds the successfully converted records in input
// order; callers must not execute a batch whose Success is false.
func (c *Converter) ValidateAndConvert(raws []contracts.RawObservedAction) BatchResult {
	res := BatchResult{Configs: make([]contracts.ExecutionConfig, 0, len(raws))}
	for _, raw := range raws {
		cfg, err := c.Convert(raw)
		if err != nil {
			var convErr *contracts.ConversionError
			if errors.As(err, &convErr) {
				res.Errors = append(res.Errors, convErr)
			} else {
				res.Errors = append(res.Errors, &contracts.ConversionError{
					Reason: contracts.UnknownActionKind,
					Index:  raw.Index,
				})
			}
			continue
		}
		res.Configs = append(res.Configs, cfg)
	}
	res.Success = len(res.Errors) == 0
	return res
}
