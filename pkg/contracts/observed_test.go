package contracts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawParamsDualEncoding(t *testing.T) {
	var flat RawParams
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"type":"u64","name":"amount","value":100}]`), &flat))
	require.Len(t, flat.Flat, 1)
	assert.Equal(t, "amount", flat.Flat[0].Name)

	var keyed RawParams
	require.NoError(t, json.Unmarshal([]byte(`{"amount":100}`), &keyed))
	assert.Equal(t, float64(100), keyed.Keyed["amount"])

	var empty RawParams
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.Nil(t, empty.Flat)
	assert.Nil(t, empty.Keyed)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &flat))
}

func TestRawParamsCanonicalFlatWins(t *testing.T) {
	p := RawParams{
		Flat:  []RawParam{{Name: "amount", Value: float64(1)}},
		Keyed: map[string]any{"amount": float64(2), "extra": "x"},
	}
	m := p.Canonical()
	assert.Equal(t, float64(1), m["amount"])
	assert.Equal(t, "x", m["extra"])
}

func TestLookupErrorUnwraps(t *testing.T) {
	err := &LookupError{By: "id", Key: "nope"}
	assert.ErrorIs(t, err, ErrActionNotFound)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestExecutionConfigOrderedTypeArgs(t *testing.T) {
	def := &ActionDefinition{
		ID:         "x",
		TypeParams: []TypeParamSlot{SlotAssetType, SlotStableType},
	}
	cfg := &ExecutionConfig{Kind: "x", TypeArgs: map[TypeParamSlot]string{
		SlotStableType: "0x2::usdc::USDC",
		SlotAssetType:  "0x3::gov::GOV",
	}}

	// Declared slot order, not map order.
	args, err := cfg.OrderedTypeArgs(def)
	require.NoError(t, err)
	assert.Equal(t, []string{"0x3::gov::GOV", "0x2::usdc::USDC"}, args)

	delete(cfg.TypeArgs, SlotStableType)
	_, err = cfg.OrderedTypeArgs(def)
	assert.ErrorContains(t, err, "unresolved type argument")
}
