package convert

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

const testCoin = "0x2::sui::SUI"

func markerOf(t *testing.T, kind string) string {
	t.Helper()
	def, err := catalog.Default().LookupByID(kind)
	require.NoError(t, err)
	return def.MarkerType
}

func TestConvertByMarkerType(t *testing.T) {
	c := New(catalog.Default())

	cfg, err := c.Convert(contracts.RawObservedAction{
		Index:              0,
		FullyQualifiedType: markerOf(t, catalog.KindVaultSpend) + "<" + testCoin + ">",
		Params: contracts.RawParams{Keyed: map[string]any{
			"vault_name": "treasury",
			"amount":     float64(1000),
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.KindVaultSpend, cfg.Kind)
	assert.Equal(t, "treasury", cfg.Fields["vault_name"])
	// The coin type comes from the marker parameterization.
	assert.Equal(t, testCoin, cfg.TypeArgs[contracts.SlotCoinType])
}

func TestConvertByLegacyKindID(t *testing.T) {
	c := New(catalog.Default())

	cfg, err := c.Convert(contracts.RawObservedAction{
		Index:  3,
		Type:   catalog.KindMemo,
		Params: contracts.RawParams{Keyed: map[string]any{"message": "gm"}},
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.KindMemo, cfg.Kind)
}

func TestConvertUnknownKind(t *testing.T) {
	c := New(catalog.Default())

	_, err := c.Convert(contracts.RawObservedAction{
		Index:              2,
		FullyQualifiedType: "0x1::nope::NopeAction",
		Type:               "nope",
	})
	var cerr *contracts.ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contracts.UnknownActionKind, cerr.Reason)
	assert.Equal(t, 2, cerr.Index)
}

func TestConvertUnparsedRecord(t *testing.T) {
	c := New(catalog.Default())

	_, err := c.Convert(contracts.RawObservedAction{Index: 1, Unparsed: true})
	var cerr *contracts.ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contracts.UnparsedAction, cerr.Reason)
}

func TestConvertTypeArgPriority(t *testing.T) {
	c := New(catalog.Default())
	marker := markerOf(t, catalog.KindMint)

	// Explicit coin_type parameter wins over both the inline field and the
	// marker parameterization.
	cfg, err := c.Convert(contracts.RawObservedAction{
		FullyQualifiedType: marker + "<0x3::generic::GEN>",
		CoinType:           "0x4::inline::INL",
		Params: contracts.RawParams{Keyed: map[string]any{
			"amount":    float64(5),
			"coin_type": "0x5::explicit::EXP",
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "0x5::explicit::EXP", cfg.TypeArgs[contracts.SlotCoinType])
	// The explicit parameter is consumed, not left behind as a field.
	_, leaked := cfg.Fields["coin_type"]
	assert.False(t, leaked)

	// Without it, the inline coinType field wins over the marker.
	cfg, err = c.Convert(contracts.RawObservedAction{
		FullyQualifiedType: marker + "<0x3::generic::GEN>",
		CoinType:           "0x4::inline::INL",
		Params:             contracts.RawParams{Keyed: map[string]any{"amount": float64(5)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "0x4::inline::INL", cfg.TypeArgs[contracts.SlotCoinType])

	// With neither, the positional generic is used.
	cfg, err = c.Convert(contracts.RawObservedAction{
		FullyQualifiedType: marker + "<0x3::generic::GEN>",
		Params:             contracts.RawParams{Keyed: map[string]any{"amount": float64(5)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "0x3::generic::GEN", cfg.TypeArgs[contracts.SlotCoinType])
}

func TestConvertCapReturnBatchFromMarkerGenerics(t *testing.T) {
	c := New(catalog.Default())

	// Neither record carries an explicit coin_type param or inline field, so
	// the coin type must come from each marker's generic argument.
	raws := []contracts.RawObservedAction{
		{
			Index:              0,
			FullyQualifiedType: markerOf(t, catalog.KindReturnTreasuryCap) + "<" + testCoin + ">",
			Params:             contracts.RawParams{Keyed: map[string]any{"recipient": "0xabc"}},
		},
		{
			Index:              1,
			FullyQualifiedType: markerOf(t, catalog.KindReturnMetadata) + "<" + testCoin + ">",
			Params:             contracts.RawParams{Keyed: map[string]any{"recipient": "0xabc"}},
		},
	}

	res := c.ValidateAndConvert(raws)
	require.True(t, res.Success)
	require.Len(t, res.Configs, 2)
	assert.Equal(t, catalog.KindReturnTreasuryCap, res.Configs[0].Kind)
	assert.Equal(t, catalog.KindReturnMetadata, res.Configs[1].Kind)
	for _, cfg := range res.Configs {
		assert.Equal(t, testCoin, cfg.TypeArgs[contracts.SlotCoinType])
		assert.Equal(t, "0xabc", cfg.Fields["recipient"])
	}
}

func TestConvertMissingTypeArgFails(t *testing.T) {
	c := New(catalog.Default())

	// Bare marker, no inline field, no explicit param: nothing to guess
	// from, so conversion fails rather than defaulting.
	_, err := c.Convert(contracts.RawObservedAction{
		Index:              4,
		FullyQualifiedType: markerOf(t, catalog.KindMint),
		Params:             contracts.RawParams{Keyed: map[string]any{"amount": float64(5)}},
	})
	var cerr *contracts.ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contracts.MissingField, cerr.Reason)
	assert.Equal(t, string(contracts.SlotCoinType), cerr.Field)
}

func TestConvertMissingRequiredField(t *testing.T) {
	c := New(catalog.Default())

	_, err := c.Convert(contracts.RawObservedAction{
		FullyQualifiedType: markerOf(t, catalog.KindVaultSpend) + "<" + testCoin + ">",
		Params:             contracts.RawParams{Keyed: map[string]any{"amount": float64(1)}},
	})
	var cerr *contracts.ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contracts.MissingField, cerr.Reason)
	assert.Equal(t, "vault_name", cerr.Field)
}

func TestConvertAcceptsCamelCaseFields(t *testing.T) {
	c := New(catalog.Default())

	cfg, err := c.Convert(contracts.RawObservedAction{
		FullyQualifiedType: markerOf(t, catalog.KindVaultSpend) + "<" + testCoin + ">",
		Params: contracts.RawParams{Keyed: map[string]any{
			"vaultName": "treasury",
			"amount":    float64(1),
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "treasury", cfg.Fields["vault_name"])
}

func TestConvertFlatParamEncoding(t *testing.T) {
	c := New(catalog.Default())

	var raw contracts.RawObservedAction
	payload := `{
		"index": 0,
		"fullyQualifiedType": "` + markerOf(t, catalog.KindMemo) + `",
		"params": [{"type": "string", "name": "message", "value": "hello"}]
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	cfg, err := c.Convert(raw)
	require.NoError(t, err)
	assert.Equal(t, "hello", cfg.Fields["message"])
}

func TestConvertBatchFailFast(t *testing.T) {
	c := New(catalog.Default())
	raws := []contracts.RawObservedAction{
		memoRecord(t, 0, "a"),
		{Index: 1, Type: "bogus"},
		{Index: 2, Unparsed: true},
	}

	_, err := c.ConvertBatch(raws, FailFast)
	var cerr *contracts.ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 1, cerr.Index)
}

func TestValidateAndConvertCollectsAll(t *testing.T) {
	c := New(catalog.Default())
	raws := []contracts.RawObservedAction{
		memoRecord(t, 0, "a"),
		{Index: 1, Type: "bogus"},
		memoRecord(t, 2, "b"),
		{Index: 3, Unparsed: true},
	}

	res := c.ValidateAndConvert(raws)
	assert.False(t, res.Success)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 1, res.Errors[0].Index)
	assert.Equal(t, 3, res.Errors[1].Index)
	assert.Len(t, res.Configs, 2)

	good := []contracts.RawObservedAction{memoRecord(t, 0, "a"), memoRecord(t, 1, "b")}
	res = c.ValidateAndConvert(good)
	assert.True(t, res.Success)
	assert.Empty(t, res.Errors)
	assert.Len(t, res.Configs, 2)
}

func memoRecord(t *testing.T, index int, msg string) contracts.RawObservedAction {
	t.Helper()
	return contracts.RawObservedAction{
		Index:              index,
		FullyQualifiedType: markerOf(t, catalog.KindMemo),
		Params:             contracts.RawParams{Keyed: map[string]any{"message": msg}},
	}
}
