package indexer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-labs/intentkit/pkg/contracts"
)

func TestIntentActions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/intents/raise-1/outcomes/success/actions", r.URL.Path)
		w.Write([]byte(`{"actions": [
			{
				"index": 0,
				"fullyQualifiedType": "0x1::vault_actions::VaultSpendAction<0x2::sui::SUI>",
				"params": {"vault_name": "treasury", "amount": 100}
			},
			{
				"index": 1,
				"type": "transfer_coin",
				"coinType": "0x2::sui::SUI",
				"params": [{"type": "address", "name": "recipient", "value": "0xabc"}]
			}
		]}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	actions, err := c.IntentActions(context.Background(), "raise-1", contracts.OutcomeSuccess)
	require.NoError(t, err)
	require.Len(t, actions, 2)

	assert.Equal(t, 0, actions[0].Index)
	assert.Equal(t, "treasury", actions[0].Params.Canonical()["vault_name"])
	assert.Equal(t, "transfer_coin", actions[1].Type)
	assert.Equal(t, "0x2::sui::SUI", actions[1].CoinType)
	assert.Equal(t, "0xabc", actions[1].Params.Canonical()["recipient"])
}

func TestIntentActionsRejectsInvalidRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No index, no type discriminator: fails schema validation.
		w.Write([]byte(`{"actions": [{"params": {}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.IntentActions(context.Background(), "raise-1", contracts.OutcomeSuccess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid indexer record")
}

func TestResolvedIntents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/intents/resolved", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("since"))
		w.Write([]byte(`{"intents": [{
			"intentId": "raise-1",
			"accountId": "acct-1",
			"context": "raise",
			"outcome": "success",
			"executed": false,
			"resolvedAt": "2026-08-30T12:00:00Z",
			"executableAfter": "2026-08-30T12:05:00Z"
		}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	intents, err := c.ResolvedIntents(context.Background(), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, intents, 1)
	assert.Equal(t, "raise-1", intents[0].IntentID)
	assert.Equal(t, contracts.ContextRaise, intents[0].Context)
	assert.Equal(t, contracts.OutcomeSuccess, intents[0].Outcome)
	assert.False(t, intents[0].Executed)
}

func TestIndexerHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.IntentActions(context.Background(), "raise-1", contracts.OutcomeSuccess)
	assert.ErrorContains(t, err, "http 502")
}
