package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}), srv
}

func TestGetBalance(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getBalance", req.Method)
		assert.Equal(t, "addr1", req.Params[0])

		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"context":{"slot":123},"value":2500000000}}`))
	})

	lamports, err := c.GetBalance(context.Background(), "addr1")
	require.NoError(t, err)
	assert.Equal(t, uint64(2500000000), lamports)
}

func TestGetBalance_RPCError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"Invalid param"}}`))
	})

	_, err := c.GetBalance(context.Background(), "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid param")
}

func TestGetSignaturesForAddress(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getSignaturesForAddress", req.Method)
		opts := req.Params[1].(map[string]interface{})
		assert.Equal(t, float64(20), opts["limit"])

		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":[
			{"signature":"sig1","slot":100,"err":null,"blockTime":1700000100},
			{"signature":"sig2","slot":99,"err":{"InstructionError":[0,"Custom"]},"blockTime":1700000000},
			{"signature":"sig3","slot":98,"err":null,"blockTime":null}
		]}`))
	})

	sigs, err := c.GetSignaturesForAddress(context.Background(), "addr1", 20)
	require.NoError(t, err)
	require.Len(t, sigs, 3)
	assert.Equal(t, int64(1700000100), sigs[0].BlockTime)
	assert.Nil(t, sigs[0].Err)
	assert.NotNil(t, sigs[1].Err)
	assert.Zero(t, sigs[2].BlockTime)
}

func TestGetTokenAccountCount(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getTokenAccountsByOwner", req.Method)
		filter := req.Params[1].(map[string]interface{})
		assert.Equal(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", filter["programId"])

		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"value":[
			{"account":{"data":{"parsed":{"info":{"mint":"m1","tokenAmount":{"uiAmountString":"1.5"}}}}}},
			{"account":{"data":{"parsed":{"info":{"mint":"m2","tokenAmount":{"uiAmountString":"0"}}}}}},
			{"account":{"data":{"parsed":{"info":{"mint":"m3","tokenAmount":{"uiAmountString":""}}}}}},
			{"account":{"data":{"parsed":{"info":{"mint":"m4","tokenAmount":{"uiAmountString":"42"}}}}}}
		]}}`))
	})

	count, err := c.GetTokenAccountCount(context.Background(), "addr1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCall_HTTPFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.GetBalance(context.Background(), "addr1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
