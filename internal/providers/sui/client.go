package sui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/tunestream/tunes-api/internal/adapter"
)

// Client defines an interface for Sui fullnode operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/sui_client.go -package=mocks -mock_names=Client=MockSuiClient
type Client interface {
	// GetTransactionBlock fetches a transaction by digest with its effects
	// and emitted events
	GetTransactionBlock(ctx context.Context, digest string) (*TransactionBlock, error)
}

// client is the concrete JSON-RPC implementation of Client
type client struct {
	rpcURL     string
	httpClient adapter.HTTPClient
}

// NewClient creates a new Sui fullnode JSON-RPC client
func NewClient(rpcURL string, httpClient adapter.HTTPClient) Client {
	return &client{
		rpcURL:     rpcURL,
		httpClient: httpClient,
	}
}

// GetTransactionBlock fetches a transaction by digest with its effects and
// emitted events
func (c *client) GetTransactionBlock(ctx context.Context, digest string) (*TransactionBlock, error) {
	var block TransactionBlock
	err := c.call(ctx, "sui_getTransactionBlock", []any{
		digest,
		transactionBlockOptions{ShowEffects: true, ShowEvents: true},
	}, &block)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction block %s: %w", digest, err)
	}

	return &block, nil
}

// call performs a single JSON-RPC 2.0 request against the fullnode and
// unmarshals the result into result
func (c *client) call(ctx context.Context, method string, params []any, result any) error {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx, c.rpcURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("rpc request failed: %w", err)
	}

	var resp rpcResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.Error != nil {
		return fmt.Errorf("rpc error %d: %w", resp.Error.Code, resp.Error)
	}

	if resp.Result == nil {
		return fmt.Errorf("rpc response has no result")
	}

	if err := json.Unmarshal(resp.Result, result); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}

	return nil
}
