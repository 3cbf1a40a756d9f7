package sui

import "encoding/json"

// Network identifies a Sui network
type Network string

const (
	NetworkMainnet  Network = "mainnet"
	NetworkTestnet  Network = "testnet"
	NetworkDevnet   Network = "devnet"
	NetworkLocalnet Network = "localnet"
)

// FullnodeURL returns the public fullnode RPC endpoint for a network
func FullnodeURL(network Network) string {
	switch network {
	case NetworkMainnet:
		return "https://fullnode.mainnet.sui.io:443"
	case NetworkDevnet:
		return "https://fullnode.devnet.sui.io:443"
	case NetworkLocalnet:
		return "http://127.0.0.1:9000"
	default:
		return "https://fullnode.testnet.sui.io:443"
	}
}

// ExecutionStatus holds the execution outcome of a transaction
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// TransactionEffects holds the subset of transaction effects we consume
type TransactionEffects struct {
	Status ExecutionStatus `json:"status"`
}

// Event represents a Move event emitted by a transaction.
// Type is fully qualified: <package_id>::<module>::<name>.
type Event struct {
	Type              string          `json:"type"`
	PackageID         string          `json:"packageId"`
	TransactionModule string          `json:"transactionModule"`
	Sender            string          `json:"sender"`
	ParsedJSON        json.RawMessage `json:"parsedJson"`
}

// TransactionBlock represents a transaction fetched by digest with its
// effects and emitted events
type TransactionBlock struct {
	Digest  string              `json:"digest"`
	Effects *TransactionEffects `json:"effects"`
	Events  []Event             `json:"events"`
}

// rpcRequest is a JSON-RPC 2.0 request envelope
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// rpcError is a JSON-RPC 2.0 error object
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return e.Message
}

// rpcResponse is a JSON-RPC 2.0 response envelope
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// transactionBlockOptions selects which parts of the transaction record the
// fullnode returns
type transactionBlockOptions struct {
	ShowEffects bool `json:"showEffects"`
	ShowEvents  bool `json:"showEvents"`
}
