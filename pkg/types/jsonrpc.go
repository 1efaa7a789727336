package types

import "encoding/json"

// JSON-RPC 2.0 shapes used by the request ledger. Params and results are kept
// as raw JSON; this layer correlates messages, it does not interpret them.

// JsonRpcRequest is an outbound request whose response will arrive
// asynchronously. IDs are caller-supplied and assumed globally unique for the
// lifetime of the ledger.
type JsonRpcRequest struct {
	Id     int64           `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// JsonRpcError is the error member of a JSON-RPC 2.0 response.
type JsonRpcError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// JsonRpcResponse carries either a result or an error for a previously sent
// request.
type JsonRpcResponse struct {
	Id     int64           `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *JsonRpcError   `json:"error,omitempty"`
}

// JsonRpcRecord is one request/response correlation entry. Response is nil
// until the record is resolved and transitions to non-nil at most once.
type JsonRpcRecord struct {
	Id     int64           `json:"id"`
	Topic  string          `json:"topic"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`

	// ChainId optionally pins the request to a chain (CAIP-2).
	ChainId string `json:"chainId,omitempty"`

	// Response is absent while the request is pending.
	Response *JsonRpcResponse `json:"response,omitempty"`
}

// Pending reports whether the record has not yet been resolved.
func (r *JsonRpcRecord) Pending() bool {
	return r.Response == nil
}
