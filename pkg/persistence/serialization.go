package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/peerlink-labs/walletauth-go/pkg/types"
)

// MarshalRecord serializes a JsonRpcRecord to JSON bytes.
func MarshalRecord(record *types.JsonRpcRecord) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("cannot marshal nil JsonRpcRecord")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JsonRpcRecord to JSON: %w", err)
	}
	return data, nil
}

// UnmarshalRecord deserializes a JsonRpcRecord from JSON bytes.
func UnmarshalRecord(data []byte) (*types.JsonRpcRecord, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var record types.JsonRpcRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to JsonRpcRecord: %w", err)
	}
	return &record, nil
}
