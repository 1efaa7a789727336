package persistence

import (
	"encoding/json"
	"testing"

	"github.com/peerlink-labs/walletauth-go/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRecord(t *testing.T) {
	record := &types.JsonRpcRecord{
		Id:      42,
		Topic:   "topic-1",
		Method:  "wc_sessionRequest",
		Params:  json.RawMessage(`{"key":"value"}`),
		ChainId: "eip155:1",
		Response: &types.JsonRpcResponse{
			Id:     42,
			Result: json.RawMessage(`"ok"`),
		},
	}

	data, err := MarshalRecord(record)
	require.NoError(t, err)

	decoded, err := UnmarshalRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestMarshalRecord_Nil(t *testing.T) {
	_, err := MarshalRecord(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil")
}

func TestUnmarshalRecord_Invalid(t *testing.T) {
	_, err := UnmarshalRecord(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")

	_, err = UnmarshalRecord([]byte("not-json"))
	require.Error(t, err)
}
