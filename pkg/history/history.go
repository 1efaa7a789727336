package history

import (
	"fmt"
	"sync"

	"github.com/peerlink-labs/walletauth-go/pkg/persistence"
	"github.com/peerlink-labs/walletauth-go/pkg/types"
	"go.uber.org/zap"
)

// JsonRpcHistory is a deduplicated, durable ledger of in-flight JSON-RPC
// requests. Each record moves through absent -> pending -> resolved exactly
// once; duplicate requests and duplicate responses are rejected.
//
// The underlying store serializes access per key, but the duplicate checks
// here span a read and a write, so every operation runs under a single mutex.
// Two concurrent Sets with the same id, or two concurrent Resolves for the
// same id, can never both succeed.
type JsonRpcHistory struct {
	mu     sync.Mutex
	store  persistence.Store
	prefix string
	logger *zap.Logger
}

// NewJsonRpcHistory creates a ledger on top of store. instance namespaces all
// keys so multiple ledgers can share one store.
func NewJsonRpcHistory(store persistence.Store, instance string, logger *zap.Logger) *JsonRpcHistory {
	return &JsonRpcHistory{
		store:  store,
		prefix: instance + ":request:",
		logger: logger,
	}
}

func (h *JsonRpcHistory) recordKey(id int64) string {
	return fmt.Sprintf("%s%d", h.prefix, id)
}

// Exists reports whether a record with this request id is currently stored.
func (h *JsonRpcHistory) Exists(id int64) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	record, err := h.lookup(id)
	if err != nil {
		return false, err
	}
	return record != nil, nil
}

// Set creates a new pending record for an outbound request. Fails with
// ErrDuplicateRequest if a record with the same id already exists; the
// existing record is left untouched.
func (h *JsonRpcHistory) Set(topic string, request *types.JsonRpcRequest, chainId string) error {
	if request == nil {
		return fmt.Errorf("cannot store nil request")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	existing, err := h.lookup(request.Id)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %d", ErrDuplicateRequest, request.Id)
	}

	record := &types.JsonRpcRecord{
		Id:      request.Id,
		Topic:   topic,
		Method:  request.Method,
		Params:  request.Params,
		ChainId: chainId,
	}
	if err := h.persist(record); err != nil {
		return err
	}

	h.logger.Debug("stored json-rpc request",
		zap.Int64("id", request.Id),
		zap.String("topic", topic),
		zap.String("method", request.Method),
	)
	return nil
}

// Get returns a snapshot of the record for id, or (nil, nil) if absent.
func (h *JsonRpcHistory) Get(id int64) (*types.JsonRpcRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.lookup(id)
}

// Resolve attaches a response to the pending record matching response.Id and
// returns the now-resolved record. Fails with ErrNoMatchingRequest if no
// record exists, or ErrDuplicateResponse if one was already resolved.
func (h *JsonRpcHistory) Resolve(response *types.JsonRpcResponse) (*types.JsonRpcRecord, error) {
	if response == nil {
		return nil, fmt.Errorf("cannot resolve nil response")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	record, err := h.lookup(response.Id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %d", ErrNoMatchingRequest, response.Id)
	}
	if record.Response != nil {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateResponse, response.Id)
	}

	record.Response = response
	if err := h.persist(record); err != nil {
		return nil, err
	}

	h.logger.Debug("resolved json-rpc request",
		zap.Int64("id", response.Id),
		zap.String("topic", record.Topic),
	)
	return record, nil
}

// Delete removes every record belonging to topic. Removing a topic with no
// records is not an error.
func (h *JsonRpcHistory) Delete(topic string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.records()
	if err != nil {
		return err
	}

	deleted := 0
	for _, record := range records {
		if record.Topic != topic {
			continue
		}
		if err := h.store.Delete(h.recordKey(record.Id)); err != nil {
			return fmt.Errorf("failed to delete record %d: %w", record.Id, err)
		}
		deleted++
	}

	h.logger.Debug("deleted json-rpc records",
		zap.String("topic", topic),
		zap.Int("count", deleted),
	)
	return nil
}

// GetPending returns all records whose response is still absent, in no
// guaranteed order.
func (h *JsonRpcHistory) GetPending() ([]*types.JsonRpcRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.records()
	if err != nil {
		return nil, err
	}

	pending := make([]*types.JsonRpcRecord, 0, len(records))
	for _, record := range records {
		if record.Pending() {
			pending = append(pending, record)
		}
	}
	return pending, nil
}

// lookup reads one record from the store. Callers must hold h.mu.
func (h *JsonRpcHistory) lookup(id int64) (*types.JsonRpcRecord, error) {
	data, err := h.store.Get(h.recordKey(id))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return persistence.UnmarshalRecord(data)
}

// persist writes one record to the store. Callers must hold h.mu.
func (h *JsonRpcHistory) persist(record *types.JsonRpcRecord) error {
	data, err := persistence.MarshalRecord(record)
	if err != nil {
		return err
	}
	return h.store.Set(h.recordKey(record.Id), data)
}

// records lists every stored record under this ledger's namespace. Callers
// must hold h.mu.
func (h *JsonRpcHistory) records() ([]*types.JsonRpcRecord, error) {
	values, err := h.store.List(h.prefix)
	if err != nil {
		return nil, err
	}

	records := make([]*types.JsonRpcRecord, 0, len(values))
	for _, data := range values {
		record, err := persistence.UnmarshalRecord(data)
		if err != nil {
			h.logger.Sugar().Warnw("Failed to unmarshal JsonRpcRecord, skipping", "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
