package history

import "errors"

var (
	// ErrDuplicateRequest indicates a record with the same request id is
	// already stored.
	ErrDuplicateRequest = errors.New("duplicate json-rpc request id")

	// ErrDuplicateResponse indicates the record for this id already carries a
	// response.
	ErrDuplicateResponse = errors.New("json-rpc request already resolved")

	// ErrNoMatchingRequest indicates a response arrived for an id with no
	// stored record.
	ErrNoMatchingRequest = errors.New("no matching json-rpc request")
)
