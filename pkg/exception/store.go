package exception

import "errors"

var (
	ErrStoreNilClient     = errors.New("store: nil postgres client")
	ErrStoreInvalidRecord = errors.New("store: record missing identity keys")
)
