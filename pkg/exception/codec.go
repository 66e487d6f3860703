package exception

import "errors"

var (
	ErrCodecMissingKey   = errors.New("codec: missing required key")
	ErrCodecInvalidValue = errors.New("codec: invalid value")
	ErrCodecUnknownType  = errors.New("codec: unknown event type")
)
