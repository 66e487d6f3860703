package exception

import "errors"

var (
	ErrFeedUnknownSymbol    = errors.New("feed: unknown symbol")
	ErrFeedMalformedPayload = errors.New("feed: malformed payload")
	ErrFeedInvalidDecimal   = errors.New("feed: invalid decimal value")
	ErrFeedScaleOverflow    = errors.New("feed: scaled value overflows int64")
)
