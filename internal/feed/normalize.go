// Package feed ingests venue market data and normalizes it into
// registry-scaled integers before it enters the engine.
package feed

import (
	"fmt"
	"strings"

	"main/internal/schema"
	"main/pkg/exception"
)

// Normalizer converts venue decimal strings into the scaled integer form
// declared by the instrument registry.
type Normalizer struct {
	reg     *schema.Registry
	symbols map[string]schema.InstrumentID
}

// NewNormalizer creates a normalizer. symbols maps venue symbols to
// registry instrument ids.
func NewNormalizer(reg *schema.Registry, symbols map[string]schema.InstrumentID) *Normalizer {
	return &Normalizer{reg: reg, symbols: symbols}
}

// Trade normalizes one trade tick.
func (n *Normalizer) Trade(symbol, price, size string, tsEvent, tsRecv int64) (schema.MarketData, error) {
	inst, err := n.instrument(symbol)
	if err != nil {
		return schema.MarketData{}, err
	}
	p, err := scaleDecimal(price, inst.PriceScale)
	if err != nil {
		return schema.MarketData{}, err
	}
	s, err := scaleDecimal(size, inst.SizeScale)
	if err != nil {
		return schema.MarketData{}, err
	}
	return schema.MarketData{
		InstrumentID: inst.ID,
		Kind:         schema.MarketDataTrade,
		Price:        schema.Price(p),
		Size:         schema.Quantity(s),
		TsEvent:      tsEvent,
		TsRecv:       tsRecv,
	}, nil
}

// Quote normalizes one top-of-book tick.
func (n *Normalizer) Quote(symbol, bidPrice, bidSize, askPrice, askSize string, tsEvent, tsRecv int64) (schema.MarketData, error) {
	inst, err := n.instrument(symbol)
	if err != nil {
		return schema.MarketData{}, err
	}
	bp, err := scaleDecimal(bidPrice, inst.PriceScale)
	if err != nil {
		return schema.MarketData{}, err
	}
	bs, err := scaleDecimal(bidSize, inst.SizeScale)
	if err != nil {
		return schema.MarketData{}, err
	}
	ap, err := scaleDecimal(askPrice, inst.PriceScale)
	if err != nil {
		return schema.MarketData{}, err
	}
	as, err := scaleDecimal(askSize, inst.SizeScale)
	if err != nil {
		return schema.MarketData{}, err
	}
	return schema.MarketData{
		InstrumentID: inst.ID,
		Kind:         schema.MarketDataQuote,
		BidPrice:     schema.Price(bp),
		BidSize:      schema.Quantity(bs),
		AskPrice:     schema.Price(ap),
		AskSize:      schema.Quantity(as),
		TsEvent:      tsEvent,
		TsRecv:       tsRecv,
	}, nil
}

func (n *Normalizer) instrument(symbol string) (schema.Instrument, error) {
	id, ok := n.symbols[symbol]
	if !ok {
		return schema.Instrument{}, fmt.Errorf("%w: %q", exception.ErrFeedUnknownSymbol, symbol)
	}
	inst, ok := n.reg.Instrument(id)
	if !ok {
		return schema.Instrument{}, fmt.Errorf("%w: %q", exception.ErrFeedUnknownSymbol, symbol)
	}
	return inst, nil
}

// scaleDecimal parses a decimal string into an integer scaled by 10^scale.
// Fractional digits beyond the scale must be zero; precision is never
// silently dropped.
func scaleDecimal(s string, scale schema.Scale) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", exception.ErrFeedInvalidDecimal)
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("%w: %q", exception.ErrFeedInvalidDecimal, s)
	}

	if len(fracPart) > int(scale) {
		for _, c := range fracPart[scale:] {
			if c != '0' {
				return 0, fmt.Errorf("%w: %q exceeds scale %d", exception.ErrFeedInvalidDecimal, s, scale)
			}
		}
		fracPart = fracPart[:scale]
	}

	var value int64
	digits := 0
	accumulate := func(part string) error {
		for i := 0; i < len(part); i++ {
			c := part[i]
			if c < '0' || c > '9' {
				return fmt.Errorf("%w: %q", exception.ErrFeedInvalidDecimal, s)
			}
			digits++
			d := int64(c - '0')
			if value > (1<<63-1-d)/10 {
				return fmt.Errorf("%w: %q at scale %d", exception.ErrFeedScaleOverflow, s, scale)
			}
			value = value*10 + d
		}
		return nil
	}
	if err := accumulate(intPart); err != nil {
		return 0, err
	}
	if err := accumulate(fracPart); err != nil {
		return 0, err
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: %q", exception.ErrFeedInvalidDecimal, s)
	}

	for i := len(fracPart); i < int(scale); i++ {
		if value > (1<<63-1)/10 {
			return 0, fmt.Errorf("%w: %q at scale %d", exception.ErrFeedScaleOverflow, s, scale)
		}
		value *= 10
	}
	if neg {
		value = -value
	}
	return value, nil
}
