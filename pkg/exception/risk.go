package exception

import "errors"

var (
	ErrRiskHalted        = errors.New("risk: trading halted")
	ErrRiskRestricted    = errors.New("risk: trading restricted to reducing commands")
	ErrRiskInvalidTrader = errors.New("risk: invalid trader id")
	ErrRiskUnknownState  = errors.New("risk: unknown trading state")
	ErrRiskConfigDecode  = errors.New("risk: config payload decode failed")
)
