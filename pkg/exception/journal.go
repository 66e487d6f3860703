package exception

import "errors"

var (
	ErrJournalInvalidMagic       = errors.New("journal: invalid magic")
	ErrJournalUnsupportedVersion = errors.New("journal: unsupported record version")
	ErrJournalChecksum           = errors.New("journal: checksum mismatch")
	ErrJournalClosed             = errors.New("journal: writer closed")
	ErrJournalPayloadTooLarge    = errors.New("journal: payload too large")
)
