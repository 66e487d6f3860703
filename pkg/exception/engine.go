package exception

import "errors"

var (
	ErrEngineAlreadyStarted     = errors.New("engine: already started")
	ErrEngineNoExecutionHandler = errors.New("engine: no execution handler registered")
	ErrEngineNoRequestHandler   = errors.New("engine: no request handler for kind")
	ErrEngineUnmatchedResponse  = errors.New("engine: response does not match a pending request")
	ErrEngineNoDataHandler      = errors.New("engine: no data handler registered")
	ErrEngineUnroutableMessage  = errors.New("engine: message does not match its category")
)
