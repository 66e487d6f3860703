// Package engine hosts the message router at the center of the trading
// core. All commands, requests, responses, and data funnel through one
// FIFO queue and are dispatched from a single consumer goroutine, so the
// order store and every handler run without locking.
package engine

import (
	"context"
	"sync"
	"time"

	"main/internal/bus"
	"main/internal/obs"
	"main/internal/order"
	"main/internal/risk"
	"main/internal/schema"
	"main/pkg/exception"
)

// ExecutionHandler carries admitted order commands to the venue. It is
// invoked from the engine's consumer goroutine only.
type ExecutionHandler interface {
	Submit(o order.Order) error
	Cancel(o order.Order) error
	Amend(o order.Order, cmd bus.AmendOrder) error
}

// RequestHandler answers one request kind. The returned payload is
// published back as a Response with the request's correlation id.
type RequestHandler func(req bus.Request) (any, error)

// Config wires the engine's collaborators. Gate is required; everything
// else is optional.
type Config struct {
	Gate    *risk.Gate
	Metrics *obs.Metrics

	// EventSink observes every event the engine applies, after it has been
	// applied. Journals and archives hang off this.
	EventSink func(ev schema.Event)

	// OnRiskReject is called when the gate denies a command. The command
	// had no effect.
	OnRiskReject func(cmd bus.Command, err error)

	// OnError is called for every handler or dispatch failure. The engine
	// keeps running.
	OnError func(msg bus.Message, err error)
}

// Engine is the message router. Producers publish from any goroutine;
// dispatch happens strictly in arrival order on one consumer.
type Engine struct {
	queue   *bus.Queue
	gate    *risk.Gate
	orders  *order.Store
	metrics *obs.Metrics
	corr    *obs.CorrelationGenerator

	sink         func(ev schema.Event)
	onRiskReject func(cmd bus.Command, err error)
	onError      func(msg bus.Message, err error)

	exec        ExecutionHandler
	requests    map[string]RequestHandler
	dataHandler func(d bus.Data)

	respMu    sync.Mutex
	responses map[uint64]func(resp bus.Response)

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a stopped engine.
func New(cfg Config) *Engine {
	gate := cfg.Gate
	if gate == nil {
		gate = risk.NewGate("", schema.TradingStateActive)
	}
	return &Engine{
		queue:        bus.NewQueue(),
		gate:         gate,
		orders:       order.NewStore(),
		metrics:      cfg.Metrics,
		corr:         obs.NewCorrelationGenerator(0),
		sink:         cfg.EventSink,
		onRiskReject: cfg.OnRiskReject,
		onError:      cfg.OnError,
		requests:     make(map[string]RequestHandler),
		responses:    make(map[uint64]func(bus.Response)),
	}
}

// Orders returns the engine-owned order store. Outside the consumer
// goroutine it must be treated as read-only.
func (e *Engine) Orders() *order.Store { return e.orders }

// Gate returns the risk gate.
func (e *Engine) Gate() *risk.Gate { return e.gate }

// QueueLen returns the current undispatched backlog.
func (e *Engine) QueueLen() int { return e.queue.Len() }

// SetExecutionHandler registers the venue-facing command handler. It must
// be set before Start.
func (e *Engine) SetExecutionHandler(h ExecutionHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.exec = h
}

// HandleRequest registers the handler for one request kind. Must be called
// before Start.
func (e *Engine) HandleRequest(kind string, h RequestHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.requests[kind] = h
}

// SetDataHandler registers the handler for unsolicited data. Must be
// called before Start.
func (e *Engine) SetDataHandler(h func(d bus.Data)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dataHandler = h
}

// Start launches the consumer goroutine. It fails if no execution handler
// is registered or the engine already runs.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return exception.ErrEngineAlreadyStarted
	}
	if e.exec == nil {
		return exception.ErrEngineNoExecutionHandler
	}
	ctx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})
	e.started = true

	go func(done chan struct{}) {
		defer close(done)
		e.queue.Run(ctx, e.dispatch)
	}(e.done)
	return nil
}

// Stop cancels the consumer and waits for the in-flight dispatch to
// finish. Messages still queued are dropped.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.mu.Unlock()

	e.queue.Close()
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Publish enqueues a message from any goroutine without blocking.
func (e *Engine) Publish(m bus.Message) error {
	if err := e.queue.Publish(m); err != nil {
		return err
	}
	e.metrics.ObserveQueueDepth(e.queue.Len())
	return nil
}

// Request enqueues a request and registers the callback invoked with its
// response. The callback fires exactly once: with the handler's payload,
// or with Err set when the request could not be answered. The assigned
// correlation id is returned.
func (e *Engine) Request(kind string, payload any, on func(resp bus.Response)) (uint64, error) {
	id := e.corr.Next()
	e.respMu.Lock()
	e.responses[id] = on
	e.respMu.Unlock()

	if err := e.Publish(bus.Request{CorrelationID: id, Kind: kind, Payload: payload}); err != nil {
		e.respMu.Lock()
		delete(e.responses, id)
		e.respMu.Unlock()
		return 0, err
	}
	return id, nil
}

// ApplyEvent routes an event to the component it mutates and forwards it
// to the event sink. Order events address the order store, trading state
// changes address the gate. A failed application reaches no sink.
func (e *Engine) ApplyEvent(ev schema.Event) error {
	switch v := ev.(type) {
	case schema.TradingStateChanged:
		if err := e.gate.Apply(v); err != nil {
			return err
		}
	case schema.OrderInitialized:
		// consumed at order creation; forwarded for journaling only
	default:
		if oe, ok := ev.(schema.OrderEvent); ok {
			if _, err := e.orders.Apply(oe); err != nil {
				return err
			}
		}
	}
	if e.sink != nil {
		e.sink(ev)
	}
	return nil
}

func (e *Engine) dispatch(m bus.Message) {
	start := time.Now()
	switch m.Category() {
	case bus.CategoryCommand:
		if cmd, ok := m.(bus.Command); ok {
			e.handleCommand(cmd)
		} else {
			e.fail(m, exception.ErrEngineUnroutableMessage)
		}
	case bus.CategoryRequest:
		if req, ok := m.(bus.Request); ok {
			e.handleRequest(req)
		} else {
			e.fail(m, exception.ErrEngineUnroutableMessage)
		}
	case bus.CategoryResponse:
		if resp, ok := m.(bus.Response); ok {
			e.handleResponse(resp)
		} else {
			e.fail(m, exception.ErrEngineUnroutableMessage)
		}
	case bus.CategoryData:
		if d, ok := m.(bus.Data); ok {
			e.handleData(d)
		} else {
			e.fail(m, exception.ErrEngineUnroutableMessage)
		}
	default:
		e.fail(m, exception.ErrEngineUnroutableMessage)
	}
	e.metrics.ObserveDispatch(m.Category(), time.Since(start))
}

func (e *Engine) handleCommand(cmd bus.Command) {
	switch c := cmd.(type) {
	case bus.SubmitOrder:
		o, err := order.Create(c.Init)
		if err != nil {
			e.fail(cmd, err)
			return
		}
		if err := e.gate.Admit(submitExposure(c.Init)); err != nil {
			e.rejectRisk(cmd, err)
			return
		}
		if err := e.orders.Add(o); err != nil {
			e.fail(cmd, err)
			return
		}
		if e.sink != nil {
			e.sink(c.Init)
		}
		if err := e.exec.Submit(o); err != nil {
			e.fail(cmd, err)
		}

	case bus.CancelOrder:
		o, ok := e.orders.Get(c.ClientOrderID)
		if !ok {
			e.fail(cmd, exception.ErrOrderNotFound)
			return
		}
		if err := e.gate.Admit(risk.ExposureReducing); err != nil {
			e.rejectRisk(cmd, err)
			return
		}
		if err := e.exec.Cancel(o); err != nil {
			e.fail(cmd, err)
		}

	case bus.AmendOrder:
		o, ok := e.orders.Get(c.ClientOrderID)
		if !ok {
			e.fail(cmd, exception.ErrOrderNotFound)
			return
		}
		if err := e.gate.Admit(amendExposure(o, c)); err != nil {
			e.rejectRisk(cmd, err)
			return
		}
		if err := e.exec.Amend(o, c); err != nil {
			e.fail(cmd, err)
		}

	default:
		e.fail(cmd, exception.ErrEngineUnroutableMessage)
	}
}

func (e *Engine) handleRequest(req bus.Request) {
	h, ok := e.requests[req.Kind]
	if !ok {
		e.failRequest(req, exception.ErrEngineNoRequestHandler)
		return
	}
	payload, err := h(req)
	if err != nil {
		e.failRequest(req, err)
		return
	}
	if err := e.Publish(bus.Response{CorrelationID: req.CorrelationID, Payload: payload}); err != nil {
		e.failRequest(req, err)
	}
}

// failRequest reports the failure and delivers an error response directly
// to the registered callback. A failed request still resolves to exactly
// one response and never strands its registration.
func (e *Engine) failRequest(req bus.Request, err error) {
	e.fail(req, err)

	e.respMu.Lock()
	on, ok := e.responses[req.CorrelationID]
	delete(e.responses, req.CorrelationID)
	e.respMu.Unlock()

	if ok {
		on(bus.Response{CorrelationID: req.CorrelationID, Err: err})
	}
}

func (e *Engine) handleResponse(resp bus.Response) {
	e.respMu.Lock()
	on, ok := e.responses[resp.CorrelationID]
	delete(e.responses, resp.CorrelationID)
	e.respMu.Unlock()

	if !ok {
		e.fail(resp, exception.ErrEngineUnmatchedResponse)
		return
	}
	on(resp)
}

func (e *Engine) handleData(d bus.Data) {
	if e.dataHandler == nil {
		e.fail(d, exception.ErrEngineNoDataHandler)
		return
	}
	e.dataHandler(d)
}

func (e *Engine) rejectRisk(cmd bus.Command, err error) {
	e.metrics.IncRiskReject()
	if e.onRiskReject != nil {
		e.onRiskReject(cmd, err)
	}
}

func (e *Engine) fail(m bus.Message, err error) {
	e.metrics.IncHandlerError()
	if e.onError != nil {
		e.onError(m, err)
	}
}

// submitExposure classifies a new order: reduce-only orders shrink open
// exposure, everything else may grow it.
func submitExposure(init schema.OrderInitialized) risk.Exposure {
	if init.ReduceOnly {
		return risk.ExposureReducing
	}
	return risk.ExposureIncreasing
}

// amendExposure classifies an amendment: shrinking the working quantity of
// an order, or amending a reduce-only order, reduces exposure.
func amendExposure(o order.Order, cmd bus.AmendOrder) risk.Exposure {
	if o.IsReduceOnly() {
		return risk.ExposureReducing
	}
	if cmd.Quantity != 0 && cmd.Quantity < o.Quantity() {
		return risk.ExposureReducing
	}
	return risk.ExposureIncreasing
}
