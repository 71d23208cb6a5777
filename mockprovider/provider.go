package mockprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/walletmock/eip1193"
	"github.com/kbukum/walletmock/emitter"
	"github.com/kbukum/walletmock/errors"
	"github.com/kbukum/walletmock/logger"
	"github.com/kbukum/walletmock/observability"
	"github.com/kbukum/walletmock/validation"
)

// MockProvider emulates the required surface of an EIP-1193 provider: one
// request method plus event subscription, and Emit* methods that let a
// test fire each provider event.
type MockProvider struct {
	events *emitter.Registry[eip1193.EventName]

	mu    sync.RWMutex
	state State

	strict  bool
	log     *logger.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer
}

// New creates a provider in the default state.
func New(opts ...Option) *MockProvider {
	p := &MockProvider{
		events: emitter.New[eip1193.EventName](),
		state:  DefaultState(),
		log:    logger.WithComponent("mockprovider"),
		tracer: observability.Tracer(observability.DefaultTracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns a copy of the provider state.
func (p *MockProvider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.clone()
}

// Request makes an RPC call. The mock performs no dispatch: it logs the
// call and resolves to nil whatever the provider state is. With
// WithStrictRequests it instead rejects the call when the arguments are
// malformed, the provider is disconnected, or the params name a chainId
// other than the current one.
func (p *MockProvider) Request(ctx context.Context, args eip1193.RequestArguments) (any, error) {
	requestID := uuid.NewString()
	state := p.State()
	ctx, span := p.tracer.Start(ctx, observability.SpanRequest, trace.WithAttributes(
		attribute.String(observability.AttrMethod, args.Method),
		attribute.String(observability.AttrRequestID, requestID),
		attribute.String(observability.AttrChainID, state.ChainID),
		attribute.Bool(observability.AttrConnected, state.Connected),
	))
	defer span.End()

	p.log.WithContext(ctx).Info("request", logger.Fields(
		logger.FieldMethod, args.Method,
		logger.FieldParams, args.Params,
		logger.FieldRequestID, requestID,
	))

	if p.strict {
		if err := checkRequest(args, state); err != nil {
			if rpcErr, ok := errors.AsRpcError(err); ok {
				observability.SetSpanAttribute(ctx, observability.AttrErrorCode, rpcErr.Code)
			}
			observability.SetSpanError(ctx, err)
			p.metrics.RecordRequest(ctx, args.Method, "error")
			p.log.WithContext(ctx).Debug("request rejected", logger.MergeWithError(
				logger.Fields(logger.FieldMethod, args.Method, logger.FieldRequestID, requestID), err))
			return nil, err
		}
	}

	p.metrics.RecordRequest(ctx, args.Method, "ok")
	return nil, nil
}

func checkRequest(args eip1193.RequestArguments, state State) error {
	if err := validation.New().
		Required("method", args.Method).
		Check(isParamsShape(args.Params), "params", "must be an array or object").
		Validate(); err != nil {
		return err
	}

	if !state.Connected {
		return errors.Disconnected()
	}
	if chainID, ok := args.ChainID(); ok && !strings.EqualFold(chainID, state.ChainID) {
		return errors.ChainDisconnected(chainID, state.ChainID)
	}
	return nil
}

func isParamsShape(params any) bool {
	if params == nil {
		return true
	}
	switch reflect.TypeOf(params).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		return true
	case reflect.Pointer:
		return reflect.TypeOf(params).Elem().Kind() == reflect.Struct
	}
	return false
}

// On registers listener for event and returns the provider for chaining.
// Subscribing to a deprecated event logs a warning and fails with
// ProviderDeprecatedError without registering the listener.
func (p *MockProvider) On(event eip1193.EventName, listener emitter.Listener) (*MockProvider, error) {
	if replacement, ok := Replacement(event); ok {
		p.log.Warn("[deprecated] "+event.String(), logger.DeprecationFields(event.String(), replacement.String()))
		p.metrics.RecordDeprecated(context.Background(), event.String())
		return nil, errors.DeprecatedEvent(event.String(), replacement.String())
	}

	p.events.On(event, listener)
	return p, nil
}

// RemoveListener unregisters one registration of listener for event.
// Unlike On it does not check for deprecated events; removing a listener
// that was never registered is a no-op.
func (p *MockProvider) RemoveListener(event eip1193.EventName, listener emitter.Listener) *MockProvider {
	p.events.Off(event, listener)
	return p
}

// RemoveAllListeners drops every listener registered for event.
func (p *MockProvider) RemoveAllListeners(event eip1193.EventName) *MockProvider {
	p.events.RemoveAll(event)
	return p
}

// ListenerCount returns the number of registrations for event.
func (p *MockProvider) ListenerCount(event eip1193.EventName) int {
	return p.events.ListenerCount(event)
}

// Subscribe is On without the chaining result.
func (p *MockProvider) Subscribe(event eip1193.EventName, listener emitter.Listener) error {
	_, err := p.On(event, listener)
	return err
}

// Unsubscribe is RemoveListener without the chaining result.
func (p *MockProvider) Unsubscribe(event eip1193.EventName, listener emitter.Listener) {
	p.RemoveListener(event, listener)
}

// SendAsync is the legacy callback-style request. It logs the request and
// the callback name, then fails; callback is never invoked.
//
// Deprecated: superseded by Request.
func (p *MockProvider) SendAsync(request any, callback func(err error, response any)) error {
	p.log.Warn("[deprecated] sendAsync", logger.Fields(
		logger.FieldArgs, serialize(request),
		logger.FieldCallback, callbackName(callback),
	))
	p.metrics.RecordDeprecated(context.Background(), "sendAsync")
	return errors.SupersededByRequest()
}

// Send is the legacy synchronous request. It logs its arguments, then fails.
//
// Deprecated: superseded by Request.
func (p *MockProvider) Send(args ...any) (any, error) {
	p.log.Warn("[deprecated] send", logger.Fields(logger.FieldArgs, serialize(args)))
	p.metrics.RecordDeprecated(context.Background(), "send")
	return nil, errors.SupersededByRequest()
}

func serialize(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

// callbackName returns the function name of cb, or "anonymous" when it
// cannot be determined.
func callbackName(cb any) string {
	v := reflect.ValueOf(cb)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return "anonymous"
	}
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil && fn.Name() != "" {
		return fn.Name()
	}
	return "anonymous"
}

// Ensure MockProvider implements eip1193.Provider.
var _ eip1193.Provider = (*MockProvider)(nil)
