package eip1193

import (
	"context"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/kbukum/walletmock/emitter"
)

// MessageTypeSubscription is the message type of eth_subscription notifications.
const MessageTypeSubscription = "eth_subscription"

// RequestArguments identifies an RPC method and its parameters.
// Params is either a positional slice or a by-name object.
type RequestArguments struct {
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

// ChainID returns the chainId named by the request parameters, if any.
// It looks at a by-name object ({"chainId": ...}) or the first element of
// positional params when that element is such an object.
func (a RequestArguments) ChainID() (string, bool) {
	switch p := a.Params.(type) {
	case map[string]any:
		return chainIDFrom(p)
	case map[string]string:
		id, ok := p["chainId"]
		return id, ok && id != ""
	case []any:
		if len(p) > 0 {
			if obj, ok := p[0].(map[string]any); ok {
				return chainIDFrom(obj)
			}
		}
	}
	return "", false
}

func chainIDFrom(m map[string]any) (string, bool) {
	id, ok := m["chainId"].(string)
	return id, ok && id != ""
}

// ConnectInfo is the payload of the connect event.
type ConnectInfo struct {
	ChainID string `json:"chainId"`
}

// Message is the payload of the message event.
type Message interface {
	MessageType() string
	MessageData() any
}

// ProviderMessage is an arbitrary message with a type and data.
type ProviderMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (m ProviderMessage) MessageType() string { return m.Type }
func (m ProviderMessage) MessageData() any    { return m.Data }

// SubscriptionData is the data of an eth_subscription message.
type SubscriptionData struct {
	Subscription string `json:"subscription"`
	Result       any    `json:"result"`
}

// EthSubscription is a message carrying an eth_subscribe notification.
type EthSubscription struct {
	Type string           `json:"type"`
	Data SubscriptionData `json:"data"`
}

func (m EthSubscription) MessageType() string { return m.Type }
func (m EthSubscription) MessageData() any    { return m.Data }

// NewSubscription returns an eth_subscription message for result under a
// freshly generated subscription id.
func NewSubscription(result any) EthSubscription {
	return EthSubscription{
		Type: MessageTypeSubscription,
		Data: SubscriptionData{
			Subscription: NewSubscriptionID(),
			Result:       result,
		},
	}
}

// NewSubscriptionID returns a random 128-bit subscription id in the
// 0x-prefixed hex form nodes use.
func NewSubscriptionID() string {
	id := uuid.New()
	return "0x" + hex.EncodeToString(id[:])
}

// Provider is the minimal EIP-1193 surface: one request method plus
// subscription and unsubscription of events.
type Provider interface {
	Request(ctx context.Context, args RequestArguments) (any, error)
	Subscribe(event EventName, listener emitter.Listener) error
	Unsubscribe(event EventName, listener emitter.Listener)
}
