package mockprovider

import (
	"context"

	"github.com/kbukum/walletmock/eip1193"
	"github.com/kbukum/walletmock/errors"
	"github.com/kbukum/walletmock/logger"
)

// The Emit* methods are not part of EIP-1193. They fire provider events
// for test setup and never change the provider state.

// EmitConnect fires connect with info.
func (p *MockProvider) EmitConnect(info eip1193.ConnectInfo) {
	p.emit(eip1193.EventConnect, info)
}

// EmitDisconnect fires disconnect with err.
func (p *MockProvider) EmitDisconnect(err *errors.ProviderRpcError) {
	p.emit(eip1193.EventDisconnect, err)
}

// EmitChainChanged fires chainChanged with chainID.
func (p *MockProvider) EmitChainChanged(chainID string) {
	p.emit(eip1193.EventChainChanged, chainID)
}

// EmitAccountsChanged fires accountsChanged with accounts.
func (p *MockProvider) EmitAccountsChanged(accounts []string) {
	p.emit(eip1193.EventAccountsChanged, accounts)
}

// EmitMessage fires message with msg.
func (p *MockProvider) EmitMessage(msg eip1193.Message) {
	p.emit(eip1193.EventMessage, msg)
}

// EmitClose emits a message carrying a close notification, for consumers
// still watching for it, and then fails.
//
// Deprecated: the close event is superseded by disconnect.
func (p *MockProvider) EmitClose() error {
	p.log.Warn("[deprecated] emitClose", logger.DeprecationFields(
		eip1193.EventClose.String(), eip1193.EventDisconnect.String()))
	p.metrics.RecordDeprecated(context.Background(), "emitClose")
	p.EmitMessage(eip1193.ProviderMessage{
		Type: eip1193.MessageTypeSubscription,
		Data: "close",
	})
	return errors.DeprecatedEmit(eip1193.EventClose.String(), eip1193.EventDisconnect.String())
}

// EmitNetworkChanged always fails.
//
// Deprecated: the networkChanged event is superseded by chainChanged.
func (p *MockProvider) EmitNetworkChanged() error {
	return errors.DeprecatedEmit(eip1193.EventNetworkChanged.String(), eip1193.EventChainChanged.String())
}

// EmitNotification always fails.
//
// Deprecated: the notification event is superseded by message.
func (p *MockProvider) EmitNotification() error {
	return errors.DeprecatedEmit(eip1193.EventNotification.String(), eip1193.EventMessage.String())
}

func (p *MockProvider) emit(event eip1193.EventName, args ...any) bool {
	p.metrics.RecordEvent(context.Background(), event.String())
	return p.events.Emit(event, args...)
}
