package eip1193

// EventName identifies a provider event.
type EventName string

// Current events.
const (
	EventConnect         EventName = "connect"
	EventDisconnect      EventName = "disconnect"
	EventChainChanged    EventName = "chainChanged"
	EventAccountsChanged EventName = "accountsChanged"
	EventMessage         EventName = "message"
)

// Deprecated events. Subscribing to any of these fails.
const (
	EventClose          EventName = "close"
	EventNetworkChanged EventName = "networkChanged"
	EventNotification   EventName = "notification"
)

// Events returns the current event names in declaration order.
func Events() []EventName {
	return []EventName{
		EventConnect,
		EventDisconnect,
		EventChainChanged,
		EventAccountsChanged,
		EventMessage,
	}
}

// DeprecatedEvents returns the legacy event names in declaration order.
func DeprecatedEvents() []EventName {
	return []EventName{
		EventClose,
		EventNetworkChanged,
		EventNotification,
	}
}

// IsDeprecated reports whether e is a legacy event name.
func (e EventName) IsDeprecated() bool {
	switch e {
	case EventClose, EventNetworkChanged, EventNotification:
		return true
	}
	return false
}

// IsKnown reports whether e belongs to the event taxonomy.
func (e EventName) IsKnown() bool {
	switch e {
	case EventConnect, EventDisconnect, EventChainChanged, EventAccountsChanged, EventMessage:
		return true
	}
	return e.IsDeprecated()
}

func (e EventName) String() string { return string(e) }
