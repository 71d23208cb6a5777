package mockprovider

import "github.com/kbukum/walletmock/eip1193"

// deprecatedEvents maps each legacy event to the event that replaced it.
// Its keys are exactly eip1193.DeprecatedEvents().
var deprecatedEvents = map[eip1193.EventName]eip1193.EventName{
	eip1193.EventClose:          eip1193.EventDisconnect,
	eip1193.EventNetworkChanged: eip1193.EventChainChanged,
	eip1193.EventNotification:   eip1193.EventMessage,
}

// DeprecatedEventMap returns a copy of the legacy event → replacement table.
func DeprecatedEventMap() map[eip1193.EventName]eip1193.EventName {
	m := make(map[eip1193.EventName]eip1193.EventName, len(deprecatedEvents))
	for k, v := range deprecatedEvents {
		m[k] = v
	}
	return m
}

// Replacement returns the event that replaced a legacy event.
func Replacement(event eip1193.EventName) (eip1193.EventName, bool) {
	r, ok := deprecatedEvents[event]
	return r, ok
}
