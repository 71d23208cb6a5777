package mockprovider

import "github.com/kbukum/walletmock/config"

// State is the provider's view of the wallet.
type State struct {
	Connected       bool     `json:"connected"`
	Accounts        []string `json:"accounts"`
	ChainID         string   `json:"chainId"`
	NetworkVersion  string   `json:"networkVersion"`
	SelectedAddress string   `json:"selectedAddress"`
}

// DefaultState returns the state a new provider starts with.
func DefaultState() State {
	return State{
		Connected:       false,
		Accounts:        []string{},
		ChainID:         config.DefaultChainID,
		NetworkVersion:  config.DefaultNetworkVersion,
		SelectedAddress: "",
	}
}

func (s State) clone() State {
	c := s
	c.Accounts = make([]string, len(s.Accounts))
	copy(c.Accounts, s.Accounts)
	return c
}

func stateFromConfig(cfg *config.ProviderConfig) State {
	return State{
		Connected:       cfg.Connected,
		Accounts:        cfg.Accounts,
		ChainID:         cfg.ChainID,
		NetworkVersion:  cfg.NetworkVersion,
		SelectedAddress: cfg.SelectedAddress,
	}.clone()
}
