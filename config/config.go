package config

import (
	"fmt"
	"strings"

	"github.com/kbukum/walletmock/logger"
	"github.com/kbukum/walletmock/validation"
)

// Default provider state values.
const (
	DefaultChainID        = "0x1"
	DefaultNetworkVersion = "1"
)

// Config is the top-level configuration of a mock provider process.
type Config struct {
	Name        string         `yaml:"name" mapstructure:"name"`
	Environment string         `yaml:"environment" mapstructure:"environment"`
	Logging     logger.Config  `yaml:"logging" mapstructure:"logging"`
	Provider    ProviderConfig `yaml:"provider" mapstructure:"provider"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "test"
	}
	c.Logging.ApplyDefaults()
	c.Provider.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"test", "development"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Provider.Validate(); err != nil {
		return fmt.Errorf("config.provider: %w", err)
	}
	return nil
}

// ProviderConfig holds the initial state and behavior of a MockProvider.
type ProviderConfig struct {
	ChainID         string   `yaml:"chain_id" mapstructure:"chain_id" validate:"required,chainid"`
	NetworkVersion  string   `yaml:"network_version" mapstructure:"network_version" validate:"required,numeric"`
	Accounts        []string `yaml:"accounts" mapstructure:"accounts" validate:"dive,eth_addr"`
	SelectedAddress string   `yaml:"selected_address" mapstructure:"selected_address" validate:"omitempty,eth_addr"`
	Connected       bool     `yaml:"connected" mapstructure:"connected"`
	// Strict makes Request enforce the connected and chainId checks.
	Strict bool `yaml:"strict" mapstructure:"strict"`
}

// ApplyDefaults fills in the default chain when none is configured.
func (c *ProviderConfig) ApplyDefaults() {
	if c.ChainID == "" {
		c.ChainID = DefaultChainID
	}
	if c.NetworkVersion == "" {
		c.NetworkVersion = DefaultNetworkVersion
	}
}

// Validate validates the provider configuration.
func (c *ProviderConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.SelectedAddress == "" {
		return nil
	}
	for _, a := range c.Accounts {
		if strings.EqualFold(a, c.SelectedAddress) {
			return nil
		}
	}
	return fmt.Errorf("selected_address %s is not one of the configured accounts", c.SelectedAddress)
}
