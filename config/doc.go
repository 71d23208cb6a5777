// Package config loads MockProvider configuration.
//
// It uses Viper to read a YAML config file, godotenv to load an optional
// .env file, and environment variables (WALLETMOCK_ prefix, dots replaced
// by underscores) to override individual keys. The result is defaulted and
// validated before it is returned.
//
// # Usage
//
//	cfg, err := config.Load("walletmock")
//	p, err := mockprovider.NewFromConfig(&cfg.Provider)
//
// # File format
//
//	name: walletmock
//	logging:
//	  level: debug
//	provider:
//	  chain_id: "0x5"
//	  network_version: "5"
//	  accounts: ["0x71C7656EC7ab88b098defB751B7401B5f6d8976F"]
//	  connected: true
//	  strict: true
package config
