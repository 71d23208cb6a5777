// Package logger provides structured logging for walletmock using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. Loggers built with
// NewWithWriter write to any io.Writer, which lets tests assert on the
// warnings a provider prints for deprecated calls.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("mockprovider").WithComponent("request")
//	log.Info("request", logger.Fields(logger.FieldMethod, "eth_chainId"))
package logger
