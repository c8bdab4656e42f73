// Package logger provides structured logging for singlekit using
// zerolog.
//
// It supports JSON and console output, log level configuration from
// code or environment, and component-scoped loggers with structured
// fields. The singleton and teardown packages log their lifecycle
// events through the package-level functions, which delegate to a
// process-wide logger.
//
// # Usage
//
//	log := logger.NewFromEnv("singlekit")
//	logger.SetGlobalLogger(log)
//
//	logger.Debug("provider constructed", logger.Fields("provider", "database"))
package logger
