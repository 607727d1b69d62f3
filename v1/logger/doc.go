// Package logger provides a thin wrapper around Uber's Zap logger with the
// structured-field conventions used throughout this repository.
//
// The wrapper exposes leveled methods with the signature
// (msg string, err error, fields ...map[string]interface{}) so call sites can
// attach an error and arbitrary context without importing zap themselves. The
// underlying zap.Logger stays reachable via Logger.Zap for the rare case that
// needs it.
//
// Configuration comes from a Config struct (yaml/envconfig tags, see
// FromEnv), and the package ships an Fx module that provides the logger and
// flushes it on shutdown:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(logger.FromEnv),
//	)
package logger
