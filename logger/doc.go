// Package logger provides structured logging for envbind, built on zerolog.
//
// The resolver and source adapters take a *Logger; library consumers that
// want silence pass Nop(). Fields are plain maps:
//
//	log := logger.NewDefault("resolver")
//	log.Debug("field resolved", map[string]interface{}{"key": "MYCONFIG_PORT"})
package logger
