// Package logger provides a structured logging solution using the Zap logging library.
// It keeps a process-wide sugared logger with an adjustable level, context-aware
// logging helpers, and key-value variants for structured output.
// Loggers can also travel with a context via ToContext/FromContext,
// which keeps call sites terse while allowing per-scope overrides.
package logger
