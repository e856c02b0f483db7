// Package logger provides a structured logging facade built on the Zap logging library.
// It manages a process-wide logger with an adjustable level and exposes
// context-aware helpers for plain, formatted, and key-value logging,
// so call sites stay terse while remaining traceable.
package logger
