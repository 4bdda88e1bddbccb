// Package logging provides structured logging utilities for gmail-drive-pipe.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (email anonymization)
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "gmail.search")
//	logger.Info("searching messages",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("message processed",
//	    logging.UserHash(senderEmail))
//
// # Security Considerations
//
// Sender emails are hashed to prevent PII leakage while still allowing log
// correlation across a run.
package logging
