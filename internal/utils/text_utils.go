package utils

import (
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// ErrMessageTooLong is returned when a message exceeds the configured limit
var ErrMessageTooLong = errors.New("message exceeds the maximum length")

// TextProcessor cleans inbound chat text before it reaches the monitor
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// CheckLength rejects text longer than maxSize bytes.
// A non-positive maxSize disables the check.
func (tp *TextProcessor) CheckLength(text string, maxSize int) error {
	if maxSize <= 0 || len(text) <= maxSize {
		return nil
	}

	tp.logger.Debug("Message rejected",
		zap.Int("size", len(text)),
		zap.Int("max_size", maxSize))

	return ErrMessageTooLong
}

// SanitizeUTF8 drops invalid UTF-8 byte sequences
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	sanitized := strings.ToValidUTF8(text, "")
	tp.logger.Debug("Message sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}

// Normalize sanitizes and NFC-normalizes text. The full message is kept.
func (tp *TextProcessor) Normalize(text string) string {
	return norm.NFC.String(tp.SanitizeUTF8(text))
}
