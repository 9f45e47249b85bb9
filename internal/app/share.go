package app

import (
	"context"
	"fmt"

	"course-quiz-service/internal/domain"
)

const (
	ShareCopiedMessage   = "Result copied to clipboard!"
	ShareFallbackMessage = "Unable to copy — please copy manually."
)

// Clipboard writes text somewhere the user can paste it from.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(ctx context.Context, text string) error

func (f ClipboardFunc) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

// ShareResult is what the UI shows after a share attempt.
type ShareResult struct {
	Text    string `json:"text"`
	Copied  bool   `json:"copied"`
	Message string `json:"message"`
}

func ShareText(score, total int, courseTitle string, level domain.Level) string {
	return fmt.Sprintf("I scored %d/%d on \"%s\" (%s) — try it out!", score, total, courseTitle, level)
}

// Share copies text to the clipboard. It never fails: without a clipboard or
// on a write error the result asks the user to copy Text by hand.
func Share(ctx context.Context, clipboard Clipboard, text string) ShareResult {
	if clipboard == nil {
		return ShareResult{Text: text, Message: ShareFallbackMessage}
	}
	if err := clipboard.WriteText(ctx, text); err != nil {
		return ShareResult{Text: text, Message: ShareFallbackMessage}
	}
	return ShareResult{Text: text, Copied: true, Message: ShareCopiedMessage}
}
