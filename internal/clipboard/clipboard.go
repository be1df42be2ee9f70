// Package clipboard implements the contact section's copy action and the
// transient notifications it produces.
package clipboard

import (
	"context"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/logger"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// WriterFunc adapts a func to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

type Kind string

const (
	Success Kind = "success"
	Failure Kind = "error"
)

// DefaultTTL is how long a notification stays on screen.
const DefaultTTL = 3 * time.Second

// Notification is a transient message shown after a copy attempt.
type Notification struct {
	Kind    Kind
	Label   string
	Message string
	TTL     time.Duration
}

func (n Notification) OK() bool {
	return n.Kind == Success
}

// SuccessMessage and FailureMessage are shared with the browser script so
// both paths show the same text.
func SuccessMessage(label string) string {
	return fmt.Sprintf("%s copied to clipboard!", label)
}

func FailureMessage(label string) string {
	return fmt.Sprintf("Failed to copy %s.", label)
}

// Copier performs copy actions. A failed write is reported once and never
// retried.
type Copier struct {
	writer Writer
	log    *logger.Logger
	ttl    time.Duration
}

func NewCopier(w Writer, log *logger.Logger) *Copier {
	return &Copier{writer: w, log: log, ttl: DefaultTTL}
}

// Copy writes value and returns the notification to show.
func (c *Copier) Copy(ctx context.Context, value, label string) Notification {
	if err := c.writer.WriteText(ctx, value); err != nil {
		c.log.Error(err, "failed to copy text", map[string]any{"label": label})
		return Notification{Kind: Failure, Label: label, Message: FailureMessage(label), TTL: c.ttl}
	}
	return Notification{Kind: Success, Label: label, Message: SuccessMessage(label), TTL: c.ttl}
}
