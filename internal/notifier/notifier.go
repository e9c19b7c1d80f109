package notifier

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Notifier delivers formatted text.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// WriterNotifier writes messages to an io.Writer, separated by a blank line.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := fmt.Fprintf(n.w, "%s\n", text); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}
