package notifier

import (
	"bufio"
	"context"
	"io"
	"log"
	"strings"
)

// CommandHandler is called when a user command is received.
type CommandHandler func(command string) string

// ReadCommands reads one command per line from r and sends each non-empty reply
// through n. Blocks until r is exhausted or ctx is cancelled.
func ReadCommands(ctx context.Context, r io.Reader, handler CommandHandler, n Notifier) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Println("[INFO] command reader stopped")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					return err
				default:
					return nil
				}
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			log.Printf("[INFO] received command: %s", text)
			if reply := handler(text); reply != "" {
				if err := n.Send(ctx, reply); err != nil {
					log.Printf("[ERROR] send reply: %v", err)
				}
			}
		}
	}
}
