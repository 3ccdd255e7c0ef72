package notification

import (
	"context"
	"log"
	"time"

	"workorder_invoicing/internal/usecase/interfaces"
)

// LogNotifier simulates email delivery: it waits a fixed delay and logs the message.
type LogNotifier struct {
	delay time.Duration
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(delay time.Duration) *LogNotifier {
	return &LogNotifier{delay: delay}
}

func (n *LogNotifier) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	if n.delay > 0 {
		timer := time.NewTimer(n.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			log.Printf("[email][log] send aborted to=%s err=%v", msg.To, ctx.Err())
			return ctx.Err()
		case <-timer.C:
		}
	}

	log.Printf("[email][log] sent to=%s subject=%q body_len=%d", msg.To, msg.Subject, len(msg.Body))
	return nil
}
