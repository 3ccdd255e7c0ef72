package interfaces

import "context"

// EmailMessage is a rendered, ready-to-send email.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}

// INotifier abstracts email delivery (log mock, AWS SES).
type INotifier interface {
	Send(ctx context.Context, msg EmailMessage) error
}
