package notification

import (
	"context"
	"errors"
	"fmt"
	"log"

	"workorder_invoicing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var ErrMissingRecipient = errors.New("missing email recipient")

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESNotifier sends plain-text email through Amazon SES v2.
type SESNotifier struct {
	client sesAPI
	sender string
}

var _ interfaces.INotifier = (*SESNotifier)(nil)

func NewSESNotifier(awsCfg aws.Config, sender string) *SESNotifier {
	log.Printf("[email][ses] client initialized region=%s sender=%s", awsCfg.Region, sender)
	return &SESNotifier{client: sesv2.NewFromConfig(awsCfg), sender: sender}
}

func (n *SESNotifier) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	if msg.To == "" {
		return ErrMissingRecipient
	}

	out, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.sender),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.Body), Charset: aws.String("UTF-8")},
				},
			},
		},
	})
	if err != nil {
		log.Printf("[email][ses] send failed to=%s err=%v", msg.To, err)
		return fmt.Errorf("%w: ses: %v", interfaces.ErrUpstreamFailure, err)
	}

	log.Printf("[email][ses] sent to=%s message_id=%s", msg.To, aws.ToString(out.MessageId))
	return nil
}
