// Package awsconfig builds the aws.Config shared by the DynamoDB store and the SES notifier.
package awsconfig

import (
	"context"

	appconfig "workorder_invoicing/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Load resolves region and static credentials from cfg.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them, so the
// defaults are placeholder values.
func Load(ctx context.Context, cfg appconfig.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	)
}
