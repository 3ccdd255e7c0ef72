package database

import (
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client. A non-empty endpoint (e.g. http://dynamodb:8000)
// points the client at DynamoDB Local.
func ConnectDynamoDB(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	if endpoint == "" {
		log.Printf("[storage][dynamodb] client initialized region=%s", awsCfg.Region)
		return dynamodb.NewFromConfig(awsCfg)
	}

	log.Printf("[storage][dynamodb] client initialized region=%s endpoint=%s", awsCfg.Region, endpoint)
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
}
