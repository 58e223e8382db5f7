package database

import (
	"context"

	appconfig "controlserv/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoDBClient creates a DynamoDB client from the storage configuration.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires
// them, so the config layer defaults both keys to "local".
func NewDynamoDBClient(ctx context.Context, storage appconfig.StorageConfig) (*dynamodb.Client, error) {
	creds := credentials.NewStaticCredentialsProvider(storage.AccessKey, storage.SecretKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(storage.Region),
		config.WithCredentialsProvider(creds),
	}

	if storage.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: storage.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}
