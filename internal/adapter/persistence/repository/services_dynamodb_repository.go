package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"controlserv/internal/domain/entities"
	"controlserv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CollectionKey is the single storage key under which the whole collection
// lives, kept identical to the original storage key for backup compatibility.
const CollectionKey = "controlServ_servicos"

type collectionItem struct {
	Key       string `dynamodbav:"key"`
	Records   string `dynamodbav:"records"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServicesDynamoRepository persists the collection as one DynamoDB item.
//
// Table requirements:
//   - PK: key (string)
//
// The whole collection is one serialized attribute, so every write is a full
// atomic replace and readers never see a partially updated collection.

type ServicesDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCollectionRepository = (*ServicesDynamoRepository)(nil)

func NewServicesDynamoRepository(ddb *dynamodb.Client, tableName string) *ServicesDynamoRepository {
	return &ServicesDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServicesDynamoRepository) Save(ctx context.Context, records []entities.ServiceRecord) error {
	if records == nil {
		records = []entities.ServiceRecord{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	return r.putBlob(ctx, blob)
}

func (r *ServicesDynamoRepository) Load(ctx context.Context) ([]entities.ServiceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: CollectionKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	if len(out.Item) == 0 {
		return []entities.ServiceRecord{}, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrCorruptData, err)
	}
	return decodeCollection([]byte(it.Records))
}

func (r *ServicesDynamoRepository) Clear(ctx context.Context) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: CollectionKey},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	return nil
}

func (r *ServicesDynamoRepository) ReplaceRaw(ctx context.Context, blob []byte) error {
	if err := validateImportBlob(blob); err != nil {
		return err
	}
	return r.putBlob(ctx, blob)
}

func (r *ServicesDynamoRepository) putBlob(ctx context.Context, blob []byte) error {
	it := collectionItem{
		Key:       CollectionKey,
		Records:   string(blob),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
	}
	return nil
}
