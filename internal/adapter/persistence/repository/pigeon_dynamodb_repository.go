package repository

import (
	"context"
	"errors"
	"time"

	"pombal/internal/domain/entities"
	"pombal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPigeonsTableName = "pigeons"

type pigeonItem struct {
	OwnerID             string `dynamodbav:"owner_id"`
	ID                  string `dynamodbav:"id"`
	Name                string `dynamodbav:"name"`
	RingNumber          string `dynamodbav:"ring_number"`
	DocumentationNumber string `dynamodbav:"documentation_number,omitempty"`
	Gender              string `dynamodbav:"gender"`
	Status              string `dynamodbav:"status"`
	Color               string `dynamodbav:"color,omitempty"`
	YearOfBirth         string `dynamodbav:"year_of_birth,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// PigeonDynamoRepository persists Pigeon entities in DynamoDB.
//
// Table requirements:
//   - PK: owner_id (string)
//   - SK: id (string)
//
// Ring/documentation lookups filter the owner's partition; lofts are small
// enough that a dedicated index is not warranted.

type PigeonDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPigeonRepository = (*PigeonDynamoRepository)(nil)

func NewPigeonDynamoRepository(ddb *dynamodb.Client) *PigeonDynamoRepository {
	return &PigeonDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PIGEONS_TABLE", defaultPigeonsTableName),
	}
}

func (r *PigeonDynamoRepository) Create(ctx context.Context, p entities.Pigeon) (entities.Pigeon, error) {
	it := toPigeonItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Pigeon{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Pigeon{}, err
	}
	return p, nil
}

func (r *PigeonDynamoRepository) GetByID(ctx context.Context, ownerID, id string) (entities.Pigeon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
			"id":       &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pigeon{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pigeon{}, nil
	}

	var it pigeonItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pigeon{}, err
	}
	return fromPigeonItem(it), nil
}

func (r *PigeonDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Pigeon, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Pigeon, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pigeonItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPigeonItem(it))
	}
	return items, nil
}

func (r *PigeonDynamoRepository) GetByRingNumber(ctx context.Context, ownerID, ringNumber string) (entities.Pigeon, error) {
	return r.getByAttribute(ctx, ownerID, "ring_number", ringNumber)
}

func (r *PigeonDynamoRepository) GetByDocumentationNumber(ctx context.Context, ownerID, documentationNumber string) (entities.Pigeon, error) {
	return r.getByAttribute(ctx, ownerID, "documentation_number", documentationNumber)
}

func (r *PigeonDynamoRepository) getByAttribute(ctx context.Context, ownerID, attr, value string) (entities.Pigeon, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		FilterExpression:       aws.String("#attr = :val"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
			":val": &types.AttributeValueMemberS{Value: value},
		},
		ExpressionAttributeNames: map[string]string{
			"#attr": attr,
		},
	})
	if err != nil {
		return entities.Pigeon{}, err
	}
	if len(out.Items) == 0 {
		return entities.Pigeon{}, nil
	}

	var it pigeonItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Pigeon{}, err
	}
	return fromPigeonItem(it), nil
}

func (r *PigeonDynamoRepository) UpdateStatus(ctx context.Context, ownerID, id string, status entities.PigeonStatus) (entities.Pigeon, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
			"id":       &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Pigeon{}, nil
		}
		return entities.Pigeon{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Pigeon{}, nil
	}
	var it pigeonItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Pigeon{}, err
	}
	return fromPigeonItem(it), nil
}

func toPigeonItem(p entities.Pigeon) pigeonItem {
	return pigeonItem{
		OwnerID:             p.OwnerID,
		ID:                  p.ID,
		Name:                p.Name,
		RingNumber:          p.RingNumber,
		DocumentationNumber: p.DocumentationNumber,
		Gender:              string(p.Gender),
		Status:              string(p.Status),
		Color:               p.Color,
		YearOfBirth:         p.YearOfBirth,
		CreatedAt:           p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPigeonItem(it pigeonItem) entities.Pigeon {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Pigeon{
		ID:                  it.ID,
		OwnerID:             it.OwnerID,
		Name:                it.Name,
		RingNumber:          it.RingNumber,
		DocumentationNumber: it.DocumentationNumber,
		Gender:              entities.PigeonGender(it.Gender),
		Status:              entities.PigeonStatus(it.Status),
		Color:               it.Color,
		YearOfBirth:         it.YearOfBirth,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
