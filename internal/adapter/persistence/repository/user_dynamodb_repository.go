package repository

import (
	"context"
	"time"

	"pombal/internal/domain/entities"
	"pombal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"
	usersIDIndex          = "id-index"
)

type userItem struct {
	Email        string `dynamodbav:"email"`
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: email (string)
//   - GSI1 (id-index): id
//
// We purposely use email as PK to guarantee one account per address.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	it := toUserItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		Email:        u.Email,
		ID:           u.ID,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.User{
		ID:           it.ID,
		Email:        it.Email,
		Name:         it.Name,
		PasswordHash: it.PasswordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
