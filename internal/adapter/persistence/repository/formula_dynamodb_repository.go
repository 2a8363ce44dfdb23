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

const defaultFormulasTableName = "formulas"

type eggItem struct {
	ID                    string `dynamodbav:"id"`
	DeliveredAt           string `dynamodbav:"delivered_at"`
	TransformedToPigeonAt string `dynamodbav:"transformed_to_pigeon_at,omitempty"`
	PigeonID              string `dynamodbav:"pigeon_id,omitempty"`
}

type historyItem struct {
	Action      string `dynamodbav:"action"`
	Description string `dynamodbav:"description"`
	Date        string `dynamodbav:"date"`
}

type formulaItem struct {
	OwnerID       string        `dynamodbav:"owner_id"`
	ID            string        `dynamodbav:"id"`
	FatherID      string        `dynamodbav:"father_id,omitempty"`
	FatherName    string        `dynamodbav:"father_name"`
	MotherID      string        `dynamodbav:"mother_id,omitempty"`
	MotherName    string        `dynamodbav:"mother_name"`
	CaseNumber    string        `dynamodbav:"case_number,omitempty"`
	YearOfFormula string        `dynamodbav:"year_of_formula"`
	Eggs          []eggItem     `dynamodbav:"eggs"`
	Children      []string      `dynamodbav:"children"`
	Status        string        `dynamodbav:"status"`
	History       []historyItem `dynamodbav:"history"`
	CreatedAt     string        `dynamodbav:"created_at"`
	UpdatedAt     string        `dynamodbav:"updated_at"`
}

// FormulaDynamoRepository persists Formula entities in DynamoDB.
//
// Table requirements:
//   - PK: owner_id (string)
//   - SK: id (string)
//
// Update writes the full status/eggs/children/history lists guarded only by
// an existence condition; concurrent updates to the same formula are
// last-write-wins per attribute.

type FormulaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFormulaRepository = (*FormulaDynamoRepository)(nil)

func NewFormulaDynamoRepository(ddb *dynamodb.Client) *FormulaDynamoRepository {
	return &FormulaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORMULAS_TABLE", defaultFormulasTableName),
	}
}

func (r *FormulaDynamoRepository) Create(ctx context.Context, f entities.Formula) (entities.Formula, error) {
	it := toFormulaItem(f)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Formula{}, err
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
		return entities.Formula{}, err
	}
	return f, nil
}

func (r *FormulaDynamoRepository) GetByID(ctx context.Context, ownerID, id string) (entities.Formula, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
			"id":       &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Formula{}, err
	}
	if len(out.Item) == 0 {
		return entities.Formula{}, nil
	}

	var it formulaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Formula{}, err
	}
	return fromFormulaItem(it), nil
}

func (r *FormulaDynamoRepository) Update(ctx context.Context, f entities.Formula) (entities.Formula, error) {
	it := toFormulaItem(f)

	eggsAV, err := attributevalue.Marshal(it.Eggs)
	if err != nil {
		return entities.Formula{}, err
	}
	childrenAV, err := attributevalue.Marshal(it.Children)
	if err != nil {
		return entities.Formula{}, err
	}
	historyAV, err := attributevalue.Marshal(it.History)
	if err != nil {
		return entities.Formula{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: f.OwnerID},
			"id":       &types.AttributeValueMemberS{Value: f.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #eggs = :eggs, #children = :children, #history = :history, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: it.Status},
			":eggs":       eggsAV,
			":children":   childrenAV,
			":history":    historyAV,
			":updated_at": &types.AttributeValueMemberS{Value: it.UpdatedAt},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#eggs":       "eggs",
			"#children":   "children",
			"#history":    "history",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Formula{}, nil
		}
		return entities.Formula{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Formula{}, nil
	}
	var updated formulaItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.Formula{}, err
	}
	return fromFormulaItem(updated), nil
}

func (r *FormulaDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Formula, error) {
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

	items := make([]entities.Formula, 0, len(out.Items))
	for _, raw := range out.Items {
		var it formulaItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromFormulaItem(it))
	}
	return items, nil
}

func (r *FormulaDynamoRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *FormulaDynamoRepository) CountByStatus(ctx context.Context, ownerID string, status entities.FormulaStatus) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid":    &types.AttributeValueMemberS{Value: ownerID},
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func toFormulaItem(f entities.Formula) formulaItem {
	eggs := make([]eggItem, 0, len(f.Eggs))
	for _, e := range f.Eggs {
		it := eggItem{
			ID:          e.ID,
			DeliveredAt: e.DeliveredAt.UTC().Format(time.RFC3339Nano),
			PigeonID:    e.PigeonID,
		}
		if e.TransformedToPigeonAt != nil {
			it.TransformedToPigeonAt = e.TransformedToPigeonAt.UTC().Format(time.RFC3339Nano)
		}
		eggs = append(eggs, it)
	}

	history := make([]historyItem, 0, len(f.History))
	for _, h := range f.History {
		history = append(history, historyItem{
			Action:      string(h.Action),
			Description: h.Description,
			Date:        h.Date.UTC().Format(time.RFC3339Nano),
		})
	}

	children := f.Children
	if children == nil {
		children = []string{}
	}

	return formulaItem{
		OwnerID:       f.OwnerID,
		ID:            f.ID,
		FatherID:      f.Father.ID,
		FatherName:    f.Father.Name,
		MotherID:      f.Mother.ID,
		MotherName:    f.Mother.Name,
		CaseNumber:    f.CaseNumber,
		YearOfFormula: f.YearOfFormula,
		Eggs:          eggs,
		Children:      children,
		Status:        string(f.Status),
		History:       history,
		CreatedAt:     f.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     f.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFormulaItem(it formulaItem) entities.Formula {
	eggs := make([]entities.Egg, 0, len(it.Eggs))
	for _, e := range it.Eggs {
		egg := entities.Egg{ID: e.ID, PigeonID: e.PigeonID}
		egg.DeliveredAt, _ = time.Parse(time.RFC3339Nano, e.DeliveredAt)
		if e.TransformedToPigeonAt != "" {
			if ts, err := time.Parse(time.RFC3339Nano, e.TransformedToPigeonAt); err == nil {
				egg.TransformedToPigeonAt = &ts
			}
		}
		eggs = append(eggs, egg)
	}

	history := make([]entities.HistoryEntry, 0, len(it.History))
	for _, h := range it.History {
		entry := entities.HistoryEntry{
			Action:      entities.HistoryAction(h.Action),
			Description: h.Description,
		}
		entry.Date, _ = time.Parse(time.RFC3339Nano, h.Date)
		history = append(history, entry)
	}

	children := it.Children
	if children == nil {
		children = []string{}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Formula{
		ID:            it.ID,
		OwnerID:       it.OwnerID,
		Father:        entities.Parent{ID: it.FatherID, Name: it.FatherName},
		Mother:        entities.Parent{ID: it.MotherID, Name: it.MotherName},
		CaseNumber:    it.CaseNumber,
		YearOfFormula: it.YearOfFormula,
		Eggs:          eggs,
		Children:      children,
		Status:        entities.FormulaStatus(it.Status),
		History:       history,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
