package repository

import (
	"context"

	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEngineersTableName = "engineers"
	engineersEmailIndex       = "email-index"
)

type engineerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	ContactNo string `dynamodbav:"contact_no"`
	Address   string `dynamodbav:"address"`
	AadharNo  string `dynamodbav:"aadhar_no"`
	PanNo     string `dynamodbav:"pan_no"`
	City      string `dynamodbav:"city"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EngineerDynamoRepository persists Engineer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type EngineerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngineerRepository = (*EngineerDynamoRepository)(nil)

func NewEngineerDynamoRepository(ddb *dynamodb.Client) *EngineerDynamoRepository {
	return &EngineerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGINEERS_TABLE", defaultEngineersTableName),
	}
}

func (r *EngineerDynamoRepository) Create(ctx context.Context, e entities.Engineer) (entities.Engineer, error) {
	av, err := attributevalue.MarshalMap(toEngineerItem(e))
	if err != nil {
		return entities.Engineer{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.Engineer{}, interfaces.ErrConflict
		}
		return entities.Engineer{}, err
	}
	return e, nil
}

func (r *EngineerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Engineer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Engineer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Engineer{}, nil
	}

	var it engineerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Engineer{}, err
	}
	return fromEngineerItem(it), nil
}

func (r *EngineerDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Engineer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(engineersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Engineer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Engineer{}, nil
	}

	var it engineerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Engineer{}, err
	}
	return fromEngineerItem(it), nil
}

func (r *EngineerDynamoRepository) List(ctx context.Context) ([]entities.Engineer, error) {
	var (
		items   []entities.Engineer
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it engineerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEngineerItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *EngineerDynamoRepository) Update(ctx context.Context, e entities.Engineer) (entities.Engineer, error) {
	av, err := attributevalue.MarshalMap(toEngineerItem(e))
	if err != nil {
		return entities.Engineer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Engineer{}, nil
		}
		return entities.Engineer{}, err
	}
	return e, nil
}

func (r *EngineerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toEngineerItem(e entities.Engineer) engineerItem {
	return engineerItem{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		ContactNo: e.ContactNo,
		Address:   e.Address,
		AadharNo:  e.AadharNo,
		PanNo:     e.PanNo,
		City:      e.City,
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}

func fromEngineerItem(it engineerItem) entities.Engineer {
	return entities.Engineer{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		ContactNo: it.ContactNo,
		Address:   it.Address,
		AadharNo:  it.AadharNo,
		PanNo:     it.PanNo,
		City:      it.City,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
