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

const defaultPhotoSetsTableName = "photo_sets"

type photoSetItem struct {
	ID            string `dynamodbav:"id"`
	BeforeImageID string `dynamodbav:"before_image_id,omitempty"`
	AfterImageID  string `dynamodbav:"after_image_id,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`
	Date          string `dynamodbav:"date"`
}

// PhotoSetDynamoRepository persists PhotoSet entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PhotoSetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPhotoSetRepository = (*PhotoSetDynamoRepository)(nil)

func NewPhotoSetDynamoRepository(ddb *dynamodb.Client) *PhotoSetDynamoRepository {
	return &PhotoSetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PHOTO_SETS_TABLE", defaultPhotoSetsTableName),
	}
}

func (r *PhotoSetDynamoRepository) Create(ctx context.Context, p entities.PhotoSet) (entities.PhotoSet, error) {
	av, err := attributevalue.MarshalMap(toPhotoSetItem(p))
	if err != nil {
		return entities.PhotoSet{}, err
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
			return entities.PhotoSet{}, interfaces.ErrConflict
		}
		return entities.PhotoSet{}, err
	}
	return p, nil
}

func (r *PhotoSetDynamoRepository) GetByID(ctx context.Context, id string) (entities.PhotoSet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PhotoSet{}, err
	}
	if len(out.Item) == 0 {
		return entities.PhotoSet{}, nil
	}

	var it photoSetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PhotoSet{}, err
	}
	return fromPhotoSetItem(it), nil
}

func (r *PhotoSetDynamoRepository) Update(ctx context.Context, p entities.PhotoSet) (entities.PhotoSet, error) {
	av, err := attributevalue.MarshalMap(toPhotoSetItem(p))
	if err != nil {
		return entities.PhotoSet{}, err
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
			return entities.PhotoSet{}, interfaces.ErrNotFound
		}
		return entities.PhotoSet{}, err
	}
	return p, nil
}

func (r *PhotoSetDynamoRepository) List(ctx context.Context) ([]entities.PhotoSet, error) {
	var (
		items   []entities.PhotoSet
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
			var it photoSetItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPhotoSetItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *PhotoSetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPhotoSetItem(p entities.PhotoSet) photoSetItem {
	return photoSetItem{
		ID:            p.ID,
		BeforeImageID: p.BeforeImageID,
		AfterImageID:  p.AfterImageID,
		Notes:         p.Notes,
		Date:          formatTime(p.Date),
	}
}

func fromPhotoSetItem(it photoSetItem) entities.PhotoSet {
	return entities.PhotoSet{
		ID:            it.ID,
		BeforeImageID: it.BeforeImageID,
		AfterImageID:  it.AfterImageID,
		Notes:         it.Notes,
		Date:          parseTime(it.Date),
	}
}
