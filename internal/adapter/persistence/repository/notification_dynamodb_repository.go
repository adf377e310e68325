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
	defaultNotificationsTableName = "notifications"
	notificationsUserEmailIndex   = "user_email-index"
)

type notificationItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	IsRead      bool   `dynamodbav:"is_read"`
	UserEmail   string `dynamodbav:"user_email"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_email-index (PK: user_email)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListAll(ctx context.Context) ([]entities.Notification, error) {
	var (
		items   []entities.Notification
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
		chunk, err := unmarshalNotifications(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, chunk...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *NotificationDynamoRepository) ListByUserEmail(ctx context.Context, email string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserEmailIndex),
		KeyConditionExpression: aws.String("user_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalNotifications(out.Items)
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET is_read = :read"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if isConditionalCheckFailed(err) {
		return nil
	}
	return err
}

// DeleteByUserEmail removes the recipient's whole feed, one item at a time.
// The feed is small (it is pruned by the user), so batching is not worth the
// unprocessed-items handling.
func (r *NotificationDynamoRepository) DeleteByUserEmail(ctx context.Context, email string) (int, error) {
	items, err := r.ListByUserEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, n := range items {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: n.ID},
			},
		})
		if err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

func unmarshalNotifications(raw []map[string]types.AttributeValue) ([]entities.Notification, error) {
	items := make([]entities.Notification, 0, len(raw))
	for _, m := range raw {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationItem(it))
	}
	return items, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:          n.ID,
		Description: n.Description,
		IsRead:      n.IsRead,
		UserEmail:   n.UserEmail,
		CreatedAt:   formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:          it.ID,
		Description: it.Description,
		IsRead:      it.IsRead,
		UserEmail:   it.UserEmail,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
