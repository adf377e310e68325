package repository

import (
	"context"
	"time"

	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersStatusIndex      = "status-index"
)

type orderItem struct {
	ID                string `dynamodbav:"id"`
	ServiceboyName    string `dynamodbav:"serviceboy_name"`
	ServiceboyEmail   string `dynamodbav:"serviceboy_email"`
	ServiceboyContact string `dynamodbav:"serviceboy_contact"`
	ClientName        string `dynamodbav:"client_name"`
	PhoneNumber       string `dynamodbav:"phone_number"`
	Address           string `dynamodbav:"address"`
	BillAmount        string `dynamodbav:"bill_amount"`
	ServiceType       string `dynamodbav:"service_type"`
	Status            string `dynamodbav:"status"`
	ServiceDate       string `dynamodbav:"service_date"`
	ServiceTime       string `dynamodbav:"service_time"`
	CompletedAt       string `dynamodbav:"completed_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// MarkPending rewrites only status and updated_at; completed_at keeps its old
// value until the next MarkCompleted overwrites it.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
			return entities.ServiceOrder{}, interfaces.ErrConflict
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.ServiceOrder, error) {
	var (
		items   []entities.ServiceOrder
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *OrderDynamoRepository) MarkCompleted(ctx context.Context, id string, completedAt time.Time) (entities.ServiceOrder, error) {
	return r.update(ctx, id,
		"SET #status = :status, #completed_at = :completed_at, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(entities.OrderStatusCompleted)},
			":completed_at": &types.AttributeValueMemberS{Value: formatTime(completedAt)},
			":updated_at":   &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		map[string]string{
			"#status":       "status",
			"#completed_at": "completed_at",
			"#updated_at":   "updated_at",
		})
}

func (r *OrderDynamoRepository) MarkPending(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return r.update(ctx, id,
		"SET #status = :status, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		})
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *OrderDynamoRepository) update(ctx context.Context, id, expr string, values map[string]types.AttributeValue, names map[string]string) (entities.ServiceOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceOrder{}, interfaces.ErrNotFound
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, interfaces.ErrNotFound
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.ServiceOrder) orderItem {
	return orderItem{
		ID:                o.ID,
		ServiceboyName:    o.ServiceboyName,
		ServiceboyEmail:   o.ServiceboyEmail,
		ServiceboyContact: o.ServiceboyContact,
		ClientName:        o.ClientName,
		PhoneNumber:       o.PhoneNumber,
		Address:           o.Address,
		BillAmount:        o.BillAmount,
		ServiceType:       o.ServiceType,
		Status:            string(o.Status),
		ServiceDate:       o.ServiceDate,
		ServiceTime:       o.ServiceTime,
		CompletedAt:       formatTime(o.CompletedAt),
		CreatedAt:         formatTime(o.CreatedAt),
		UpdatedAt:         formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:                it.ID,
		ServiceboyName:    it.ServiceboyName,
		ServiceboyEmail:   it.ServiceboyEmail,
		ServiceboyContact: it.ServiceboyContact,
		ClientName:        it.ClientName,
		PhoneNumber:       it.PhoneNumber,
		Address:           it.Address,
		BillAmount:        it.BillAmount,
		ServiceType:       it.ServiceType,
		Status:            entities.OrderStatus(it.Status),
		ServiceDate:       it.ServiceDate,
		ServiceTime:       it.ServiceTime,
		CompletedAt:       parseTime(it.CompletedAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
