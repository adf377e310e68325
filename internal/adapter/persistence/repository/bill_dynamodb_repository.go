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
	defaultBillsTableName = "bills"
	billsServiceBoyIndex  = "service_boy_name-index"
	billsStatusDateIndex  = "status-date-index"
)

type billItem struct {
	BillNumber     string `dynamodbav:"bill_number"`
	CustomerName   string `dynamodbav:"customer_name"`
	ContactNumber  string `dynamodbav:"contact_number"`
	Address        string `dynamodbav:"address"`
	ServiceType    string `dynamodbav:"service_type"`
	ServiceBoyName string `dynamodbav:"service_boy_name"`
	ServiceCharge  string `dynamodbav:"service_charge"`
	Total          string `dynamodbav:"total"`
	PaymentMethod  string `dynamodbav:"payment_method"`
	CashGiven      string `dynamodbav:"cash_given,omitempty"`
	Change         string `dynamodbav:"change,omitempty"`
	Notes          string `dynamodbav:"notes,omitempty"`
	Signature      string `dynamodbav:"signature,omitempty"`
	Status         string `dynamodbav:"status"`
	Date           string `dynamodbav:"date"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// BillDynamoRepository persists Bill entities in DynamoDB.
//
// Table requirements:
//   - PK: bill_number (string); the human-readable number is the document id
//   - GSI: service_boy_name-index (PK: service_boy_name)
//   - GSI: status-date-index (PK: status, SK: date); revenue windows query
//     this index with the fixed "paid" status and an RFC3339 date range
//
// Bills are write-once; there is no update path.

type BillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb *dynamodb.Client) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLS_TABLE", defaultBillsTableName),
	}
}

func (r *BillDynamoRepository) Create(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return entities.Bill{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#bill_number)"),
		ExpressionAttributeNames: map[string]string{
			"#bill_number": "bill_number",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Bill{}, interfaces.ErrConflict
		}
		return entities.Bill{}, err
	}
	return b, nil
}

func (r *BillDynamoRepository) GetByNumber(ctx context.Context, billNumber string) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"bill_number": &types.AttributeValueMemberS{Value: billNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) List(ctx context.Context) ([]entities.Bill, error) {
	var (
		items   []entities.Bill
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
		chunk, err := unmarshalBills(out.Items)
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

func (r *BillDynamoRepository) ListByServiceBoyName(ctx context.Context, name string) ([]entities.Bill, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(billsServiceBoyIndex),
		KeyConditionExpression: aws.String("service_boy_name = :name"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBills(out.Items)
}

func (r *BillDynamoRepository) ListPaidBetween(ctx context.Context, from, to time.Time) ([]entities.Bill, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(billsStatusDateIndex),
		KeyConditionExpression: aws.String("#status = :paid AND #date BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
			"#date":   "date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberS{Value: entities.BillStatusPaid},
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBills(out.Items)
}

func unmarshalBills(raw []map[string]types.AttributeValue) ([]entities.Bill, error) {
	items := make([]entities.Bill, 0, len(raw))
	for _, m := range raw {
		var it billItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBillItem(it))
	}
	return items, nil
}

func toBillItem(b entities.Bill) billItem {
	return billItem{
		BillNumber:     b.BillNumber,
		CustomerName:   b.CustomerName,
		ContactNumber:  b.ContactNumber,
		Address:        b.Address,
		ServiceType:    b.ServiceType,
		ServiceBoyName: b.ServiceBoyName,
		ServiceCharge:  b.ServiceCharge,
		Total:          b.Total,
		PaymentMethod:  string(b.PaymentMethod),
		CashGiven:      b.CashGiven,
		Change:         b.Change,
		Notes:          b.Notes,
		Signature:      b.Signature,
		Status:         b.Status,
		Date:           formatTime(b.Date),
		CreatedAt:      formatTime(b.CreatedAt),
	}
}

func fromBillItem(it billItem) entities.Bill {
	return entities.Bill{
		BillNumber:     it.BillNumber,
		CustomerName:   it.CustomerName,
		ContactNumber:  it.ContactNumber,
		Address:        it.Address,
		ServiceType:    it.ServiceType,
		ServiceBoyName: it.ServiceBoyName,
		ServiceCharge:  it.ServiceCharge,
		Total:          it.Total,
		PaymentMethod:  entities.PaymentMethod(it.PaymentMethod),
		CashGiven:      it.CashGiven,
		Change:         it.Change,
		Notes:          it.Notes,
		Signature:      it.Signature,
		Status:         it.Status,
		Date:           parseTime(it.Date),
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
