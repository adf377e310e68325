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

const defaultAccountsTableName = "accounts"

type accountItem struct {
	Email          string `dynamodbav:"email"`
	PasswordHash   string `dynamodbav:"password_hash"`
	Role           string `dynamodbav:"role"`
	RecoveryHash   string `dynamodbav:"recovery_hash,omitempty"`
	RecoveryExpiry string `dynamodbav:"recovery_expiry,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// AccountDynamoRepository persists login accounts in DynamoDB.
//
// Table requirements:
//   - PK: email (string)

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Account{}, interfaces.ErrConflict
		}
		return entities.Account{}, err
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	return r.update(ctx, email,
		"SET password_hash = :hash, updated_at = :updated_at",
		map[string]types.AttributeValue{
			":hash":       &types.AttributeValueMemberS{Value: passwordHash},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		})
}

func (r *AccountDynamoRepository) SetRecovery(ctx context.Context, email, recoveryHash string, expiry time.Time) error {
	return r.update(ctx, email,
		"SET recovery_hash = :hash, recovery_expiry = :expiry, updated_at = :updated_at",
		map[string]types.AttributeValue{
			":hash":       &types.AttributeValueMemberS{Value: recoveryHash},
			":expiry":     &types.AttributeValueMemberS{Value: formatTime(expiry)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		})
}

func (r *AccountDynamoRepository) ClearRecovery(ctx context.Context, email string) error {
	return r.update(ctx, email,
		"REMOVE recovery_hash, recovery_expiry SET updated_at = :updated_at",
		map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		})
}

func (r *AccountDynamoRepository) update(ctx context.Context, email, expr string, values map[string]types.AttributeValue) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConditionExpression:       aws.String("attribute_exists(email)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
	})
	return err
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		Email:          a.Email,
		PasswordHash:   a.PasswordHash,
		Role:           string(a.Role),
		RecoveryHash:   a.RecoveryHash,
		RecoveryExpiry: formatTime(a.RecoveryExpiry),
		CreatedAt:      formatTime(a.CreatedAt),
		UpdatedAt:      formatTime(a.UpdatedAt),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	return entities.Account{
		Email:          it.Email,
		PasswordHash:   it.PasswordHash,
		Role:           entities.Role(it.Role),
		RecoveryHash:   it.RecoveryHash,
		RecoveryExpiry: parseTime(it.RecoveryExpiry),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
