package repository

import (
	"context"
	"errors"
	"time"

	"comercial_xpto/internal/domain/entities"
	"comercial_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItemSnapshotItem struct {
	Attributes   map[string]string `dynamodbav:"attributes,omitempty"`
	ProductName  string            `dynamodbav:"product_name"`
	CategoryName string            `dynamodbav:"category_name,omitempty"`
}

type quoteLineItem struct {
	SKUCode     string                `dynamodbav:"sku_code"`
	ProductID   string                `dynamodbav:"product_id"`
	Description string                `dynamodbav:"description"`
	Quantity    int                   `dynamodbav:"quantity"`
	UnitPrice   float64               `dynamodbav:"unit_price"`
	Discount    float64               `dynamodbav:"discount"`
	Total       float64               `dynamodbav:"total"`
	Snapshot    quoteItemSnapshotItem `dynamodbav:"snapshot"`
}

type quoteValuesItem struct {
	Subtotal float64 `dynamodbav:"subtotal"`
	Discount float64 `dynamodbav:"discount"`
	Freight  float64 `dynamodbav:"freight"`
	Total    float64 `dynamodbav:"total"`
}

type quotePaymentItem struct {
	ProviderPaymentID string `dynamodbav:"provider_payment_id"`
	ProviderStatus    string `dynamodbav:"provider_status"`
	PaidAt            string `dynamodbav:"paid_at"`
}

type quoteItem struct {
	ID           string            `dynamodbav:"id"`
	UserID       string            `dynamodbav:"user_id"`
	Status       string            `dynamodbav:"status"`
	ClientID     string            `dynamodbav:"client_id"`
	Validity     string            `dynamodbav:"validity,omitempty"`
	PaymentTerms string            `dynamodbav:"payment_terms,omitempty"`
	Notes        string            `dynamodbav:"notes,omitempty"`
	Values       quoteValuesItem   `dynamodbav:"values"`
	Items        []quoteLineItem   `dynamodbav:"items"`
	Payment      *quotePaymentItem `dynamodbav:"payment,omitempty"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// The whole quote lives in one document, items and values included, so
// every Save is a single atomic write and readers never see a half-updated
// quote.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: q.UserID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	if it.UserID != tenantID {
		return entities.Quote{}, nil
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :uid"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":uid":        &types.AttributeValueMemberS{Value: tenantID},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
		}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, 0, len(q.Items))
	for _, l := range q.Items {
		lines = append(lines, quoteLineItem{
			SKUCode:     l.SKUCode,
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Discount:    l.Discount,
			Total:       l.Total,
			Snapshot: quoteItemSnapshotItem{
				Attributes:   l.Snapshot.Attributes,
				ProductName:  l.Snapshot.ProductName,
				CategoryName: l.Snapshot.CategoryName,
			},
		})
	}

	it := quoteItem{
		ID:           q.ID,
		UserID:       q.UserID,
		Status:       string(q.Status),
		ClientID:     q.ClientID,
		Validity:     q.Validity,
		PaymentTerms: q.PaymentTerms,
		Notes:        q.Notes,
		Values: quoteValuesItem{
			Subtotal: q.Values.Subtotal,
			Discount: q.Values.Discount,
			Freight:  q.Values.Freight,
			Total:    q.Values.Total,
		},
		Items:     lines,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.Payment != nil {
		it.Payment = &quotePaymentItem{
			ProviderPaymentID: q.Payment.ProviderPaymentID,
			ProviderStatus:    q.Payment.ProviderStatus,
			PaidAt:            q.Payment.PaidAt.UTC().Format(time.RFC3339Nano),
		}
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	lines := make([]entities.QuoteItem, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.QuoteItem{
			SKUCode:     l.SKUCode,
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Discount:    l.Discount,
			Total:       l.Total,
			Snapshot: entities.QuoteItemSnapshot{
				Attributes:   l.Snapshot.Attributes,
				ProductName:  l.Snapshot.ProductName,
				CategoryName: l.Snapshot.CategoryName,
			},
		})
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	q := entities.Quote{
		ID:           it.ID,
		UserID:       it.UserID,
		Status:       entities.QuoteStatus(it.Status),
		ClientID:     it.ClientID,
		Validity:     it.Validity,
		PaymentTerms: it.PaymentTerms,
		Notes:        it.Notes,
		Values: entities.QuoteValues{
			Subtotal: it.Values.Subtotal,
			Discount: it.Values.Discount,
			Freight:  it.Values.Freight,
			Total:    it.Values.Total,
		},
		Items:     lines,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.Payment != nil {
		paidAt, _ := time.Parse(time.RFC3339Nano, it.Payment.PaidAt)
		q.Payment = &entities.QuotePayment{
			ProviderPaymentID: it.Payment.ProviderPaymentID,
			ProviderStatus:    it.Payment.ProviderStatus,
			PaidAt:            paidAt,
		}
	}
	return q
}
