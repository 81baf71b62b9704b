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

const (
	defaultSKUsTableName = "skus"
	skusProductIDIndex   = "product_id-index"
)

type skuItem struct {
	ID         string            `dynamodbav:"id"`
	Code       string            `dynamodbav:"code"`
	ProductID  string            `dynamodbav:"product_id"`
	UserID     string            `dynamodbav:"user_id"`
	Price      float64           `dynamodbav:"price"`
	Stock      int               `dynamodbav:"stock"`
	Cost       float64           `dynamodbav:"cost,omitempty"`
	Active     bool              `dynamodbav:"active"`
	Attributes map[string]string `dynamodbav:"attributes,omitempty"`
	CreatedAt  string            `dynamodbav:"created_at"`
	UpdatedAt  string            `dynamodbav:"updated_at"`
}

// SKUDynamoRepository persists SKU entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: product_id-index (PK: product_id)
//   - GSI: user_id-index (PK: user_id)
//
// Put is deliberately unconditional: SKU ids are derived from
// (product id, code) upstream, so re-putting after a partial batch failure
// overwrites the same documents instead of duplicating them.

type SKUDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISKURepository = (*SKUDynamoRepository)(nil)

func NewSKUDynamoRepository(ddb *dynamodb.Client) *SKUDynamoRepository {
	return &SKUDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SKUS_TABLE", defaultSKUsTableName),
	}
}

func (r *SKUDynamoRepository) Put(ctx context.Context, s entities.SKU) (entities.SKU, error) {
	av, err := attributevalue.MarshalMap(toSKUItem(s))
	if err != nil {
		return entities.SKU{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.SKU{}, err
	}
	return s, nil
}

func (r *SKUDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.SKU, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SKU{}, err
	}
	if len(out.Item) == 0 {
		return entities.SKU{}, nil
	}

	var it skuItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SKU{}, err
	}
	if it.UserID != tenantID {
		return entities.SKU{}, nil
	}
	return fromSKUItem(it), nil
}

func (r *SKUDynamoRepository) ListByProduct(ctx context.Context, tenantID, productID string) ([]entities.SKU, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(skusProductIDIndex),
		KeyConditionExpression: aws.String("product_id = :pid"),
		FilterExpression:       aws.String("#user_id = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
			":uid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalSKUs(out.Items)
}

func (r *SKUDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.SKU, error) {
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
	return unmarshalSKUs(out.Items)
}

func (r *SKUDynamoRepository) Delete(ctx context.Context, tenantID, id string) error {
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

func unmarshalSKUs(raw []map[string]types.AttributeValue) ([]entities.SKU, error) {
	items := make([]entities.SKU, 0, len(raw))
	for _, m := range raw {
		var it skuItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSKUItem(it))
	}
	return items, nil
}

func toSKUItem(s entities.SKU) skuItem {
	return skuItem{
		ID:         s.ID,
		Code:       s.Code,
		ProductID:  s.ProductID,
		UserID:     s.UserID,
		Price:      s.Price,
		Stock:      s.Stock,
		Cost:       s.Cost,
		Active:     s.Active,
		Attributes: s.Attributes,
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSKUItem(it skuItem) entities.SKU {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.SKU{
		ID:         it.ID,
		Code:       it.Code,
		ProductID:  it.ProductID,
		UserID:     it.UserID,
		Price:      it.Price,
		Stock:      it.Stock,
		Cost:       it.Cost,
		Active:     it.Active,
		Attributes: it.Attributes,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
