package repository

import (
	"context"
	"time"

	"comercial_xpto/internal/domain/entities"
	"comercial_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCompaniesTableName = "companies"

type companyItem struct {
	UserID     string `dynamodbav:"user_id"`
	Name       string `dynamodbav:"name"`
	CNPJ       string `dynamodbav:"cnpj"`
	Phone      string `dynamodbav:"phone,omitempty"`
	Street     string `dynamodbav:"street,omitempty"`
	Number     string `dynamodbav:"number,omitempty"`
	Complement string `dynamodbav:"complement,omitempty"`
	District   string `dynamodbav:"district,omitempty"`
	City       string `dynamodbav:"city,omitempty"`
	State      string `dynamodbav:"state,omitempty"`
	ZipCode    string `dynamodbav:"zip_code,omitempty"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// CompanyDynamoRepository persists the tenant's Company profile in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//
// One document per tenant, keyed directly by user_id, so Upsert is a plain
// unconditional PutItem.

type CompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb *dynamodb.Client) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName),
	}
}

func (r *CompanyDynamoRepository) GetByTenant(ctx context.Context, tenantID string) (entities.Company, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Item) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

func (r *CompanyDynamoRepository) Upsert(ctx context.Context, c entities.Company) (entities.Company, error) {
	av, err := attributevalue.MarshalMap(toCompanyItem(c))
	if err != nil {
		return entities.Company{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Company{}, err
	}
	return c, nil
}

func toCompanyItem(c entities.Company) companyItem {
	return companyItem{
		UserID:     c.UserID,
		Name:       c.Name,
		CNPJ:       c.CNPJ,
		Phone:      c.Phone,
		Street:     c.Street,
		Number:     c.Number,
		Complement: c.Complement,
		District:   c.District,
		City:       c.City,
		State:      c.State,
		ZipCode:    c.ZipCode,
		UpdatedAt:  c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCompanyItem(it companyItem) entities.Company {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Company{
		UserID:     it.UserID,
		Name:       it.Name,
		CNPJ:       it.CNPJ,
		Phone:      it.Phone,
		Street:     it.Street,
		Number:     it.Number,
		Complement: it.Complement,
		District:   it.District,
		City:       it.City,
		State:      it.State,
		ZipCode:    it.ZipCode,
		UpdatedAt:  updatedAt,
	}
}
