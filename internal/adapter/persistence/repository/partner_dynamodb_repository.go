package repository

import (
	"context"
	"sort"

	"giro_backoffice/internal/domain/entities"
	"giro_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultPartnersTableName = "partners"

type partnerItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

// PartnerDynamoRepository reads referral partners from DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PartnerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartnerRepository = (*PartnerDynamoRepository)(nil)

func NewPartnerDynamoRepository(ddb *dynamodb.Client) *PartnerDynamoRepository {
	return &PartnerDynamoRepository{
		ddb:       ddb,
		tableName: tableFromEnv("PARTNERS_TABLE", defaultPartnersTableName),
	}
}

func (r *PartnerDynamoRepository) List(ctx context.Context) ([]entities.Partner, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var partners []entities.Partner
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it partnerItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			partners = append(partners, entities.Partner{ID: it.ID, Name: it.Name})
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(partners, func(i, j int) bool { return partners[i].Name < partners[j].Name })
	return partners, nil
}
