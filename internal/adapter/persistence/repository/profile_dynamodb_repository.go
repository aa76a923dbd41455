package repository

import (
	"context"

	"giro_backoffice/internal/domain/entities"
	"giro_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "profiles"

type profileItem struct {
	ID       string `dynamodbav:"id"`
	FullName string `dynamodbav:"full_name"`
	Role     string `dynamodbav:"role"`
}

// ProfileDynamoRepository reads user profiles from DynamoDB.
//
// Table requirements:
//   - PK: id (string) — the identity-provider principal id.

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: tableFromEnv("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return entities.Profile{ID: it.ID, FullName: it.FullName, Role: entities.Role(it.Role)}, nil
}
