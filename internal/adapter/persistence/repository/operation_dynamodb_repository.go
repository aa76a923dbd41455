package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"giro_backoffice/internal/domain/entities"
	"giro_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOperationsTableName = "operations"
	defaultSociosTableName     = "socios"
	createdByIndexName         = "created_by-index"
)

type operationItem struct {
	ID               string `dynamodbav:"id"`
	CreatedAt        string `dynamodbav:"created_at"`
	CreatedBy        string `dynamodbav:"created_by"`
	PartnerID        string `dynamodbav:"partner_id,omitempty"`
	TipoOperacao     string `dynamodbav:"tipo_operacao"`
	QuantoPrecisa    string `dynamodbav:"quanto_precisa"`
	TipoPessoa       string `dynamodbav:"tipo_pessoa"`
	PagadorNome      string `dynamodbav:"pagador_nome"`
	PagadorCpfCnpj   string `dynamodbav:"pagador_cpf_cnpj"`
	PagadorEmail     string `dynamodbav:"pagador_email"`
	Observacao       string `dynamodbav:"observacao,omitempty"`
	Status           string `dynamodbav:"status"`
	IntegracaoStatus string `dynamodbav:"integracao_status"`
}

type socioItem struct {
	OperationID string `dynamodbav:"operation_id"`
	Cpf         string `dynamodbav:"cpf"`
	Name        string `dynamodbav:"name"`
}

// OperationDynamoRepository persists Operation and Socio entities in
// DynamoDB.
//
// Table requirements:
//   - operations: PK id (string), GSI created_by-index
//     (HASH created_by, RANGE created_at)
//   - socios: PK operation_id (string, HASH) + cpf (string, RANGE)
//
// An operation and its socios are written with TransactWriteItems so a
// PJ operation can never persist without its co-owners.

type OperationDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	sociosTable string
}

var _ interfaces.IOperationRepository = (*OperationDynamoRepository)(nil)

func NewOperationDynamoRepository(ddb *dynamodb.Client) *OperationDynamoRepository {
	return &OperationDynamoRepository{
		ddb:         ddb,
		tableName:   tableFromEnv("OPERATIONS_TABLE", defaultOperationsTableName),
		sociosTable: tableFromEnv("SOCIOS_TABLE", defaultSociosTableName),
	}
}

func (r *OperationDynamoRepository) CreateWithSocios(ctx context.Context, op entities.Operation, socios []entities.Socio) (entities.Operation, error) {
	opAV, err := attributevalue.MarshalMap(toOperationItem(op))
	if err != nil {
		return entities.Operation{}, err
	}

	if len(socios) == 0 {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                opAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil {
			return entities.Operation{}, err
		}
		return op, nil
	}

	items := make([]types.TransactWriteItem, 0, len(socios)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                opAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for _, s := range socios {
		av, err := attributevalue.MarshalMap(socioItem{OperationID: s.OperationID, Cpf: s.Cpf, Name: s.Name})
		if err != nil {
			return entities.Operation{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.sociosTable),
				Item:      av,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return entities.Operation{}, err
	}
	return op, nil
}

func (r *OperationDynamoRepository) UpdateIntegrationStatus(ctx context.Context, id string, status entities.IntegrationStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #integracao_status = :integracao_status"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#integracao_status": "integracao_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":integracao_status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	return err
}

func (r *OperationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Operation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Operation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Operation{}, nil
	}

	var it operationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Operation{}, err
	}
	return fromOperationItem(it), nil
}

func (r *OperationDynamoRepository) List(ctx context.Context, createdBy string) ([]entities.Operation, error) {
	if createdBy == "" {
		return r.scanAll(ctx, nil, nil, nil)
	}
	return r.queryByCreator(ctx, createdBy, nil, nil, 0)
}

func (r *OperationDynamoRepository) ListByPeriod(ctx context.Context, createdBy string, from, to time.Time) ([]entities.Operation, error) {
	f := from.UTC().Format(time.RFC3339Nano)
	t := to.UTC().Format(time.RFC3339Nano)
	if createdBy == "" {
		filter := "#created_at BETWEEN :from AND :to"
		names := map[string]string{"#created_at": "created_at"}
		values := map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: f},
			":to":   &types.AttributeValueMemberS{Value: t},
		}
		return r.scanAll(ctx, &filter, names, values)
	}
	return r.queryByCreator(ctx, createdBy, &f, &t, 0)
}

func (r *OperationDynamoRepository) ListRecent(ctx context.Context, createdBy string, limit int) ([]entities.Operation, error) {
	if createdBy == "" {
		ops, err := r.scanAll(ctx, nil, nil, nil)
		if err != nil {
			return nil, err
		}
		if len(ops) > limit {
			ops = ops[:limit]
		}
		return ops, nil
	}
	return r.queryByCreator(ctx, createdBy, nil, nil, limit)
}

func (r *OperationDynamoRepository) ListSociosByOperationID(ctx context.Context, operationID string) ([]entities.Socio, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.sociosTable),
		KeyConditionExpression: aws.String("#operation_id = :operation_id"),
		ExpressionAttributeNames: map[string]string{
			"#operation_id": "operation_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":operation_id": &types.AttributeValueMemberS{Value: operationID},
		},
	})
	if err != nil {
		return nil, err
	}

	socios := make([]entities.Socio, 0, len(out.Items))
	for _, item := range out.Items {
		var it socioItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		socios = append(socios, entities.Socio{OperationID: it.OperationID, Name: it.Name, Cpf: it.Cpf})
	}
	return socios, nil
}

// queryByCreator reads the created_by GSI newest first. from/to, when
// set, bound created_at inclusively.
func (r *OperationDynamoRepository) queryByCreator(ctx context.Context, createdBy string, from, to *string, limit int) ([]entities.Operation, error) {
	keyCond := "#created_by = :created_by"
	names := map[string]string{"#created_by": "created_by"}
	values := map[string]types.AttributeValue{
		":created_by": &types.AttributeValueMemberS{Value: createdBy},
	}
	if from != nil && to != nil {
		keyCond += " AND #created_at BETWEEN :from AND :to"
		names["#created_at"] = "created_at"
		values[":from"] = &types.AttributeValueMemberS{Value: *from}
		values[":to"] = &types.AttributeValueMemberS{Value: *to}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(createdByIndexName),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	var ops []entities.Operation
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it operationItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			ops = append(ops, fromOperationItem(it))
		}
		if out.LastEvaluatedKey == nil || (limit > 0 && len(ops) >= limit) {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	if limit > 0 && len(ops) > limit {
		ops = ops[:limit]
	}
	return ops, nil
}

// scanAll is the admin read path: full table scan, sorted newest first
// in memory. Back-office volumes keep this cheap.
func (r *OperationDynamoRepository) scanAll(ctx context.Context, filter *string, names map[string]string, values map[string]types.AttributeValue) ([]entities.Operation, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if filter != nil {
		input.FilterExpression = filter
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var ops []entities.Operation
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it operationItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			ops = append(ops, fromOperationItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i].CreatedAt.After(ops[j].CreatedAt) })
	return ops, nil
}

func toOperationItem(op entities.Operation) operationItem {
	return operationItem{
		ID:               op.ID,
		CreatedAt:        op.CreatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:        op.CreatedBy,
		PartnerID:        op.PartnerID,
		TipoOperacao:     string(op.TipoOperacao),
		QuantoPrecisa:    floatToString(op.QuantoPrecisa),
		TipoPessoa:       string(op.TipoPessoa),
		PagadorNome:      op.PagadorNome,
		PagadorCpfCnpj:   op.PagadorCpfCnpj,
		PagadorEmail:     op.PagadorEmail,
		Observacao:       op.Observacao,
		Status:           string(op.Status),
		IntegracaoStatus: string(op.IntegracaoStatus),
	}
}

func fromOperationItem(it operationItem) entities.Operation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	// Absent or malformed amounts count as zero in aggregations.
	quantoPrecisa, _ := strconv.ParseFloat(it.QuantoPrecisa, 64)
	return entities.Operation{
		ID:               it.ID,
		CreatedAt:        createdAt,
		CreatedBy:        it.CreatedBy,
		PartnerID:        it.PartnerID,
		TipoOperacao:     entities.TipoOperacao(it.TipoOperacao),
		QuantoPrecisa:    quantoPrecisa,
		TipoPessoa:       entities.TipoPessoa(it.TipoPessoa),
		PagadorNome:      it.PagadorNome,
		PagadorCpfCnpj:   it.PagadorCpfCnpj,
		PagadorEmail:     it.PagadorEmail,
		Observacao:       it.Observacao,
		Status:           entities.OperationStatus(it.Status),
		IntegracaoStatus: entities.IntegrationStatus(it.IntegracaoStatus),
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
