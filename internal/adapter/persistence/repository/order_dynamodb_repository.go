package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	metaAttrPrefix         = "meta_"
	hashOrderIndexName     = "meta_hash_order_id-index"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repository.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type orderItem struct {
	ID         string      `dynamodbav:"id"`
	CustomerID string      `dynamodbav:"customer_id"`
	OrderKey   string      `dynamodbav:"order_key"`
	Total      string      `dynamodbav:"total"`
	Currency   string      `dynamodbav:"currency"`
	Status     string      `dynamodbav:"status"`
	Billing    billingItem `dynamodbav:"billing"`
	Notes      []noteItem  `dynamodbav:"notes,omitempty"`
	CreatedAt  string      `dynamodbav:"created_at"`
	UpdatedAt  string      `dynamodbav:"updated_at"`
}

type billingItem struct {
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone"`
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
	Country   string `dynamodbav:"country"`
	State     string `dynamodbav:"state"`
	City      string `dynamodbav:"city"`
	Postcode  string `dynamodbav:"postcode"`
	Address1  string `dynamodbav:"address_1"`
}

type noteItem struct {
	Note      string `dynamodbav:"note"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OrderDynamoRepository reads and mutates platform orders kept in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI meta_hash_order_id-index on meta_hash_order_id (string)
//
// Metadata is stored as top-level meta_<key> attributes so the correlation
// identifier can be indexed. Lookups on other metadata keys fall back to a
// filtered scan.
type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            orderKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return fromOrderAttributes(out.Item)
}

func (r *OrderDynamoRepository) FindByMetadata(ctx context.Context, key, value string) (entities.Order, error) {
	attr := metaAttrPrefix + key
	names := map[string]string{"#m": attr}
	values := map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}}

	if key == entities.MetaHashOrderID {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(hashOrderIndexName),
			KeyConditionExpression:    aws.String("#m = :v"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			Limit:                     aws.Int32(1),
		})
		if err != nil {
			return entities.Order{}, err
		}
		if len(out.Items) == 0 {
			return entities.Order{}, nil
		}
		// The index may project keys only; read the full item from the table.
		id, ok := out.Items[0]["id"].(*types.AttributeValueMemberS)
		if !ok {
			return entities.Order{}, nil
		}
		return r.GetByID(ctx, id.Value)
	}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String("#m = :v"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return entities.Order{}, err
		}
		if len(out.Items) > 0 {
			return fromOrderAttributes(out.Items[0])
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entities.Order{}, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *OrderDynamoRepository) UpdateMetadata(ctx context.Context, orderID, key, value string) error {
	_, err := r.update(ctx, orderID, "attribute_exists(#id)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #m = :v, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":v":          &types.AttributeValueMemberS{Value: value},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#m":          metaAttrPrefix + key,
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if isConditionFailed(err) {
		return entities.ErrOrderNotFound
	}
	return err
}

func (r *OrderDynamoRepository) GetMetadata(ctx context.Context, orderID, key string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      orderKey(orderID),
		ProjectionExpression:     aws.String("#m"),
		ExpressionAttributeNames: map[string]string{"#m": metaAttrPrefix + key},
		ConsistentRead:           aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if v, ok := out.Item[metaAttrPrefix+key].(*types.AttributeValueMemberS); ok {
		return v.Value, nil
	}
	return "", nil
}

// SetStatus writes status and appends note in one conditional update. A
// failed condition means the order is missing or already holds status.
func (r *OrderDynamoRepository) SetStatus(ctx context.Context, orderID string, status entities.OrderStatus, note string) (bool, error) {
	_, err := r.update(ctx, orderID, "attribute_exists(#id) AND #status <> :status", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at, #notes = list_append(if_not_exists(#notes, :empty), :note)"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":note":       noteList(note, now),
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
			"#notes":      "notes",
		}
		return expr, vals, names
	})
	if isConditionFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *OrderDynamoRepository) AddNote(ctx context.Context, orderID, note string) error {
	_, err := r.update(ctx, orderID, "attribute_exists(#id)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at, #notes = list_append(if_not_exists(#notes, :empty), :note)"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":note":       noteList(note, now),
		}
		names := map[string]string{
			"#updated_at": "updated_at",
			"#notes":      "notes",
		}
		return expr, vals, names
	})
	if isConditionFailed(err) {
		return entities.ErrOrderNotFound
	}
	return err
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (*dynamodb.UpdateItemOutput, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	return r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       orderKey(id),
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
}

func orderKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func noteList(note, now string) types.AttributeValue {
	return &types.AttributeValueMemberL{Value: []types.AttributeValue{
		&types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"note":       &types.AttributeValueMemberS{Value: note},
			"created_at": &types.AttributeValueMemberS{Value: now},
		}},
	}}
}

func fromOrderAttributes(av map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Order{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.Total, 64)

	o := entities.Order{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		OrderKey:   it.OrderKey,
		Total:      total,
		Currency:   it.Currency,
		Status:     entities.OrderStatus(it.Status),
		Billing:    entities.BillingAddress(it.Billing),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	for _, n := range it.Notes {
		ts, _ := time.Parse(time.RFC3339Nano, n.CreatedAt)
		o.Notes = append(o.Notes, entities.OrderNote{Note: n.Note, CreatedAt: ts})
	}
	for k, v := range av {
		if !strings.HasPrefix(k, metaAttrPrefix) {
			continue
		}
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			if o.Meta == nil {
				o.Meta = map[string]string{}
			}
			o.Meta[strings.TrimPrefix(k, metaAttrPrefix)] = s.Value
		}
	}
	return o, nil
}
