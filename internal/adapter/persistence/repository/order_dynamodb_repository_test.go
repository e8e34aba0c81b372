package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"payler_gateway/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	items      map[string]map[string]types.AttributeValue
	queryItems []map[string]types.AttributeValue
	scanPages  [][]map[string]types.AttributeValue
	updateErr  error

	updates []*dynamodb.UpdateItemInput
	queries []*dynamodb.QueryInput
	scans   int
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	return &dynamodb.QueryOutput{Items: f.queryItems}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	page := f.scanPages[f.scans]
	f.scans++
	out := &dynamodb.ScanOutput{Items: page}
	if f.scans < len(f.scanPages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "cursor"}}
	}
	return out, nil
}

func sampleOrder() entities.Order {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return entities.Order{
		ID:         "42",
		CustomerID: "7",
		OrderKey:   "wc_order_abc",
		Total:      25,
		Currency:   "USD",
		Status:     entities.OrderStatusPending,
		Billing:    entities.BillingAddress{Email: "ana@example.com", City: "Lisbon"},
		Meta:       map[string]string{entities.MetaHashOrderID: "hash-1", entities.MetaSessionOrderID: "sess-1"},
		Notes:      []entities.OrderNote{{Note: "created", CreatedAt: now}},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func mustAttributes(t *testing.T, o entities.Order) map[string]types.AttributeValue {
	t.Helper()
	av, err := toOrderAttributes(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestOrderItemMapping(t *testing.T) {
	av := mustAttributes(t, sampleOrder())
	if _, ok := av["meta_hash_order_id"]; !ok {
		t.Fatalf("expected projected metadata attribute, got %v", av)
	}
	got, err := fromOrderAttributes(av)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := sampleOrder()
	if got.ID != want.ID || got.Total != 25 || got.Billing != want.Billing || got.Status != want.Status {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got.MetaValue(entities.MetaHashOrderID) != "hash-1" || got.MetaValue(entities.MetaSessionOrderID) != "sess-1" {
		t.Fatalf("unexpected meta: %v", got.Meta)
	}
	if len(got.Notes) != 1 || !got.Notes[0].CreatedAt.Equal(want.Notes[0].CreatedAt) {
		t.Fatalf("unexpected notes: %+v", got.Notes)
	}
}

func TestOrderDynamoRepository_GetByID(t *testing.T) {
	t.Setenv("ORDERS_TABLE", "")
	ddb := &fakeDynamo{items: map[string]map[string]types.AttributeValue{"42": mustAttributes(t, sampleOrder())}}
	repo := NewOrderDynamoRepository(ddb)
	if repo.tableName != "orders" {
		t.Fatalf("unexpected table %s", repo.tableName)
	}

	o, err := repo.GetByID(context.Background(), "42")
	if err != nil || o.ID != "42" {
		t.Fatalf("unexpected result: %+v %v", o, err)
	}

	o, err = repo.GetByID(context.Background(), "missing")
	if err != nil || o.ID != "" {
		t.Fatalf("expected zero order, got %+v %v", o, err)
	}
}

func TestOrderDynamoRepository_FindByMetadata(t *testing.T) {
	t.Run("hash order id uses the index", func(t *testing.T) {
		ddb := &fakeDynamo{
			items:      map[string]map[string]types.AttributeValue{"42": mustAttributes(t, sampleOrder())},
			queryItems: []map[string]types.AttributeValue{{"id": &types.AttributeValueMemberS{Value: "42"}}},
		}
		repo := NewOrderDynamoRepository(ddb)

		o, err := repo.FindByMetadata(context.Background(), entities.MetaHashOrderID, "hash-1")
		if err != nil || o.ID != "42" {
			t.Fatalf("unexpected result: %+v %v", o, err)
		}
		if len(ddb.queries) != 1 || aws.ToString(ddb.queries[0].IndexName) != "meta_hash_order_id-index" {
			t.Fatalf("expected index query, got %+v", ddb.queries)
		}
		if ddb.queries[0].ExpressionAttributeNames["#m"] != "meta_hash_order_id" {
			t.Fatalf("unexpected attribute names: %v", ddb.queries[0].ExpressionAttributeNames)
		}
	})

	t.Run("no match", func(t *testing.T) {
		repo := NewOrderDynamoRepository(&fakeDynamo{})
		o, err := repo.FindByMetadata(context.Background(), entities.MetaHashOrderID, "nope")
		if err != nil || o.ID != "" {
			t.Fatalf("expected zero order, got %+v %v", o, err)
		}
	})

	t.Run("other keys scan every page", func(t *testing.T) {
		ddb := &fakeDynamo{scanPages: [][]map[string]types.AttributeValue{nil, {mustAttributes(t, sampleOrder())}}}
		repo := NewOrderDynamoRepository(ddb)
		o, err := repo.FindByMetadata(context.Background(), entities.MetaSessionOrderID, "sess-1")
		if err != nil || o.ID != "42" || ddb.scans != 2 {
			t.Fatalf("unexpected result: %+v %v scans=%d", o, err, ddb.scans)
		}
	})
}

func TestOrderDynamoRepository_SetStatus(t *testing.T) {
	t.Run("conditional write", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewOrderDynamoRepository(ddb)
		changed, err := repo.SetStatus(context.Background(), "42", entities.OrderStatusProcessing, "Payment completed via Payler.")
		if err != nil || !changed {
			t.Fatalf("unexpected result: %v %v", changed, err)
		}
		in := ddb.updates[0]
		if !strings.Contains(aws.ToString(in.ConditionExpression), "#status <> :status") {
			t.Fatalf("missing status guard: %s", aws.ToString(in.ConditionExpression))
		}
		var notes []map[string]string
		if err := attributevalue.Unmarshal(in.ExpressionAttributeValues[":note"], &notes); err != nil || notes[0]["note"] != "Payment completed via Payler." {
			t.Fatalf("unexpected note value: %v %v", notes, err)
		}
	})

	t.Run("already in status", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := NewOrderDynamoRepository(ddb)
		changed, err := repo.SetStatus(context.Background(), "42", entities.OrderStatusProcessing, "n")
		if err != nil || changed {
			t.Fatalf("expected unchanged, got %v %v", changed, err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		repo := NewOrderDynamoRepository(&fakeDynamo{updateErr: errors.New("throttled")})
		if _, err := repo.SetStatus(context.Background(), "42", entities.OrderStatusFailed, "n"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestOrderDynamoRepository_Metadata(t *testing.T) {
	ddb := &fakeDynamo{items: map[string]map[string]types.AttributeValue{"42": mustAttributes(t, sampleOrder())}}
	repo := NewOrderDynamoRepository(ddb)

	if err := repo.UpdateMetadata(context.Background(), "42", entities.MetaHashCustomerID, "cust-hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ddb.updates[0].ExpressionAttributeNames["#m"] != "meta_hash_customer_id" {
		t.Fatalf("unexpected names: %v", ddb.updates[0].ExpressionAttributeNames)
	}

	v, err := repo.GetMetadata(context.Background(), "42", entities.MetaSessionOrderID)
	if err != nil || v != "sess-1" {
		t.Fatalf("unexpected metadata: %q %v", v, err)
	}
	v, err = repo.GetMetadata(context.Background(), "missing", entities.MetaSessionOrderID)
	if err != nil || v != "" {
		t.Fatalf("expected empty metadata, got %q %v", v, err)
	}

	if err := repo.AddNote(context.Background(), "42", "Refunded 20.00 USD via Payler. Reason: x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := NewOrderDynamoRepository(&fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}})
	if err := missing.UpdateMetadata(context.Background(), "nope", "k", "v"); !errors.Is(err, entities.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if err := missing.AddNote(context.Background(), "nope", "n"); !errors.Is(err, entities.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

// toOrderAttributes is the inverse of fromOrderAttributes.
func toOrderAttributes(o entities.Order) (map[string]types.AttributeValue, error) {
	it := orderItem{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		OrderKey:   o.OrderKey,
		Total:      floatToString(o.Total),
		Currency:   o.Currency,
		Status:     string(o.Status),
		Billing:    billingItem(o.Billing),
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, n := range o.Notes {
		it.Notes = append(it.Notes, noteItem{Note: n.Note, CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano)})
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}
	for k, v := range o.Meta {
		av[metaAttrPrefix+k] = &types.AttributeValueMemberS{Value: v}
	}
	return av, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
