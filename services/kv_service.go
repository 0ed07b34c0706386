package services

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// KVStore is the persistence collaborator consumed by every service: a plain
// key-value contract with prefix scans. No transactions, no atomic
// increments; concurrent writers to the same key race and the last write
// wins.
type KVStore interface {
	// Get unmarshals the value at key into out. The boolean reports whether
	// the key exists; absence is not an error.
	Get(ctx context.Context, key string, out interface{}) (bool, error)
	// Set writes the JSON encoding of value at key, overwriting any previous
	// value.
	Set(ctx context.Context, key string, value interface{}) error
	// GetByPrefix returns the raw values of every key sharing the prefix.
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
}

// kvItem is the single-table DynamoDB layout: partition key "key", the JSON
// document in "value".
type kvItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// DynamoKV implements KVStore on a single DynamoDB table.
type DynamoKV struct {
	Client *dynamodb.Client
	Table  string
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient() *dynamodb.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func (kv *DynamoKV) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	output, err := kv.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &kv.Table,
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return false, upstream("kv get", err)
	}
	if output.Item == nil {
		return false, nil
	}

	var item kvItem
	if err := attributevalue.UnmarshalMap(output.Item, &item); err != nil {
		return false, upstream("kv get", err)
	}
	if err := json.Unmarshal([]byte(item.Value), out); err != nil {
		return false, upstream("kv get", err)
	}
	return true, nil
}

func (kv *DynamoKV) Set(ctx context.Context, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return upstream("kv set", err)
	}

	item, err := attributevalue.MarshalMap(kvItem{Key: key, Value: string(encoded)})
	if err != nil {
		return upstream("kv set", err)
	}

	_, err = kv.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &kv.Table,
		Item:      item,
	})
	if err != nil {
		return upstream("kv set", err)
	}
	return nil
}

func (kv *DynamoKV) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	output, err := kv.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &kv.Table,
		FilterExpression: aws.String("begins_with(#key, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#key": "key",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		},
	})
	if err != nil {
		return nil, upstream("kv scan", err)
	}

	values := make([]json.RawMessage, 0, len(output.Items))
	for _, raw := range output.Items {
		var item kvItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, upstream("kv scan", err)
		}
		values = append(values, json.RawMessage(item.Value))
	}
	return values, nil
}

// MemoryKV is an in-process KVStore used by tests and local runs without AWS
// credentials. Prefix scans return values in insertion order.
type MemoryKV struct {
	mu    sync.RWMutex
	order []string
	items map[string]json.RawMessage
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string]json.RawMessage)}
}

func (kv *MemoryKV) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	kv.mu.RLock()
	raw, ok := kv.items[key]
	kv.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, upstream("kv get", err)
	}
	return true, nil
}

func (kv *MemoryKV) Set(ctx context.Context, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return upstream("kv set", err)
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()
	if _, exists := kv.items[key]; !exists {
		kv.order = append(kv.order, key)
	}
	kv.items[key] = encoded
	return nil
}

func (kv *MemoryKV) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	var values []json.RawMessage
	for _, key := range kv.order {
		if strings.HasPrefix(key, prefix) {
			values = append(values, kv.items[key])
		}
	}
	return values, nil
}
