package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// BatchGetLimit is the DynamoDB cap on keys per BatchGetItem call.
const BatchGetLimit = 100

// maxBatchGetRounds bounds the BatchGetItem calls spent on one batch,
// counting the first request.
const maxBatchGetRounds = 8

var (
	unprocessedBaseDelay = 50 * time.Millisecond
	unprocessedMaxDelay  = 2 * time.Second
)

// NewID returns a fresh record id.
func NewID() (string, error) {
	return gonanoid.New()
}

// NewDynamoClient loads the default AWS config. A non-empty endpoint points
// the client at a local DynamoDB (localstack, dynamodb-local).
func NewDynamoClient(ctx context.Context, region string, endpoint string) (*dynamodb.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func isConditionFailed(err error) bool {
	var cce *types.ConditionalCheckFailedException
	return errors.As(err, &cce)
}

// scanAll reads every page of a scan. The result is never nil so handlers
// serialize an empty collection as [].
func scanAll[T any](ctx context.Context, client *dynamodb.Client, input *dynamodb.ScanInput) ([]*T, error) {
	items := make([]*T, 0)
	for {
		out, err := client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}

		var page []*T
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)

		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// scanWhere scans a table, keeping only items whose attribute equals value.
// An empty value disables the filter.
func scanWhere[T any](ctx context.Context, client *dynamodb.Client, table string, attribute string, value string) ([]*T, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(table),
	}
	if value != "" {
		input.FilterExpression = aws.String("#attr = :value")
		input.ExpressionAttributeNames = map[string]string{"#attr": attribute}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: value},
		}
	}
	return scanAll[T](ctx, client, input)
}

// putNew writes an item that must not exist yet.
func putNew(ctx context.Context, client *dynamodb.Client, table string, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrItemWithIDAlreadyExists
		}
		return err
	}
	return nil
}

type batchGetter interface {
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
}

// batchGetAll reads keys from table. Unprocessed keys are requested again
// with exponential backoff, up to maxBatchGetRounds calls in total.
func batchGetAll(ctx context.Context, client batchGetter, table string, keys []map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
	items := make([]map[string]types.AttributeValue, 0, len(keys))
	request := map[string]types.KeysAndAttributes{
		table: {Keys: keys},
	}

	for round := 0; len(request) > 0; round++ {
		if round == maxBatchGetRounds {
			return nil, fmt.Errorf("%w: %d keys left after %d rounds", ErrUnprocessedKeys, len(request[table].Keys), round)
		}
		if round > 0 {
			if err := waitForRetry(ctx, round); err != nil {
				return nil, err
			}
		}

		out, err := client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Responses[table]...)
		request = out.UnprocessedKeys
	}
	return items, nil
}

// unprocessedBackoff doubles from unprocessedBaseDelay on each round and
// stops growing at unprocessedMaxDelay.
func unprocessedBackoff(round int) time.Duration {
	delay := unprocessedBaseDelay
	for i := 1; i < round && delay < unprocessedMaxDelay; i++ {
		delay *= 2
	}
	if delay > unprocessedMaxDelay {
		return unprocessedMaxDelay
	}
	return delay
}

func waitForRetry(ctx context.Context, round int) error {
	timer := time.NewTimer(unprocessedBackoff(round))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func stringKey(pk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
	}
}

// getByKey returns ErrItemNotFound when the key is absent.
func getByKey[T any](ctx context.Context, client *dynamodb.Client, table string, pk string) (*T, error) {
	out, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       stringKey(pk),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrItemNotFound
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// deleteExisting deletes by key and returns ErrItemNotFound if nothing was there.
func deleteExisting(ctx context.Context, client *dynamodb.Client, table string, pk string) error {
	_, err := client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(table),
		Key:                 stringKey(pk),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

func logDynamoFailure(prefix string, op string, err error) {
	logging.Log.Errorf("%s: %s failed: %v", prefix, op, err)
}

// stampRecord fills in a missing id and creation time.
func stampRecord(id *string, ts *time.Time) error {
	if *id == "" {
		newID, err := NewID()
		if err != nil {
			return err
		}
		*id = newID
	}
	if ts.IsZero() {
		*ts = time.Now().UTC()
	}
	return nil
}
