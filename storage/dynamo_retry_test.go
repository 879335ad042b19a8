package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// throttlingClient answers one key per call and hands the rest back as
// unprocessed. With stall set it never makes progress.
type throttlingClient struct {
	calls int
	stall bool
	err   error
}

func (c *throttlingClient) BatchGetItem(_ context.Context, params *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}

	out := &dynamodb.BatchGetItemOutput{Responses: map[string][]map[string]types.AttributeValue{}}
	for table, req := range params.RequestItems {
		keys := req.Keys
		if !c.stall {
			out.Responses[table] = append(out.Responses[table], keys[0])
			keys = keys[1:]
		}
		if len(keys) > 0 {
			if out.UnprocessedKeys == nil {
				out.UnprocessedKeys = map[string]types.KeysAndAttributes{}
			}
			out.UnprocessedKeys[table] = types.KeysAndAttributes{Keys: keys}
		}
	}
	return out, nil
}

func fastBackoff(t *testing.T) {
	t.Helper()
	base, maxDelay := unprocessedBaseDelay, unprocessedMaxDelay
	unprocessedBaseDelay, unprocessedMaxDelay = time.Microsecond, 4*time.Microsecond
	t.Cleanup(func() {
		unprocessedBaseDelay, unprocessedMaxDelay = base, maxDelay
	})
}

func TestUnprocessedBackoff(t *testing.T) {
	t.Run("Happy path - doubles each round", func(t *testing.T) {
		assert.Equal(t, 50*time.Millisecond, unprocessedBackoff(1))
		assert.Equal(t, 100*time.Millisecond, unprocessedBackoff(2))
		assert.Equal(t, 400*time.Millisecond, unprocessedBackoff(4))
	})

	t.Run("Happy path - capped", func(t *testing.T) {
		assert.Equal(t, unprocessedMaxDelay, unprocessedBackoff(7))
		assert.Equal(t, unprocessedMaxDelay, unprocessedBackoff(100))
	})
}

func TestBatchGetAll(t *testing.T) {
	keys := []map[string]types.AttributeValue{stringKey("a"), stringKey("b"), stringKey("c")}

	t.Run("Happy path - unprocessed keys drain", func(t *testing.T) {
		fastBackoff(t)
		client := &throttlingClient{}

		items, err := batchGetAll(context.TODO(), client, "surveys", keys)
		require.NoError(t, err)
		assert.Len(t, items, 3)
		assert.Equal(t, 3, client.calls)
	})

	t.Run("Unhappy path - gives up after the round cap", func(t *testing.T) {
		fastBackoff(t)
		client := &throttlingClient{stall: true}

		_, err := batchGetAll(context.TODO(), client, "surveys", keys)
		assert.ErrorIs(t, err, ErrUnprocessedKeys)
		assert.Equal(t, maxBatchGetRounds, client.calls)
	})

	t.Run("Unhappy path - cancelled context stops the retries", func(t *testing.T) {
		client := &throttlingClient{stall: true}
		ctx, cancel := context.WithCancel(context.TODO())
		cancel()

		_, err := batchGetAll(ctx, client, "surveys", keys)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("Unhappy path - client error", func(t *testing.T) {
		boom := errors.New("throttled")
		client := &throttlingClient{err: boom}

		_, err := batchGetAll(context.TODO(), client, "surveys", keys)
		assert.ErrorIs(t, err, boom)
	})
}
