package querycache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marketArgs struct {
	MarketID   int64  `json:"marketId"`
	ClientTime string `json:"clientTime"`
}

func countingEndpoint(calls *int, key func(marketArgs) (string, error)) Endpoint[marketArgs, []string] {
	return Endpoint[marketArgs, []string]{
		Name: "serviceAreas",
		Key:  key,
		Fetch: func(ctx context.Context, args marketArgs) ([]string, error) {
			*calls++
			return []string{args.ClientTime}, nil
		},
	}
}

func TestQueryCachesByJSONKey(t *testing.T) {
	c := New(NewMemoryKV(), 0)
	calls := 0
	e := countingEndpoint(&calls, nil)
	ctx := context.Background()

	first, err := Query(ctx, c, e, marketArgs{MarketID: 1, ClientTime: "10:00"})
	require.NoError(t, err)
	second, err := Query(ctx, c, e, marketArgs{MarketID: 1, ClientTime: "10:00"})
	require.NoError(t, err)
	_, err = Query(ctx, c, e, marketArgs{MarketID: 1, ClientTime: "10:05"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestQueryCustomKey(t *testing.T) {
	c := New(nil, 0)
	calls := 0
	e := countingEndpoint(&calls, func(a marketArgs) (string, error) {
		return JSONKey(struct {
			MarketID int64 `json:"marketId"`
		}{a.MarketID})
	})
	ctx := context.Background()

	first, err := Query(ctx, c, e, marketArgs{MarketID: 1, ClientTime: "10:00"})
	require.NoError(t, err)
	second, err := Query(ctx, c, e, marketArgs{MarketID: 1, ClientTime: "10:05"})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"10:00"}, second)
	assert.Equal(t, first, second)

	key, err := e.CacheKey(marketArgs{MarketID: 1, ClientTime: "anything"})
	require.NoError(t, err)
	assert.Equal(t, `serviceAreas:{"marketId":1}`, key)
}

func TestQueryFetchErrorNotCached(t *testing.T) {
	c := New(NewMemoryKV(), time.Minute)
	calls := 0
	e := Endpoint[int, int]{
		Name: "markets",
		Fetch: func(ctx context.Context, id int) (int, error) {
			calls++
			return 0, errors.New("station down")
		},
	}

	_, err := Query(context.Background(), c, e, 1)
	assert.EqualError(t, err, "station down")
	_, err = Query(context.Background(), c, e, 1)
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestInvalidate(t *testing.T) {
	c := New(NewMemoryKV(), 0)
	calls := 0
	e := countingEndpoint(&calls, nil)
	ctx := context.Background()

	_, _ = Query(ctx, c, e, marketArgs{MarketID: 1})
	_, _ = Query(ctx, c, e, marketArgs{MarketID: 2})
	require.Equal(t, 2, calls)

	require.NoError(t, InvalidateKey(ctx, c, e, marketArgs{MarketID: 1}))
	_, _ = Query(ctx, c, e, marketArgs{MarketID: 1})
	_, _ = Query(ctx, c, e, marketArgs{MarketID: 2})
	assert.Equal(t, 3, calls)

	require.NoError(t, c.Invalidate(ctx, "serviceAreas"))
	_, _ = Query(ctx, c, e, marketArgs{MarketID: 1})
	_, _ = Query(ctx, c, e, marketArgs{MarketID: 2})
	assert.Equal(t, 5, calls)
}

func TestMutationsDoNotInvalidate(t *testing.T) {
	c := New(NewMemoryKV(), 0)
	calls := 0
	list := Endpoint[int64, []int64]{
		Name: "creditCards",
		Fetch: func(ctx context.Context, patientID int64) ([]int64, error) {
			calls++
			return []int64{1}, nil
		},
	}
	ctx := context.Background()

	_, _ = Query(ctx, c, list, 11)
	// a create happens elsewhere; the list stays cached until invalidated
	cards, _ := Query(ctx, c, list, 11)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []int64{1}, cards)
}
