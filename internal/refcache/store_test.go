package refcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisabledStoreIsInert(t *testing.T) {
	cases := []*Store{
		nil,
		NewStore(nil, time.Minute),
	}
	for _, s := range cases {
		assert.False(t, s.Enabled())

		var dest struct{ Name string }
		assert.False(t, s.Get(context.Background(), "reason_type", "101", &dest))

		// Must not panic without a client.
		s.Set(context.Background(), "reason_type", "101", dest)
	}
}

func TestRedisKeyShape(t *testing.T) {
	assert.Equal(t, "refdata:account_type:AT-9", redisKey("account_type", "AT-9"))
}
