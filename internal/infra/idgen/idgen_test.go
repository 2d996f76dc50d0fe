package idgen

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextID_FollowsClock(t *testing.T) {
	at := time.UnixMilli(1712345678901)
	gen := NewWithClock(func() time.Time { return at })

	assert.Equal(t, int64(1712345678901), gen.NextID())
}

func TestNextID_StrictlyIncreasing(t *testing.T) {
	clock := []time.Time{
		time.UnixMilli(1000),
		time.UnixMilli(1000),
		time.UnixMilli(999),
		time.UnixMilli(2000),
	}
	i := 0
	gen := NewWithClock(func() time.Time {
		now := clock[i]
		i++

		return now
	})

	assert.Equal(t, []int64{1000, 1001, 1002, 2000}, []int64{gen.NextID(), gen.NextID(), gen.NextID(), gen.NextID()})
}

func TestNextID_ConcurrentUnique(t *testing.T) {
	gen := New()

	const workers, perWorker = 8, 100
	ids := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				ids <- gen.NextID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, workers*perWorker)
	for id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}
