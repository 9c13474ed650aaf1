package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollerAdvancesCursor(t *testing.T) {
	base := time.Now()
	batches := [][]Notification{
		{
			{ID: "a", Title: "first", CreatedAt: base.Add(1 * time.Second)},
			{ID: "b", Title: "second", CreatedAt: base.Add(2 * time.Second)},
		},
		{
			{ID: "c", Title: "third", CreatedAt: base.Add(3 * time.Second)},
		},
	}

	var mu sync.Mutex
	var sinceSeen []time.Time
	var received []Notification
	call := 0

	fetch := func(ctx context.Context, since time.Time, recipient string) ([]Notification, error) {
		mu.Lock()
		defer mu.Unlock()
		sinceSeen = append(sinceSeen, since)
		if call >= len(batches) {
			return nil, nil
		}
		batch := batches[call]
		call++
		return batch, nil
	}
	handler := func(batch []Notification) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, batch...)
	}

	p := NewPoller(fetch, handler, "device-1", 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 3
	}, time.Second, 5*time.Millisecond)
	cancel()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a", "b", "c"}, []string{received[0].ID, received[1].ID, received[2].ID})
	// the second fetch starts after the newest notification of the first batch
	assert.GreaterOrEqual(t, len(sinceSeen), 2)
	assert.True(t, sinceSeen[1].Equal(base.Add(2*time.Second)))
}

func TestPollerKeepsCursorOnFetchError(t *testing.T) {
	var mu sync.Mutex
	var sinceSeen []time.Time

	fetch := func(ctx context.Context, since time.Time, recipient string) ([]Notification, error) {
		mu.Lock()
		defer mu.Unlock()
		sinceSeen = append(sinceSeen, since)
		return nil, errors.New("backend unavailable")
	}
	handler := func(batch []Notification) {
		t.Error("handler must not run on fetch error")
	}

	p := NewPoller(fetch, handler, "device-1", 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(sinceSeen) >= 2
	}, time.Second, 5*time.Millisecond)
	cancel()

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, sinceSeen[0].Equal(sinceSeen[1]))
}

func TestPollerStopsOnCancel(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	fetch := func(ctx context.Context, since time.Time, recipient string) ([]Notification, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return nil, nil
	}

	p := NewPoller(fetch, func([]Notification) {}, "device-1", 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 1
	}, time.Second, 5*time.Millisecond)
	cancel()

	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	after := calls
	mu.Unlock()
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, after, calls)
}
