package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(eventType string) DomainEvent {
	return BaseEvent{
		AggregateID: "1",
		EventType:   eventType,
		OccurredAt:  time.Now(),
	}
}

func TestInMemoryEventDispatcher_PublishBeforeStart(t *testing.T) {
	d := NewInMemoryEventDispatcher(8)

	err := d.Publish(testEvent("ticket.created"))
	require.Error(t, err)
}

func TestInMemoryEventDispatcher_DeliversToSubscriber(t *testing.T) {
	d := NewInMemoryEventDispatcher(8)

	var mu sync.Mutex
	received := 0
	done := make(chan struct{})
	handler := NewSimpleEventHandler("ticket.created", func(event DomainEvent) error {
		mu.Lock()
		received++
		mu.Unlock()
		close(done)
		return nil
	})
	require.NoError(t, d.Subscribe("ticket.created", handler))

	require.NoError(t, d.Start())
	require.NoError(t, d.Publish(testEvent("ticket.created")))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
	require.NoError(t, d.Stop())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, received)
}

func TestInMemoryEventDispatcher_PublishDuringLifecycleChanges(t *testing.T) {
	// Concurrent publishers racing Start and Stop must not trip the race
	// detector on the running flag.
	d := NewInMemoryEventDispatcher(64)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = d.Publish(testEvent("ticket.created"))
			}
		}()
	}

	require.NoError(t, d.Start())
	wg.Wait()
	require.NoError(t, d.Stop())

	_ = d.PublishAll([]DomainEvent{testEvent("ticket.created")})
}

func TestInMemoryEventDispatcher_StopTwice(t *testing.T) {
	d := NewInMemoryEventDispatcher(8)

	require.NoError(t, d.Start())
	require.NoError(t, d.Stop())
	assert.Error(t, d.Stop())
}
