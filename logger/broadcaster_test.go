package logger

import (
	"testing"
	"time"
)

func TestBroadcasterDeliversToSubscribers(t *testing.T) {
	b := &Broadcaster{subscribers: make(map[chan string]bool)}

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	if _, err := b.Write([]byte("hello\n")); err != nil {
		t.Fatal(err)
	}

	select {
	case msg := <-ch:
		if msg != "hello\n" {
			t.Fatalf("unexpected message %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the log line")
	}
}

func TestBroadcasterDoesNotBlockOnSlowSubscriber(t *testing.T) {
	b := &Broadcaster{subscribers: make(map[chan string]bool)}

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Fill the buffer past capacity; writes must still return.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			b.Write([]byte("line\n"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Write blocked on a slow subscriber")
	}
}
