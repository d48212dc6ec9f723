package convo_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/daroloh/voice-agent/pkg/convo"
)

func TestAppendExchange(t *testing.T) {
	store := convo.NewStore()

	store.AppendExchange("hello", "hi there")

	if store.Len() != 2 {
		t.Fatalf("expected 2 turns, got %d", store.Len())
	}

	window := store.Window(10)
	if window[0].Role != convo.RoleUser || window[0].Content != "hello" {
		t.Errorf("unexpected first turn: %+v", window[0])
	}
	if window[1].Role != convo.RoleAssistant || window[1].Content != "hi there" {
		t.Errorf("unexpected second turn: %+v", window[1])
	}
}

func TestWindowTruncatesOldest(t *testing.T) {
	store := convo.NewStore()

	for i := 0; i < 5; i++ {
		store.AppendExchange(fmt.Sprintf("user %d", i), fmt.Sprintf("reply %d", i))
	}

	window := store.Window(4)
	if len(window) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(window))
	}
	// Last two exchanges survive, oldest first.
	if window[0].Content != "user 3" {
		t.Errorf("expected oldest window entry 'user 3', got %q", window[0].Content)
	}
	if window[3].Content != "reply 4" {
		t.Errorf("expected newest window entry 'reply 4', got %q", window[3].Content)
	}
}

func TestWindowSmallerThanRequest(t *testing.T) {
	store := convo.NewStore()
	store.AppendExchange("only", "exchange")

	window := store.Window(10)
	if len(window) != 2 {
		t.Errorf("expected 2 turns, got %d", len(window))
	}
}

func TestWindowEmpty(t *testing.T) {
	store := convo.NewStore()
	if window := store.Window(10); window != nil {
		t.Errorf("expected nil window, got %v", window)
	}
	if window := store.Window(0); window != nil {
		t.Errorf("expected nil window for n=0, got %v", window)
	}
}

func TestReset(t *testing.T) {
	store := convo.NewStore()
	store.AppendExchange("hello", "hi")
	store.Reset()

	if store.Len() != 0 {
		t.Errorf("expected empty store after reset, got %d turns", store.Len())
	}
	if window := store.Window(10); window != nil {
		t.Errorf("expected nil window after reset, got %v", window)
	}
}

func TestCapTrimsOldest(t *testing.T) {
	store := convo.NewStoreWithCap(4)

	for i := 0; i < 10; i++ {
		store.AppendExchange(fmt.Sprintf("user %d", i), fmt.Sprintf("reply %d", i))
	}

	if store.Len() != 4 {
		t.Fatalf("expected capped length 4, got %d", store.Len())
	}

	window := store.Window(4)
	if window[0].Content != "user 8" {
		t.Errorf("expected oldest retained turn 'user 8', got %q", window[0].Content)
	}
}

func TestWindowIsACopy(t *testing.T) {
	store := convo.NewStore()
	store.AppendExchange("hello", "hi")

	window := store.Window(2)
	window[0].Content = "mutated"

	fresh := store.Window(2)
	if fresh[0].Content != "hello" {
		t.Error("window mutation leaked into the store")
	}
}

func TestConcurrentAppends(t *testing.T) {
	store := convo.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.AppendExchange(fmt.Sprintf("user %d", i), fmt.Sprintf("reply %d", i))
		}(i)
	}
	wg.Wait()

	if store.Len() != 100 {
		t.Fatalf("expected 100 turns, got %d", store.Len())
	}

	// Exchange pairs must never interleave: every user turn is followed by
	// its assistant turn.
	turns := store.Window(100)
	for i := 0; i < len(turns); i += 2 {
		if turns[i].Role != convo.RoleUser || turns[i+1].Role != convo.RoleAssistant {
			t.Fatalf("interleaved exchange at index %d: %v %v", i, turns[i].Role, turns[i+1].Role)
		}
	}
}
