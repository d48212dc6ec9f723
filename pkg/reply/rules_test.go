package reply_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/daroloh/voice-agent/pkg/reply"
)

func TestRulesCategories(t *testing.T) {
	rules := reply.NewRules()

	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"greeting", "hello there", "Hello"},
		{"greeting hey", "hey, anyone home?", "Hello"},
		{"well-being", "how are you doing today", "doing well"},
		{"identity", "what is your name", "voice assistant"},
		{"weather", "is it raining outside", "weather"},
		{"gratitude", "thank you so much", "welcome"},
		{"farewell", "ok goodbye now", "Goodbye"},
		{"help", "can you help me", "ask me"},
		{"opinion", "what do you think about jazz", "opinions"},
		{"compliment", "you did a good job", "kind of you"},
		{"wh-question", "where is the nearest station", "Good question"},
		{"default", "zzz unmatched gibberish", "offline mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Respond(tt.input)
			if got == "" {
				t.Fatal("expected non-empty response")
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Respond(%q) = %q, expected it to contain %q", tt.input, got, tt.contains)
			}
		})
	}
}

func TestRulesTimeDate(t *testing.T) {
	rules := reply.NewRules()

	got := rules.Respond("what time is it")
	if got == "" {
		t.Fatal("expected non-empty response")
	}

	// The response embeds the current local time and date.
	now := time.Now()
	if !strings.Contains(got, now.Format("Monday")) {
		t.Errorf("expected weekday %q in response %q", now.Format("Monday"), got)
	}
	if !strings.Contains(got, now.Format("January")) {
		t.Errorf("expected month %q in response %q", now.Format("January"), got)
	}
}

func TestRulesFirstMatchWins(t *testing.T) {
	rules := reply.NewRules()

	// "hello, what time is it" matches greeting before time-date.
	got := rules.Respond("hello, what time is it")
	if !strings.Contains(got, "Hello") {
		t.Errorf("expected greeting to win, got %q", got)
	}
}

func TestRulesChatNeverFails(t *testing.T) {
	rules := reply.NewRules()

	inputs := []string{"", "hello", "xyzzy", strings.Repeat("a", 10000)}
	for _, input := range inputs {
		resp, err := rules.Chat(context.Background(), &reply.ChatRequest{
			Messages: []reply.Message{reply.NewUserMessage(input)},
		})
		if err != nil {
			t.Fatalf("Chat(%q) failed: %v", input, err)
		}
		if resp.Content == "" {
			t.Errorf("Chat(%q) returned empty content", input)
		}
	}
}

func TestRulesUsesLastUserMessage(t *testing.T) {
	rules := reply.NewRules()

	resp, err := rules.Chat(context.Background(), &reply.ChatRequest{
		Messages: []reply.Message{
			reply.NewSystemMessage("contract"),
			reply.NewUserMessage("what time is it"),
			reply.NewAssistantMessage("it's late"),
			reply.NewUserMessage("thanks a lot"),
		},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if !strings.Contains(resp.Content, "welcome") {
		t.Errorf("expected gratitude response for last user message, got %q", resp.Content)
	}
}

func TestRulesHealth(t *testing.T) {
	if err := reply.NewRules().Health(context.Background()); err != nil {
		t.Errorf("expected rules tier to always be healthy, got %v", err)
	}
}
