package reply

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Canned responses for the rule-based tier. The greeting and default
// entries are fixed strings; callers can rely on them being stable.
const (
	greetingResponse = "Hello! How can I help you today?"
	defaultResponse  = "I heard you, but I'm running in offline mode right now. I can still tell you the time or the date, or just keep you company."
)

// rule is one entry in the ordered dispatch table: a predicate over the
// lowercased user text and a response builder. First match wins.
type rule struct {
	category string
	match    func(text string) bool
	respond  func(now time.Time, text string) string
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func hasPrefixAny(text string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

func canned(response string) func(time.Time, string) string {
	return func(time.Time, string) string { return response }
}

// ruleTable is evaluated top to bottom. The final entry matches
// unconditionally, so dispatch always produces a response.
var ruleTable = []rule{
	{
		category: "greeting",
		match: func(t string) bool {
			return containsAny(t, "hello", "hi ", "hey", "good morning", "good afternoon", "good evening") ||
				t == "hi"
		},
		respond: canned(greetingResponse),
	},
	{
		category: "well-being",
		match: func(t string) bool {
			return containsAny(t, "how are you", "how's it going", "how are things")
		},
		respond: canned("I'm doing well, thanks for asking! How are you?"),
	},
	{
		category: "identity",
		match: func(t string) bool {
			return containsAny(t, "your name", "who are you", "what are you")
		},
		respond: canned("I'm your voice assistant. I listen, I answer, and I talk back."),
	},
	{
		category: "time-date",
		match: func(t string) bool {
			return containsAny(t, "what time", "the time", "what day", "the date", "today's date")
		},
		respond: func(now time.Time, _ string) string {
			return fmt.Sprintf("It's %s on %s.",
				now.Format("3:04 PM"),
				now.Format("Monday, January 2"))
		},
	},
	{
		category: "weather",
		match: func(t string) bool {
			return containsAny(t, "weather", "raining", "sunny", "temperature outside")
		},
		respond: canned("I can't check the weather right now, but I'd suggest a look out the window!"),
	},
	{
		category: "gratitude",
		match: func(t string) bool {
			return containsAny(t, "thank", "appreciate it")
		},
		respond: canned("You're very welcome!"),
	},
	{
		category: "farewell",
		match: func(t string) bool {
			return containsAny(t, "goodbye", "bye", "see you later", "good night")
		},
		respond: canned("Goodbye! It was nice talking with you."),
	},
	{
		category: "help",
		match: func(t string) bool {
			return containsAny(t, "help", "what can you do")
		},
		respond: canned("You can ask me about the time, the date, or just chat. My smarter answers come back once I'm reconnected."),
	},
	{
		category: "opinion",
		match: func(t string) bool {
			return containsAny(t, "what do you think", "your opinion", "do you like")
		},
		respond: canned("That's an interesting one. I don't have strong opinions while offline, but I'd love to hear yours."),
	},
	{
		category: "compliment",
		match: func(t string) bool {
			return containsAny(t, "you're great", "you are great", "well done", "good job", "awesome", "amazing")
		},
		respond: canned("That's very kind of you, thank you!"),
	},
	{
		category: "wh-question",
		match: func(t string) bool {
			return hasPrefixAny(t, "what", "who", "where", "when", "why", "how")
		},
		respond: canned("Good question! I can't look that up right now, but ask me again in a moment."),
	},
	{
		category: "default",
		match:    func(string) bool { return true },
		respond:  canned(defaultResponse),
	},
}

// Rules is the deterministic rule-based responder: the last tier of the
// generation chain. It matches the user's text against an ordered category
// table and always returns a response, so Chat never fails.
type Rules struct {
	// now is swapped in tests for a fixed clock.
	now func() time.Time
}

// NewRules creates the rule-based responder.
func NewRules() *Rules {
	return &Rules{now: time.Now}
}

// Name identifies the provider.
func (r *Rules) Name() string {
	return "rules"
}

// Chat matches the latest user message against the category table.
// It always succeeds.
func (r *Rules) Chat(_ context.Context, req *ChatRequest) (*ChatResponse, error) {
	return &ChatResponse{
		Content: r.Respond(lastUserText(req.Messages)),
		Model:   "rules",
	}, nil
}

// Respond returns the canned or templated response for the given user text.
func (r *Rules) Respond(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range ruleTable {
		if rule.match(lowered) {
			return rule.respond(r.now(), lowered)
		}
	}
	// Unreachable: the table ends with an unconditional default.
	return defaultResponse
}

// Health always succeeds; the responder has no external dependency.
func (r *Rules) Health(context.Context) error {
	return nil
}

// Close releases nothing.
func (r *Rules) Close() error {
	return nil
}

func lastUserText(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

// Verify Rules implements Provider at compile time.
var _ Provider = (*Rules)(nil)
