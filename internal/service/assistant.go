package service

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// ─────────────────────────────────────────────────────────────
// Assistant Service — canned writing suggestions
// ─────────────────────────────────────────────────────────────

// Quick actions accepted by QuickAction.
const (
	ActionImprove   = "improve"
	ActionGrammar   = "grammar"
	ActionShorten   = "shorten"
	ActionExplain   = "explain"
	ActionContinue  = "continue"
	ActionSummarize = "summarize"
)

// Suggestion is one canned assistant response.
type Suggestion struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Context string   `json:"context"`
	Actions []string `json:"actions"`
}

// Message is one entry in an assistant conversation.
type Message struct {
	Role      string     `json:"role"` // "user" or "assistant"
	Content   string     `json:"content"`
	Response  Suggestion `json:"response,omitzero"`
	Timestamp time.Time  `json:"timestamp"`
}

var cannedSuggestions = []Suggestion{
	{
		ID:      "ai-1",
		Type:    "suggestion",
		Title:   "Content Enhancement",
		Content: "I can help you expand this section with more detailed examples and supporting information.",
		Context: "paragraph",
		Actions: []string{"Expand", "Add Examples", "Improve Clarity"},
	},
	{
		ID:      "ai-2",
		Type:    "grammar",
		Title:   "Grammar Check",
		Content: "Consider revising this sentence for better readability and flow.",
		Context: "sentence",
		Actions: []string{"Fix Grammar", "Improve Tone", "Simplify"},
	},
	{
		ID:      "ai-3",
		Type:    "structure",
		Title:   "Document Structure",
		Content: "This section might work better as a bulleted list for improved readability.",
		Context: "block",
		Actions: []string{"Convert to List", "Add Headings", "Reorganize"},
	},
	{
		ID:      "ai-4",
		Type:    "completion",
		Title:   "Smart Completion",
		Content: "Based on your writing pattern, here are some suggested continuations for this paragraph.",
		Context: "writing",
		Actions: []string{"Accept Suggestion", "Generate Alternative", "Continue Writing"},
	},
	{
		ID:      "ai-5",
		Type:    "research",
		Title:   "Research Assistant",
		Content: "I found some relevant information that might support your argument in this section.",
		Context: "topic",
		Actions: []string{"Add Citation", "Include Facts", "Verify Information"},
	},
}

var quickActionPrompts = map[string]string{
	ActionImprove:   "Please improve this text: %q",
	ActionGrammar:   "Fix the grammar in: %q",
	ActionShorten:   "Make this text shorter: %q",
	ActionExplain:   "Explain this: %q",
	ActionContinue:  "Continue writing from: %q",
	ActionSummarize: "Summarize this: %q",
}

// AssistantService serves canned writing suggestions. Responses are
// picked pseudo-randomly from a fixed pool; there is no model behind
// it, the point is a stable surface the rest of the app can talk to.
type AssistantService struct {
	rng *rand.Rand

	mu      sync.Mutex
	history []Message
}

// NewAssistantService creates an AssistantService. A non-zero seed
// makes the response sequence deterministic, which tests rely on.
func NewAssistantService(seed int64) *AssistantService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &AssistantService{rng: rand.New(rand.NewSource(seed))}
}

// Ask records the prompt and returns a canned suggestion.
func (s *AssistantService) Ask(prompt string) Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := cannedSuggestions[s.rng.Intn(len(cannedSuggestions))]
	now := time.Now()
	s.history = append(s.history,
		Message{Role: "user", Content: prompt, Timestamp: now},
		Message{Role: "assistant", Content: resp.Content, Response: resp, Timestamp: now},
	)
	return resp
}

// QuickAction expands a named action over the selected text into a
// prompt and asks it. Unknown actions fall back to a generic prompt.
func (s *AssistantService) QuickAction(action, selectedText string) Suggestion {
	tmpl, ok := quickActionPrompts[strings.ToLower(action)]
	if !ok {
		return s.Ask(fmt.Sprintf("Help me with: %s", action))
	}
	return s.Ask(fmt.Sprintf(tmpl, selectedText))
}

// History returns a copy of the conversation so far.
func (s *AssistantService) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// ClearHistory drops the conversation.
func (s *AssistantService) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}
