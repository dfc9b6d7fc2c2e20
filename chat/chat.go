// Package chat runs the reflection conversation with the Prism Lab researcher.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"hidden_piece/prompts"
	"hidden_piece/story"
)

// Role marks who wrote a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one chat bubble.
type Message struct {
	ID   string
	Role Role
	Text string
}

// Request is everything a Generator needs for one reply.
type Request struct {
	System  string
	History []Message
	Message string
}

// Generator produces the researcher's reply.
type Generator interface {
	Reply(ctx context.Context, req Request) (string, error)
}

// Replies shown in place of a generated answer.
const (
	NoKeyReply = "⚠️ The Gemini API key is not set. Add GEMINI_API_KEY to the .env file in the project root and restart the server."
	ErrorReply = "🔌 Something went wrong while reaching the researcher. Please try again in a moment."
	EmptyReply = "I couldn't come up with an answer. Please ask me again!"
)

// ErrBusy is returned while a reply is still being generated.
var ErrBusy = errors.New("chat: a reply is already pending")

// ErrEmpty is returned for a blank message.
var ErrEmpty = errors.New("chat: empty message")

// Conversation is the chat log of one playthrough. It is safe for concurrent use;
// at most one message is in flight at a time.
type Conversation struct {
	gen Generator

	mu       sync.Mutex
	system   string
	journal  string
	messages []Message
	busy     bool
}

// New starts a conversation greeted by the researcher. gen may be nil when no
// API key is configured.
func New(gen Generator, state story.GameState) *Conversation {
	c := &Conversation{gen: gen, system: SystemPrompt(state)}
	c.messages = []Message{{
		ID:   uuid.NewString(),
		Role: RoleModel,
		Text: fmt.Sprintf(prompts.Greeting, state.NPC.Name),
	}}
	return c
}

// SystemPrompt builds the researcher's instructions for a playthrough.
func SystemPrompt(state story.GameState) string {
	var b strings.Builder
	fmt.Fprintf(&b, prompts.BasePrompt, state.NPC.Name, state.NPC.Name)
	if state.GradeMode == story.GradeLow {
		b.WriteString(prompts.LowGradePrompt)
	} else {
		b.WriteString(prompts.HighGradePrompt)
	}
	return b.String()
}

// SetJournal records the reflection journal so replies can refer to it.
func (c *Conversation) SetJournal(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.journal = strings.TrimSpace(text)
}

// Journal returns the saved reflection journal.
func (c *Conversation) Journal() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.journal
}

// Messages returns a copy of the chat log.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

// Busy reports whether a reply is pending.
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Send posts text and waits for the reply. Failures never surface as errors:
// the reply is replaced by a placeholder line instead.
func (c *Conversation) Send(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmpty
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return Message{}, ErrBusy
	}
	c.busy = true
	req := Request{System: c.system, Message: text}
	if c.journal != "" {
		req.System += "\n" + fmt.Sprintf(prompts.JournalPrompt, c.journal)
	}
	// The greeting is shown but never sent back.
	req.History = append([]Message(nil), c.messages[1:]...)
	c.messages = append(c.messages, Message{ID: uuid.NewString(), Role: RoleUser, Text: text})
	c.mu.Unlock()

	reply := c.generate(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	msg := Message{ID: uuid.NewString(), Role: RoleModel, Text: reply}
	c.messages = append(c.messages, msg)
	c.busy = false
	return msg, nil
}

func (c *Conversation) generate(ctx context.Context, req Request) string {
	if c.gen == nil {
		return NoKeyReply
	}
	reply, err := c.gen.Reply(ctx, req)
	if err != nil {
		log.Printf("chat: generate reply: %v", err)
		return ErrorReply
	}
	if strings.TrimSpace(reply) == "" {
		return EmptyReply
	}
	return reply
}
