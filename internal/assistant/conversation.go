package assistant

import (
	"context"
	"errors"
	"sync"
)

// Origin identifies who produced a transcript message.
type Origin string

const (
	OriginOperator Origin = "operator"
	OriginSystem   Origin = "system"
)

// Message is one transcript entry. Messages are appended, never mutated or
// pruned, for the lifetime of the session.
type Message struct {
	Origin Origin
	Text   string
}

// Conversation is the append-only transcript.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
	onAppend func(Message)
}

// NewConversation creates an empty transcript. onAppend, when non-nil, is
// invoked for every appended message (used by the CLI to print live).
func NewConversation(onAppend func(Message)) *Conversation {
	return &Conversation{onAppend: onAppend}
}

// Append adds one message to the transcript.
func (c *Conversation) Append(origin Origin, text string) {
	c.mu.Lock()
	c.messages = append(c.messages, Message{Origin: origin, Text: text})
	hook := c.onAppend
	c.mu.Unlock()

	if hook != nil {
		hook(Message{Origin: origin, Text: text})
	}
}

// Messages returns a copy of the transcript in append order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// ErrBusy is returned when input arrives while a command is in flight.
var ErrBusy = errors.New("a command is already running")

// Controller drives the conversation: it owns the busy flag, feeds input
// through the interpreter and runs the executor synchronously. Commands
// never interleave; new input is rejected until the current command's
// terminal message is appended.
type Controller struct {
	conversation *Conversation
	executor     *Executor

	mu   sync.Mutex
	busy bool
}

// NewController builds a controller.
func NewController(conversation *Conversation, executor *Executor) *Controller {
	return &Controller{conversation: conversation, executor: executor}
}

// Submit processes one line of operator input. The acknowledgment is
// appended before any network call and exactly one terminal message is
// appended after the command resolves, success or failure.
func (c *Controller) Submit(ctx context.Context, input string) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}()

	c.conversation.Append(OriginOperator, input)

	intent := Interpret(input)
	if ack, ok := Acknowledgment(intent); ok {
		c.conversation.Append(OriginSystem, ack)
	}

	c.conversation.Append(OriginSystem, c.executor.Execute(ctx, intent))
	return nil
}

// Busy reports whether a command is currently in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}
