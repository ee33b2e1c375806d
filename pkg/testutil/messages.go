// pkg/testutil/messages.go
// DEPENDENCIES: pkg/types
// PURPOSE: Capture user messages and script confirmation answers

package testutil

import (
	"fmt"
	"sync"

	"github.com/arthur-debert/dotm/pkg/types"
)

// Message is one recorded user message
type Message struct {
	Level string
	Text  string
}

// RecordingMessenger implements types.Messenger and keeps every message
type RecordingMessenger struct {
	mu       sync.Mutex
	Messages []Message
}

var _ types.Messenger = (*RecordingMessenger)(nil)

func (r *RecordingMessenger) Info(msg string) { r.record("info", msg) }
func (r *RecordingMessenger) Warn(msg string) { r.record("warning", msg) }

func (r *RecordingMessenger) record(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, Message{Level: level, Text: msg})
}

// Texts returns the recorded messages formatted as "level: text"
func (r *RecordingMessenger) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Messages))
	for i, m := range r.Messages {
		out[i] = fmt.Sprintf("%s: %s", m.Level, m.Text)
	}
	return out
}

// Answers replays scripted replies to confirmation prompts and records
// the prompts asked
type Answers struct {
	Replies []bool
	Err     error
	Prompts []string
}

// Confirm implements types.ConfirmFunc. Without scripted replies left it
// returns the prompt's default.
func (a *Answers) Confirm(prompt string, defaultValue bool) (bool, error) {
	a.Prompts = append(a.Prompts, prompt)
	if a.Err != nil {
		return false, a.Err
	}
	if len(a.Replies) == 0 {
		return defaultValue, nil
	}
	reply := a.Replies[0]
	a.Replies = a.Replies[1:]
	return reply, nil
}
