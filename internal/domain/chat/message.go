// Package chat holds the message-log bookkeeping types for the dual-panel
// chat collaborator. This is unrelated to the search core; it only shares
// the media mocks.
package chat

import "time"

// MessageType distinguishes how a message entered the conversation.
type MessageType string

// Message type constants.
const (
	TypeText  MessageType = "text"
	TypeAudio MessageType = "audio"
	TypeImage MessageType = "image"
)

// Role identifies the message author.
type Role string

// Role constants.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat log entry.
type Message struct {
	ID        string
	Type      MessageType
	Content   string
	Timestamp time.Time
	Role      Role
	Metadata  map[string]any
}

// State accumulates lightweight statistics over the conversation.
type State struct {
	MessageCount int
	TextCount    int
	AudioCount   int
	ImageCount   int
	Topics       []string
}

// HasTopic reports whether the topic was already recorded.
func (s *State) HasTopic(topic string) bool {
	for _, t := range s.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// AddTopic records a topic once, preserving first-seen order.
func (s *State) AddTopic(topic string) {
	if !s.HasTopic(topic) {
		s.Topics = append(s.Topics, topic)
	}
}

// Panel is a dynamic view over the accumulated state.
type Panel struct {
	Title   string
	Content string
}
