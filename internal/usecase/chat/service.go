package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/curio-labs/searchlab/internal/domain"
	domchat "github.com/curio-labs/searchlab/internal/domain/chat"
	"github.com/curio-labs/searchlab/internal/media"
)

// History panel limits.
const (
	historyPanelSize = 20
	snapshotSize     = 50
	previewRuneLimit = 50
)

// topicVocabulary are the content words that register as conversation topics.
var topicVocabulary = []string{
	"ring", "necklace", "earrings", "bracelet", "pendant",
	"gold", "silver", "diamond", "pearl", "emerald", "sapphire",
}

// Reply is the outcome of posting a message: the assistant's answer plus the
// refreshed accumulated view.
type Reply struct {
	Message domchat.Message
	State   domchat.State
	Panels  []domchat.Panel
}

// Snapshot is the full accumulated view for the state endpoint.
type Snapshot struct {
	State    domchat.State
	Messages []domchat.Message
	Panels   []domchat.Panel
}

// Service maintains the conversation log and its accumulated statistics.
// State mutations serialize behind an internal lock; the log has its own.
type Service struct {
	log        Log
	transcribe media.Transcriber
	analyze    media.Analyzer

	mu    sync.Mutex
	state domchat.State

	now func() time.Time
}

// New creates a chat service.
func New(log Log, transcriber media.Transcriber, analyzer media.Analyzer) *Service {
	return &Service{
		log:        log,
		transcribe: transcriber,
		analyze:    analyzer,
		now:        time.Now,
	}
}

// SendText logs a user text message, updates state, and answers.
func (s *Service) SendText(ctx context.Context, content string) (Reply, error) {
	if content == "" {
		return Reply{}, fmt.Errorf("message content is required: %w", domain.ErrInvalidArgument)
	}

	userMsg := s.newMessage(domchat.TypeText, content, domchat.RoleUser, map[string]any{
		"length": len(content),
	})
	if err := s.log.Append(ctx, userMsg); err != nil {
		return Reply{}, fmt.Errorf("append user message: %w", err)
	}

	s.mu.Lock()
	s.state.MessageCount++
	s.state.TextCount++
	s.collectTopics(content)
	s.mu.Unlock()

	return s.respond(ctx, "Received your message. Updated the conversation state.")
}

// SendAudio transcribes an audio blob, logs it as a user message, and answers.
func (s *Service) SendAudio(ctx context.Context, audio []byte, mimeType string) (Reply, error) {
	transcription, err := s.transcribe.Transcribe(ctx, audio)
	if err != nil {
		return Reply{}, fmt.Errorf("transcribe audio: %w", err)
	}

	userMsg := s.newMessage(domchat.TypeAudio, transcription, domchat.RoleUser, map[string]any{
		"transcription": transcription,
		"mime_type":     mimeType,
		"file_size":     len(audio),
	})
	if err := s.log.Append(ctx, userMsg); err != nil {
		return Reply{}, fmt.Errorf("append audio message: %w", err)
	}

	s.mu.Lock()
	s.state.MessageCount++
	s.state.AudioCount++
	s.state.AddTopic("voice")
	s.collectTopics(transcription)
	s.mu.Unlock()

	return s.respond(ctx, "Message received.")
}

// SendImage analyzes an image blob, logs the detected features, and answers.
func (s *Service) SendImage(ctx context.Context, image []byte, fileName, mimeType string) (Reply, error) {
	features, err := s.analyze.Analyze(ctx, image)
	if err != nil {
		return Reply{}, fmt.Errorf("analyze image: %w", err)
	}

	content := strings.Join(features, ", ")
	userMsg := s.newMessage(domchat.TypeImage, content, domchat.RoleUser, map[string]any{
		"features":  features,
		"file_name": fileName,
		"mime_type": mimeType,
		"file_size": len(image),
	})
	if err := s.log.Append(ctx, userMsg); err != nil {
		return Reply{}, fmt.Errorf("append image message: %w", err)
	}

	s.mu.Lock()
	s.state.MessageCount++
	s.state.ImageCount++
	s.state.AddTopic("visual")
	s.collectTopics(content)
	s.mu.Unlock()

	return s.respond(ctx, "Message received.")
}

// State returns the current accumulated view over the conversation.
func (s *Service) State(ctx context.Context) Snapshot {
	s.mu.Lock()
	state := s.snapshotState()
	s.mu.Unlock()

	return Snapshot{
		State:    state,
		Messages: s.log.Recent(ctx, snapshotSize),
		Panels:   s.panels(ctx),
	}
}

// Clear drops the log and resets the accumulated state.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.log.Clear(ctx); err != nil {
		return fmt.Errorf("clear chat log: %w", err)
	}
	s.mu.Lock()
	s.state = domchat.State{}
	s.mu.Unlock()
	return nil
}

// respond logs the assistant answer and assembles the reply.
func (s *Service) respond(ctx context.Context, content string) (Reply, error) {
	msg := s.newMessage(domchat.TypeText, content, domchat.RoleAssistant, nil)
	if err := s.log.Append(ctx, msg); err != nil {
		return Reply{}, fmt.Errorf("append assistant message: %w", err)
	}

	s.mu.Lock()
	state := s.snapshotState()
	s.mu.Unlock()

	return Reply{Message: msg, State: state, Panels: s.panels(ctx)}, nil
}

func (s *Service) newMessage(
	typ domchat.MessageType, content string, role domchat.Role, metadata map[string]any,
) domchat.Message {
	return domchat.Message{
		ID:        newMessageID(s.now()),
		Type:      typ,
		Content:   content,
		Timestamp: s.now(),
		Role:      role,
		Metadata:  metadata,
	}
}

// collectTopics registers vocabulary words found in the content. Caller
// holds s.mu.
func (s *Service) collectTopics(content string) {
	lower := strings.ToLower(content)
	for _, topic := range topicVocabulary {
		if strings.Contains(lower, topic) {
			s.state.AddTopic(topic)
		}
	}
}

// snapshotState copies the state so callers never share the topics slice.
// Caller holds s.mu.
func (s *Service) snapshotState() domchat.State {
	state := s.state
	state.Topics = append([]string(nil), s.state.Topics...)
	return state
}

// panels builds the dynamic accumulated views.
func (s *Service) panels(ctx context.Context) []domchat.Panel {
	recent := s.log.Recent(ctx, historyPanelSize)
	if len(recent) == 0 {
		return nil
	}

	lines := make([]string, 0, len(recent))
	for _, msg := range recent {
		lines = append(lines, fmt.Sprintf("[%s] %s", msg.Role, preview(msg.Content)))
	}
	return []domchat.Panel{{Title: "History", Content: strings.Join(lines, "\n")}}
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewRuneLimit {
		return content
	}
	return string(runes[:previewRuneLimit]) + "..."
}

// newMessageID mints a log-friendly unique ID.
func newMessageID(now time.Time) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("msg_%s_%d", hex[:8], now.Unix())
}
