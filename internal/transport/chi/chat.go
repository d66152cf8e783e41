package chi

import (
	"encoding/json"
	"net/http"
	"time"

	domchat "github.com/curio-labs/searchlab/internal/domain/chat"
	"github.com/curio-labs/searchlab/internal/metrics"
	chatuc "github.com/curio-labs/searchlab/internal/usecase/chat"
)

type chatMessage struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Content   string         `json:"content"`
	Timestamp string         `json:"timestamp"`
	Role      string         `json:"role"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type chatPanel struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type chatState struct {
	MessageCount int      `json:"message_count"`
	TextCount    int      `json:"text_count"`
	AudioCount   int      `json:"audio_count"`
	ImageCount   int      `json:"image_count"`
	Topics       []string `json:"topics"`
}

type chatReply struct {
	Message     chatMessage `json:"message"`
	State       chatState   `json:"state"`
	Accumulated []chatPanel `json:"accumulated"`
}

type textBody struct {
	Content string `json:"content"`
}

// handleChatText handles POST /api/chat/text.
func (s *Server) handleChatText(w http.ResponseWriter, r *http.Request) {
	var body textBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	reply, err := s.chat.SendText(r.Context(), body.Content)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.ChatMessagesTotal.WithLabelValues("text").Inc()
	writeJSON(w, http.StatusOK, replyToAPI(reply))
}

// handleChatAudio handles POST /api/chat/audio.
func (s *Server) handleChatAudio(w http.ResponseWriter, r *http.Request) {
	audio, ok := s.readUpload(w, r, "audio")
	if !ok {
		return
	}

	s.latency.sleep()

	reply, err := s.chat.SendAudio(r.Context(), audio, r.Header.Get("Content-Type"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.ChatMessagesTotal.WithLabelValues("audio").Inc()
	writeJSON(w, http.StatusOK, replyToAPI(reply))
}

// handleChatImage handles POST /api/chat/image.
func (s *Server) handleChatImage(w http.ResponseWriter, r *http.Request) {
	image, ok := s.readUpload(w, r, "image")
	if !ok {
		return
	}

	s.latency.sleep()

	reply, err := s.chat.SendImage(r.Context(), image, "", r.Header.Get("Content-Type"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.ChatMessagesTotal.WithLabelValues("image").Inc()
	writeJSON(w, http.StatusOK, replyToAPI(reply))
}

// handleChatState handles GET /api/chat/state.
func (s *Server) handleChatState(w http.ResponseWriter, r *http.Request) {
	snap := s.chat.State(r.Context())

	msgs := make([]chatMessage, len(snap.Messages))
	for i, m := range snap.Messages {
		msgs[i] = messageToAPI(m)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"state":       stateToAPI(snap.State),
		"messages":    msgs,
		"accumulated": panelsToAPI(snap.Panels),
	})
}

// handleChatClear handles POST /api/chat/clear.
func (s *Server) handleChatClear(w http.ResponseWriter, r *http.Request) {
	if err := s.chat.Clear(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "cleared",
		"state":       stateToAPI(domchat.State{}),
		"accumulated": []chatPanel{},
	})
}

func replyToAPI(reply chatuc.Reply) chatReply {
	return chatReply{
		Message:     messageToAPI(reply.Message),
		State:       stateToAPI(reply.State),
		Accumulated: panelsToAPI(reply.Panels),
	}
}

func messageToAPI(m domchat.Message) chatMessage {
	return chatMessage{
		ID:        m.ID,
		Type:      string(m.Type),
		Content:   m.Content,
		Timestamp: m.Timestamp.Format(time.RFC3339),
		Role:      string(m.Role),
		Metadata:  m.Metadata,
	}
}

func stateToAPI(st domchat.State) chatState {
	topics := st.Topics
	if topics == nil {
		topics = []string{}
	}
	return chatState{
		MessageCount: st.MessageCount,
		TextCount:    st.TextCount,
		AudioCount:   st.AudioCount,
		ImageCount:   st.ImageCount,
		Topics:       topics,
	}
}

func panelsToAPI(panels []domchat.Panel) []chatPanel {
	out := make([]chatPanel, len(panels))
	for i, p := range panels {
		out[i] = chatPanel{Title: p.Title, Content: p.Content}
	}
	return out
}
