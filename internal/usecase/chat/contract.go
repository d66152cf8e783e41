package chat

import (
	"context"

	domchat "github.com/curio-labs/searchlab/internal/domain/chat"
)

// Log defines the message storage contract.
type Log interface {
	Append(ctx context.Context, msg domchat.Message) error
	Recent(ctx context.Context, n int) []domchat.Message
	Len(ctx context.Context) int
	Clear(ctx context.Context) error
}
