package services

import (
	"context"
	"errors"
	"strings"
)

const (
	ChatGreeting  = "Hi! I'm your AI Travel Assistant. How can I help you tweak your itinerary?"
	ChatMockReply = "That sounds like a great idea! I can definitely help with that. (This is a mock response)"
)

var ErrEmptyMessage = errors.New("message is empty")

type Message struct {
	FromUser bool
	Text     string
}

// ChatService is the assistant shown next to an itinerary. Replies are canned.
type ChatService interface {
	Greeting() Message
	Reply(ctx context.Context, text string) (Message, error)
}

type chatService struct{}

func NewChatService() ChatService { return chatService{} }

func (chatService) Greeting() Message { return Message{Text: ChatGreeting} }

func (chatService) Reply(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}
	if err := ctx.Err(); err != nil {
		return Message{}, err
	}
	return Message{Text: ChatMockReply}, nil
}
