// Package chatbot answers fan questions from a fixed rule table, optionally
// asking an external backend before falling back to built-in answers.
package chatbot

import (
	"context"
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/crickethub/internal/logger"
)

const (
	SourceRules     = "rules"
	SourceBackend   = "backend"
	SourceKnowledge = "knowledge"
)

var ErrEmptyMessage = errors.New("message is required")

type Reply struct {
	Text   string `json:"reply"`
	Source string `json:"source"`
}

type Bot struct {
	backend Backend
}

// NewBot builds a bot; backend may be nil.
func NewBot(backend Backend) *Bot {
	return &Bot{backend: backend}
}

func (b *Bot) Respond(ctx context.Context, message string) (Reply, error) {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return Reply{}, ErrEmptyMessage
	}

	if text, ok := contextReply(msg); ok {
		return Reply{Text: text, Source: SourceRules}, nil
	}

	if b.backend != nil {
		text, err := b.backend.Ask(ctx, strings.TrimSpace(message))
		switch {
		case err != nil:
			logger.Warn("chatbot backend failed, using knowledge base: %v", err)
		case text != "":
			return Reply{Text: text, Source: SourceBackend}, nil
		}
	}

	return Reply{Text: knowledgeReply(msg), Source: SourceKnowledge}, nil
}
