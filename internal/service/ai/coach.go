// Package ai runs the coach model chain: context assembly, prompt
// templating and chat completion.
package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/sirupsen/logrus"

	"github.com/ironcoach/ironcoach/internal/model/coach"
	"github.com/ironcoach/ironcoach/internal/model/health"
	"github.com/ironcoach/ironcoach/internal/service/conversation"
	"github.com/ironcoach/ironcoach/pkg/logger"
)

const (
	summaryDays  = 7
	workoutDates = 3
	historyLimit = 10
)

// HealthSource provides the user's recent data and persists finished
// exchanges.
type HealthSource interface {
	RecentSummaries(ctx context.Context, limit int) ([]health.DailySummary, error)
	RecentStrengthSets(ctx context.Context, dates int) ([]health.WorkoutSet, error)
	SaveChat(ctx context.Context, userText, coachText string) error
}

// ContextRetriever returns knowledge-base context for a question. May be
// nil when no embedder is configured.
type ContextRetriever interface {
	Context(ctx context.Context, question string) string
}

// Coach encapsulates the AI answer flow for the ask endpoint.
type Coach struct {
	chain         compose.Runnable[map[string]any, *schema.Message]
	conversations *conversation.Service
	source        HealthSource
	retriever     ContextRetriever
	log           *logrus.Entry
}

// NewCoach compiles the prompt/model chain and wires the context sources.
func NewCoach(ctx context.Context, chatModel model.ChatModel, conversations *conversation.Service, source HealthSource, retriever ContextRetriever) (*Coach, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile coach chain: %w", err)
	}

	return &Coach{
		chain:         runnable,
		conversations: conversations,
		source:        source,
		retriever:     retriever,
		log:           logger.With("component", "ai"),
	}, nil
}

// Answer assembles the user's health context, runs the chain, and records
// the exchange under the client-supplied conversation id.
func (c *Coach) Answer(ctx context.Context, conversationID, question string) (string, error) {
	knowledgeContext := ""
	if c.retriever != nil {
		knowledgeContext = c.retriever.Context(ctx, question)
	}

	summaries, err := c.source.RecentSummaries(ctx, summaryDays)
	if err != nil {
		return "", fmt.Errorf("load daily summaries: %w", err)
	}
	sets, err := c.source.RecentStrengthSets(ctx, workoutDates)
	if err != nil {
		return "", fmt.Errorf("load strength sets: %w", err)
	}

	input := map[string]any{
		"system":  buildSystemPrompt(knowledgeContext, summaries, sets),
		"history": c.historyMessages(ctx, conversationID),
		"query":   question,
	}

	response, err := c.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("run coach chain: %w", err)
	}

	c.conversations.Append(ctx, conversationID, coach.RoleUser, question)
	c.conversations.Append(ctx, conversationID, coach.RoleCoach, response.Content)
	if err := c.source.SaveChat(ctx, question, response.Content); err != nil {
		// History persistence is best effort; the answer still stands.
		c.log.WithError(err).Warn("failed to persist chat history")
	}

	c.log.WithFields(logrus.Fields{
		"conversation": conversationID,
		"length":       len(response.Content),
	}).Info("generated coach answer")
	return response.Content, nil
}

func (c *Coach) historyMessages(ctx context.Context, conversationID string) []*schema.Message {
	msgs := c.conversations.History(ctx, conversationID, historyLimit)
	if len(msgs) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case coach.RoleUser:
			history = append(history, schema.UserMessage(m.Content))
		case coach.RoleCoach:
			history = append(history, schema.AssistantMessage(m.Content, nil))
		}
	}
	return history
}
