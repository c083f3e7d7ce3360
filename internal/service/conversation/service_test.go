package conversation_test

import (
	"context"
	"testing"

	"github.com/ironcoach/ironcoach/internal/model/coach"
	"github.com/ironcoach/ironcoach/internal/service/conversation"
)

func TestAppendCreatesConversationLazily(t *testing.T) {
	svc := conversation.NewService()
	ctx := context.Background()

	svc.Append(ctx, "conv-1", coach.RoleUser, "hello")

	if _, err := svc.StartedAt(ctx, "conv-1"); err != nil {
		t.Fatalf("StartedAt err: %v", err)
	}
	history := svc.History(ctx, "conv-1", 0)
	if len(history) != 1 || history[0].Content != "hello" {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestHistoryLimitKeepsNewest(t *testing.T) {
	svc := conversation.NewService()
	ctx := context.Background()

	svc.Append(ctx, "conv-1", coach.RoleUser, "one")
	svc.Append(ctx, "conv-1", coach.RoleCoach, "two")
	svc.Append(ctx, "conv-1", coach.RoleUser, "three")

	history := svc.History(ctx, "conv-1", 2)
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Content != "two" || history[1].Content != "three" {
		t.Fatalf("limit should keep the newest turns: %+v", history)
	}
}

func TestHistoryUnknownConversationIsEmpty(t *testing.T) {
	svc := conversation.NewService()

	if history := svc.History(context.Background(), "missing", 10); len(history) != 0 {
		t.Fatalf("expected empty history, got %+v", history)
	}
}

func TestStartedAtUnknownConversation(t *testing.T) {
	svc := conversation.NewService()

	if _, err := svc.StartedAt(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown conversation")
	}
}
