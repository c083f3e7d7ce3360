package chat

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironcoach/ironcoach/internal/client/session"
	"github.com/ironcoach/ironcoach/internal/model/coach"
	"github.com/ironcoach/ironcoach/pkg/logger"
)

const (
	// TypingText is the transient placeholder shown while the coach thinks.
	TypingText = "Coach is typing..."

	// ErrorText is the fixed fallback turn for a failed ask.
	ErrorText = "Sorry, I ran into a problem answering that. Please try again."
)

// TurnHandle identifies an appended turn so it can be removed precisely,
// even if another turn lands in between.
type TurnHandle int64

// Transcript renders the chat history. Append returns a handle for later
// removal; Remove of an unknown handle is a no-op.
type Transcript interface {
	Append(turn coach.Turn) TurnHandle
	Remove(handle TurnHandle)
}

// Composer is the message entry surface: busy state gates the submit
// control, Focus returns the caret to the input.
type Composer interface {
	SetBusy(busy bool)
	Focus()
}

// Asker performs the backend call for one question.
type Asker interface {
	Ask(ctx context.Context, question, conversationID string) (string, error)
}

// Pipeline owns the send/receive cycle for one conversation: optimistic
// user echo, typing placeholder, network call, result or apology, and
// composer re-enable on every path.
type Pipeline struct {
	session    *session.Session
	asker      Asker
	transcript Transcript
	composer   Composer
	log        *logrus.Entry
}

// NewPipeline wires a pipeline to its collaborators.
func NewPipeline(sess *session.Session, asker Asker, transcript Transcript, composer Composer) *Pipeline {
	return &Pipeline{
		session:    sess,
		asker:      asker,
		transcript: transcript,
		composer:   composer,
		log:        logger.With("component", "chat"),
	}
}

// Send runs one full chat turn. A question that trims to empty is rejected
// without any side effects. The composer is re-enabled and refocused on
// every exit path.
func (p *Pipeline) Send(ctx context.Context, question string) {
	if strings.TrimSpace(question) == "" {
		return
	}

	p.transcript.Append(coach.Turn{Role: coach.RoleUser, Text: question})
	p.composer.SetBusy(true)
	defer func() {
		p.composer.SetBusy(false)
		p.composer.Focus()
	}()

	placeholder := p.transcript.Append(coach.Turn{Role: coach.RoleCoach, Text: TypingText})

	answer, err := p.asker.Ask(ctx, question, p.session.ID())
	p.transcript.Remove(placeholder)

	if err != nil {
		p.log.WithError(err).Warn("ask failed")
		p.transcript.Append(coach.Turn{Role: coach.RoleCoach, Text: ErrorText})
		return
	}

	p.transcript.Append(coach.Turn{Role: coach.RoleCoach, Text: answer})
}
