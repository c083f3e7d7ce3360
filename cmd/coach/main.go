// Command coach is the interactive terminal client: a continuous chat
// session with the coach backend plus a /chart command that rewrites the
// strength volume chart for a chosen timeframe window.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ironcoach/ironcoach/internal/client"
	"github.com/ironcoach/ironcoach/internal/client/chat"
	"github.com/ironcoach/ironcoach/internal/config"
	"github.com/ironcoach/ironcoach/internal/model/coach"
	"github.com/ironcoach/ironcoach/internal/render/echarts"
	"github.com/ironcoach/ironcoach/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debugf("no .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()

	transcript := &terminalTranscript{out: os.Stdout}
	c := client.New(client.Options{
		ServerURL:  cfg.Client.ServerURL,
		Renderer:   echarts.New(cfg.Client.ChartPath),
		Panel:      &terminalPanel{out: os.Stdout, path: cfg.Client.ChartPath},
		Transcript: transcript,
		Composer:   terminalComposer{},
	})

	fmt.Println("AI Health Coach — ask about your training, type 'quit' to exit.")
	fmt.Println("Commands: /chart <week|month|all> [duration]")

	if err := c.Start(ctx); err != nil {
		logger.Warnf("initial chart render failed: %v", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "quit":
			fmt.Println("Coach: Stay strong. See you next session!")
			return
		case strings.HasPrefix(line, "/chart"):
			runChartCommand(ctx, c, line)
		default:
			c.Chat.Send(ctx, line)
		}
	}
}

func runChartCommand(ctx context.Context, c *client.Client, line string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		fmt.Println("usage: /chart <week|month|all> [duration]")
		return
	}

	unit, err := coach.ParseUnit(fields[1])
	if err != nil {
		fmt.Println("unknown unit, expected week, month or all")
		return
	}

	rawDuration := ""
	if len(fields) > 2 {
		rawDuration = fields[2]
	}

	if err := c.Timeframe.Apply(ctx, unit, rawDuration); err != nil {
		if errors.Is(err, coach.ErrInvalidDuration) {
			// The validation alert of the browser UI.
			fmt.Println("Please enter a valid positive number for the duration.")
			return
		}
		fmt.Println("chart refresh failed:", err)
	}
}

// terminalTranscript renders coach turns to stdout. User turns were already
// typed by the user, so echoing them is skipped; removing the typing
// placeholder is a no-op on an append-only terminal.
type terminalTranscript struct {
	out    *os.File
	nextID chat.TurnHandle
}

func (t *terminalTranscript) Append(turn coach.Turn) chat.TurnHandle {
	t.nextID++
	if turn.Role == coach.RoleCoach {
		fmt.Fprintf(t.out, "\nCoach: %s\n", turn.Text)
	}
	return t.nextID
}

func (t *terminalTranscript) Remove(chat.TurnHandle) {}

// terminalComposer has nothing to disable: the read loop is synchronous.
type terminalComposer struct{}

func (terminalComposer) SetBusy(bool) {}
func (terminalComposer) Focus()       {}

// terminalPanel reports chart availability instead of toggling a DOM node.
type terminalPanel struct {
	out  *os.File
	path string
}

func (p *terminalPanel) SetVisible(visible bool) {
	if visible {
		fmt.Fprintf(p.out, "[chart] updated: %s\n", p.path)
	} else {
		fmt.Fprintln(p.out, "[chart] unavailable right now")
	}
}
