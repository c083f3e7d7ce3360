package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ironcoach/ironcoach/internal/client/chart"
	"github.com/ironcoach/ironcoach/internal/client/chat"
	"github.com/ironcoach/ironcoach/internal/model/coach"
)

type recordingRenderer struct {
	created int
	updated int
	last    coach.Series
}

func (r *recordingRenderer) Create(series coach.Series) (chart.Handle, error) {
	r.created++
	r.last = series
	return r, nil
}

func (r *recordingRenderer) Update(_ chart.Handle, series coach.Series) error {
	r.updated++
	r.last = series
	return nil
}

type recordingPanel struct{ visible bool }

func (p *recordingPanel) SetVisible(v bool) { p.visible = v }

type recordingTranscript struct {
	turns []coach.Turn
	next  chat.TurnHandle
}

func (t *recordingTranscript) Append(turn coach.Turn) chat.TurnHandle {
	t.turns = append(t.turns, turn)
	t.next++
	return t.next
}

func (t *recordingTranscript) Remove(chat.TurnHandle) {}

type nopComposer struct{}

func (nopComposer) SetBusy(bool) {}
func (nopComposer) Focus()       {}

func TestStartRendersDefaultWindow(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/strength_volume_data" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(coach.Series{Labels: []string{"2025-06-01"}, Data: []float64{1000}})
	}))
	defer srv.Close()

	renderer := &recordingRenderer{}
	panel := &recordingPanel{}
	c := New(Options{
		ServerURL:  srv.URL,
		Renderer:   renderer,
		Panel:      panel,
		Transcript: &recordingTranscript{},
		Composer:   nopComposer{},
	})

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start err: %v", err)
	}

	if gotQuery != "duration=1&timeframe_unit=month" {
		t.Fatalf("default window should be one month, got query %q", gotQuery)
	}
	if renderer.created != 1 || !panel.visible {
		t.Fatalf("expected one visible chart, created=%d visible=%v", renderer.created, panel.visible)
	}
}

func TestChatAndChartShareBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/strength_volume_data":
			json.NewEncoder(w).Encode(coach.Series{})
		case "/ask":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["conversation_id"] == "" {
				t.Fatal("ask request missing conversation id")
			}
			json.NewEncoder(w).Encode(map[string]string{"answer": "Looking solid."})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	transcript := &recordingTranscript{}
	c := New(Options{
		ServerURL:  srv.URL,
		Renderer:   &recordingRenderer{},
		Panel:      &recordingPanel{},
		Transcript: transcript,
		Composer:   nopComposer{},
	})

	c.Chat.Send(context.Background(), "How was my week?")

	final := transcript.turns[len(transcript.turns)-1]
	if final.Role != coach.RoleCoach || final.Text != "Looking solid." {
		t.Fatalf("expected answer turn, got %+v", final)
	}
}
