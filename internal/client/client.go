// Package client hosts the headless interaction state machine for the coach
// UI: one conversation session, one chart, and the command handlers that
// connect user input to backend calls. Rendering is delegated to adapters so
// the whole machine runs without a browser.
package client

import (
	"context"
	"net/http"

	"github.com/ironcoach/ironcoach/internal/client/api"
	"github.com/ironcoach/ironcoach/internal/client/chart"
	"github.com/ironcoach/ironcoach/internal/client/chat"
	"github.com/ironcoach/ironcoach/internal/client/session"
	"github.com/ironcoach/ironcoach/internal/client/timeframe"
)

// Client is the owned-state object for one page-equivalent lifetime: the
// conversation id, the single chart handle (inside the presenter), and the
// interaction pipelines.
type Client struct {
	Session   *session.Session
	Timeframe *timeframe.Controller
	Chart     *chart.Presenter
	Chat      *chat.Pipeline
}

// Options carries the adapters a host must supply.
type Options struct {
	ServerURL  string
	HTTPClient *http.Client
	Renderer   chart.Renderer
	Panel      chart.Panel
	Transcript chat.Transcript
	Composer   chat.Composer
}

// New assembles a client. The conversation identifier is minted here, once.
func New(opts Options) *Client {
	backend := api.New(opts.ServerURL, opts.HTTPClient)
	sess := session.New()
	presenter := chart.NewPresenter(backend, opts.Renderer, opts.Panel)

	return &Client{
		Session:   sess,
		Chart:     presenter,
		Timeframe: timeframe.NewController(presenter),
		Chat:      chat.NewPipeline(sess, backend, opts.Transcript, opts.Composer),
	}
}

// Start renders the default chart window, mirroring first paint on page
// load. Chat needs no warm-up; the session id already exists.
func (c *Client) Start(ctx context.Context) error {
	return c.Timeframe.ApplyDefault(ctx)
}
