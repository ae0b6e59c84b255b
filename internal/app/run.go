package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bft-labs/chatpost/internal/payload"
	"github.com/bft-labs/chatpost/internal/watch"
	"github.com/bft-labs/chatpost/pkg/log"
	"github.com/bft-labs/chatpost/pkg/sender"
)

// ErrWatchWithoutFile is returned when watch mode is requested without a payload file.
var ErrWatchWithoutFile = errors.New("watch requires a payload file")

// Poster sends one payload to one endpoint. *sender.Sender satisfies it.
type Poster interface {
	Send(ctx context.Context, endpoint string, payload any) (*sender.Response, error)
}

// Request describes one invocation of a chatpost command.
type Request struct {
	URL string

	// Build produces the payload from command-line input. It is ignored
	// when PayloadFile is set.
	Build func() (any, error)

	PayloadFile string
	Watch       bool
	Debounce    time.Duration
}

// App runs send requests and reports their outcome.
type App struct {
	poster Poster
	logger log.Logger
}

// New creates an App.
func New(poster Poster, logger log.Logger) *App {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &App{poster: poster, logger: logger}
}

// Run sends the request's payload once and, in watch mode, again after
// every change to the payload file until ctx is done.
//
// Send failures are logged, not returned: the returned error only covers
// problems building the first payload or setting up the watcher.
func (a *App) Run(ctx context.Context, req Request) error {
	if req.Watch && req.PayloadFile == "" {
		return ErrWatchWithoutFile
	}

	p, err := a.payload(req)
	if err != nil {
		return err
	}
	a.SendOnce(ctx, req.URL, p)

	if !req.Watch {
		return nil
	}

	w := watch.New(req.PayloadFile, req.Debounce, a.logger, func(ctx context.Context) {
		p, err := payload.LoadFile(req.PayloadFile)
		if err != nil {
			a.logger.Error("reload payload", log.Err(err))
			return
		}
		a.SendOnce(ctx, req.URL, p)
	})
	return w.Run(ctx)
}

// SendOnce performs one send and reports the result.
func (a *App) SendOnce(ctx context.Context, url string, p any) {
	resp, err := a.poster.Send(ctx, url, p)
	sender.Report(a.logger, resp, err)
}

func (a *App) payload(req Request) (any, error) {
	if req.PayloadFile != "" {
		return payload.LoadFile(req.PayloadFile)
	}
	if req.Build == nil {
		return nil, fmt.Errorf("no payload")
	}
	return req.Build()
}
