package live

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"stagehand/internal/logging"
)

// Mode is the assistant's operating mode. Scripted answers come from the
// canned resolver; live answers come from a real endpoint.
type Mode string

const (
	ModeScripted Mode = "scripted"
	ModeLive     Mode = "live"
)

const defaultTimeout = 5 * time.Second

// Payload is the live endpoint's answer, passed through unmodified.
type Payload struct {
	Content   string   `json:"content"`
	ToolChips []string `json:"tool_chips,omitempty"`
	FollowUps []string `json:"follow_ups,omitempty"`
}

type request struct {
	Query   string            `json:"query"`
	Context map[string]string `json:"context,omitempty"`
}

// Dispatcher owns the scripted/live flag and performs the live call. Every
// failure mode (transport error, non-2xx status, timeout, bad body)
// collapses to a nil payload so the chat surface has a single degradation
// path. Dispatch never blocks past the configured timeout.
type Dispatcher struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
	logger   logging.Logger
	mode     Mode
}

type Option func(*Dispatcher)

func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(d *Dispatcher) {
		if client != nil {
			d.http = client
		}
	}
}

func NewDispatcher(endpoint string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		endpoint: strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		timeout:  defaultTimeout,
		http:     &http.Client{},
		logger:   logging.Nop(),
		mode:     ModeScripted,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Mode() Mode {
	return d.mode
}

func (d *Dispatcher) Live() bool {
	return d.mode == ModeLive
}

// Toggle flips the mode unconditionally and returns the new mode.
func (d *Dispatcher) Toggle() Mode {
	if d.mode == ModeLive {
		d.mode = ModeScripted
	} else {
		d.mode = ModeLive
	}
	return d.mode
}

// Dispatch issues one live request and returns the payload, or nil on any
// failure. Callers treat the result uniformly as payload-or-nil.
func (d *Dispatcher) Dispatch(ctx context.Context, query string, queryCtx map[string]string) (*Payload, error) {
	if d.endpoint == "" {
		d.logger.Warn("live dispatch skipped", logging.F("reason", "no endpoint configured"))
		return nil, nil
	}
	body, err := json.Marshal(request{Query: query, Context: queryCtx})
	if err != nil {
		d.logger.Warn("live dispatch encode failed", logging.F("err", err))
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint+"/v1/assistant/query", bytes.NewReader(body))
	if err != nil {
		d.logger.Warn("live dispatch request build failed", logging.F("err", err))
		return nil, nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		d.logger.Warn("live dispatch failed", logging.F("err", err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.logger.Warn("live dispatch rejected", logging.F("status", resp.StatusCode))
		return nil, nil
	}
	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		d.logger.Warn("live dispatch decode failed", logging.F("err", err))
		return nil, nil
	}
	return &payload, nil
}
