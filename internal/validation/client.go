// Package validation talks to the remote authority that judges the board.
package validation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rocketscienceinc/tictactoe-picker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
)

const (
	apiPath        = "/api/"
	boardParameter = "gameBoard"
)

type display interface {
	ShowMessage(message string)
}

type recorder interface {
	Record(ctx context.Context, record *entity.ValidationRecord) error
}

type Options struct {
	Host       string
	Timeout    time.Duration
	AllowStale bool
}

// Client submits encoded boards and renders the answers on the display.
type Client struct {
	logger *slog.Logger

	httpClient *http.Client
	host       string
	allowStale bool

	display  display
	recorder recorder

	sequence  atomic.Uint64
	mu        sync.Mutex
	rendered  uint64
	discarded uint64

	ctx      context.Context
	cancel   context.CancelFunc
	inFlight sync.WaitGroup
}

// NewClient builds a client. recorder may be nil.
func NewClient(logger *slog.Logger, opts Options, display display, recorder recorder) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		ctx:        ctx,
		cancel:     cancel,
		logger:     logger.With("component", "validation_client"),
		httpClient: &http.Client{Timeout: opts.Timeout},
		host:       strings.TrimRight(opts.Host, "/"),
		allowStale: opts.AllowStale,
		display:    display,
		recorder:   recorder,
	}
}

// Submit validates the board in the background and shows the answer when it arrives.
// Failures are only logged, the display keeps its previous content.
// The request outlives ctx and is only cancelled by Close.
func (that *Client) Submit(ctx context.Context, encodedBoard string) {
	seq := that.sequence.Add(1)

	reqCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(that.ctx, cancel)

	that.inFlight.Add(1)
	go func() {
		defer that.inFlight.Done()
		defer cancel()
		defer stop()

		that.submit(reqCtx, seq, encodedBoard)
	}()
}

// Discard drops the answers of every board submitted so far, even when stale answers are allowed.
func (that *Client) Discard() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.discarded = that.sequence.Load()
}

// Wait blocks until every submitted board has been answered or has failed.
func (that *Client) Wait() {
	that.inFlight.Wait()
}

// Close cancels the requests still in flight and waits for them to return.
func (that *Client) Close() {
	that.cancel()
	that.inFlight.Wait()
}

func (that *Client) submit(ctx context.Context, seq uint64, encodedBoard string) {
	log := that.logger.With("method", "submit", "board", encodedBoard, "seq", seq)

	response, err := that.Validate(ctx, encodedBoard)
	if err != nil {
		log.Error("failed to validate board", "error", err)
		return
	}

	record := &entity.ValidationRecord{
		GameBoard: encodedBoard,
		Response:  response,
		Rendered:  response.Render(),
		CreatedAt: time.Now().UTC(),
	}

	if !that.show(ctx, seq, record) {
		log.Info("dropped stale validation response")
		return
	}

	log.Debug("validation response rendered")
}

// show replaces the display and records the answer unless it was discarded
// or a newer response is already shown. Records are filed under the lock, so
// after Discard returns no older answer is filed.
func (that *Client) show(ctx context.Context, seq uint64, record *entity.ValidationRecord) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if seq <= that.discarded || (!that.allowStale && seq < that.rendered) {
		return false
	}

	that.rendered = seq
	that.display.ShowMessage(record.Rendered)

	if that.recorder == nil {
		return true
	}

	if err := that.recorder.Record(ctx, record); err != nil {
		that.logger.Error("failed to record validation response", "method", "show", "error", err)
	}

	return true
}

// Validate sends the encoded board and parses the answer.
func (that *Client) Validate(ctx context.Context, encodedBoard string) (*entity.ValidationResponse, error) {
	log := that.logger.With("method", "Validate")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, that.URL(encodedBoard), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", apperror.ErrTransportFailure, err)
	}

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Warn("validation authority answered with an error status", "status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %w", apperror.ErrTransportFailure, err)
	}

	response, err := entity.ParseValidationResponse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: status %d: %w", apperror.ErrMalformedResponse, resp.StatusCode, err)
	}

	return response, nil
}

// URL returns the validation address for an encoded board.
func (that *Client) URL(encodedBoard string) string {
	query := url.Values{boardParameter: []string{encodedBoard}}

	return that.host + apiPath + "?" + query.Encode()
}
