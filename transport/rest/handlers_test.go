package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-picker/internal/board"
	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-picker/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-picker/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-picker/internal/validation"
)

// authority answers every board with a winner. When hold is set, it signals
// arrived and keeps the answer until hold is closed.
type authority struct {
	mu       sync.Mutex
	requests []string

	hold    chan struct{}
	arrived chan struct{}
}

func (that *authority) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.mu.Lock()
	that.requests = append(that.requests, r.URL.RequestURI())
	that.mu.Unlock()

	if that.hold != nil {
		that.arrived <- struct{}{}
		<-that.hold
	}

	_, _ = w.Write([]byte(`{"Message":"Board received","Winner":"X"}`))
}

func (that *authority) received() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]string(nil), that.requests...)
}

type testPage struct {
	router    http.Handler
	validator *validation.Client
	authority *authority
}

func newTestPage(t *testing.T) *testPage {
	t.Helper()

	return newTestPageWith(t, &authority{})
}

func newTestPageWith(t *testing.T, auth *authority) *testPage {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	server := httptest.NewServer(auth)
	t.Cleanup(server.Close)

	sourceIDs := []string{"XS1"}
	destinationIDs := []string{"1"}
	sizes := tictactoe.NewSizeTable(tictactoe.DefaultSizeRules, sourceIDs)

	cells, err := board.BoardCells(destinationIDs, nil)
	require.NoError(t, err)

	page, err := board.New(board.PaletteCells(sourceIDs, sizes), cells)
	require.NoError(t, err)

	journal := usecase.NewJournal(nil)
	validator := validation.NewClient(logger, validation.Options{Host: server.URL}, page, journal)
	controller := tictactoe.NewGameController(logger, page, validator, sizes, sourceIDs, destinationIDs)
	manager := usecase.NewGameManager(logger, controller, page, journal)

	return &testPage{
		router:    NewRouter(logger, manager),
		validator: validator,
		authority: auth,
	}
}

func (that *testPage) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	that.router.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))

	return recorder
}

func decodeView(t *testing.T, recorder *httptest.ResponseRecorder) *entity.BoardView {
	t.Helper()

	var view entity.BoardView
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&view))

	return &view
}

func TestPingHandler(t *testing.T) {
	page := newTestPage(t)

	recorder := page.do(t, http.MethodGet, "/ping")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestClickHandler(t *testing.T) {
	t.Run("Two clicks move the piece and validate the board", func(t *testing.T) {
		// Given: a page with one piece and one cell
		page := newTestPage(t)

		// When: the piece is picked
		recorder := page.do(t, http.MethodPost, "/api/click/XS1")

		// Then: the piece is highlighted and the page waits for a destination
		require.Equal(t, http.StatusOK, recorder.Code)
		view := decodeView(t, recorder)
		assert.Equal(t, "awaiting:XS1", view.Selection)
		assert.True(t, view.Palette[0].Highlighted)

		// When: the board cell is clicked
		recorder = page.do(t, http.MethodPost, "/api/click/1")
		require.Equal(t, http.StatusOK, recorder.Code)
		page.validator.Wait()

		// Then: the move is shown and the authority got the encoded board
		view = decodeView(t, page.do(t, http.MethodGet, "/api/board"))
		assert.Equal(t, "idle", view.Selection)
		assert.Equal(t, entity.CellView{ID: "1", Text: "X", FontSize: "50px", Highlighted: true}, view.Board[0])
		assert.Equal(t, entity.CellView{ID: "XS1", FontSize: "50px"}, view.Palette[0])
		assert.Equal(t, "Message: Board received\nWinner: X\n", view.Display)
		assert.Equal(t, []string{"/api/?gameBoard=1SX"}, page.authority.received())
	})

	t.Run("Board cell first shows a message", func(t *testing.T) {
		page := newTestPage(t)

		recorder := page.do(t, http.MethodPost, "/api/click/1")

		require.Equal(t, http.StatusOK, recorder.Code)
		view := decodeView(t, recorder)
		assert.Equal(t, tictactoe.MessageSelectFromPlayers, view.Display)
		assert.Empty(t, view.Board[0].Text)
		assert.Empty(t, page.authority.received())
	})

	t.Run("Unknown cell is not found", func(t *testing.T) {
		page := newTestPage(t)

		recorder := page.do(t, http.MethodPost, "/api/click/42")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestRestartHandler(t *testing.T) {
	// Given: a page after a completed move
	page := newTestPage(t)
	page.do(t, http.MethodPost, "/api/click/XS1")
	page.do(t, http.MethodPost, "/api/click/1")
	page.validator.Wait()

	// When: restarting
	recorder := page.do(t, http.MethodPost, "/api/restart")

	// Then: the initial markup is back
	require.Equal(t, http.StatusOK, recorder.Code)
	view := decodeView(t, recorder)
	assert.Equal(t, "idle", view.Selection)
	assert.Equal(t, entity.CellView{ID: "XS1", Text: "X", FontSize: "50px"}, view.Palette[0])
	assert.Equal(t, entity.CellView{ID: "1"}, view.Board[0])
	assert.Empty(t, view.Display)
}

func TestRestartHandler_PendingValidation(t *testing.T) {
	// Given: a completed move whose answer is still held by the authority
	auth := &authority{hold: make(chan struct{}), arrived: make(chan struct{}, 1)}
	page := newTestPageWith(t, auth)

	page.do(t, http.MethodPost, "/api/click/XS1")
	page.do(t, http.MethodPost, "/api/click/1")
	<-auth.arrived

	// When: restarting before the answer arrives
	recorder := page.do(t, http.MethodPost, "/api/restart")
	require.Equal(t, http.StatusOK, recorder.Code)

	close(auth.hold)
	page.validator.Wait()

	// Then: the late answer does not reach the fresh page
	view := decodeView(t, page.do(t, http.MethodGet, "/api/board"))
	assert.Empty(t, view.Display)
	assert.Equal(t, entity.CellView{ID: "1"}, view.Board[0])
	assert.Equal(t, []string{"/api/?gameBoard=1SX"}, auth.received())
}

func TestHistoryHandler(t *testing.T) {
	t.Run("Disabled history is unavailable", func(t *testing.T) {
		page := newTestPage(t)

		recorder := page.do(t, http.MethodGet, "/api/history")

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("Invalid limit is rejected", func(t *testing.T) {
		page := newTestPage(t)

		recorder := page.do(t, http.MethodGet, "/api/history?limit=abc")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
