package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/i18n"
	"github.com/rocketscienceinc/tictactoe-web/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-web/internal/preference"
	"github.com/rocketscienceinc/tictactoe-web/internal/repository"
	"github.com/rocketscienceinc/tictactoe-web/internal/theme"
	"github.com/rocketscienceinc/tictactoe-web/internal/usecase"
)

const session = "test-session"

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	translator, err := i18n.New("en")
	require.NoError(t, err)

	gameUseCase := usecase.NewGameUseCase(logger, repository.NewMemoryGameRepository(time.Hour))
	prefs := preference.NewResolver(theme.NewResolver("light"), translator)

	mux := http.NewServeMux()
	NewHandlers(logger, gameUseCase, prefs, time.Hour).Register(mux)

	return mux
}

func do(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	req.AddCookie(&http.Cookie{Name: pkg.SessionCookieName, Value: session})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHandlers_Index(t *testing.T) {
	t.Run("Creates a session for a new browser", func(t *testing.T) {
		mux := newMux(t)

		// When: the page is requested without a session cookie
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		// Then: the page renders and a session cookie is set
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Player X&#39;s turn")
		cookie := findCookie(rec, pkg.SessionCookieName)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
	})

	t.Run("Renders in Kyrgyz with the chosen theme", func(t *testing.T) {
		mux := newMux(t)

		// When: the page is requested with query preferences
		rec := do(mux, httptest.NewRequest(http.MethodGet, "/?lang=ky&theme=dark", nil))

		// Then: the page uses them and persists them
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Оюнчу X кезеги")
		assert.Contains(t, rec.Body.String(), "#111827")
		require.NotNil(t, findCookie(rec, preference.ThemeCookieName))
		assert.Equal(t, "dark", findCookie(rec, preference.ThemeCookieName).Value)
		require.NotNil(t, findCookie(rec, preference.LangCookieName))
	})

	t.Run("Unknown paths are not the page", func(t *testing.T) {
		mux := newMux(t)

		rec := do(mux, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandlers_Move(t *testing.T) {
	t.Run("Applies the move and redirects", func(t *testing.T) {
		mux := newMux(t)

		// When: X plays cell 4
		rec := do(mux, postForm("/move", url.Values{"cell": {"4"}}))

		// Then: the browser is sent back to the page, where O is to move
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		page := do(mux, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, page.Body.String(), "Player O&#39;s turn")
	})

	t.Run("Ignored moves still redirect", func(t *testing.T) {
		mux := newMux(t)

		rec := do(mux, postForm("/move", url.Values{"cell": {"12"}}))

		require.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("Rejects a non numeric cell", func(t *testing.T) {
		mux := newMux(t)

		rec := do(mux, postForm("/move", url.Values{"cell": {"abc"}}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlers_Reset(t *testing.T) {
	// Given: a game with a move
	mux := newMux(t)
	do(mux, postForm("/move", url.Values{"cell": {"0"}}))

	// When: resetting
	rec := do(mux, postForm("/reset", nil))

	// Then: X is to move on an empty board
	require.Equal(t, http.StatusSeeOther, rec.Code)

	api := do(mux, httptest.NewRequest(http.MethodGet, "/api/game", nil))
	var resp GameResponse
	require.NoError(t, json.Unmarshal(api.Body.Bytes(), &resp))
	assert.Equal(t, entity.NewGame(), resp.Game)
}

func TestHandlers_SetTheme(t *testing.T) {
	t.Run("Known theme", func(t *testing.T) {
		mux := newMux(t)

		rec := do(mux, postForm("/theme", url.Values{"theme": {"ocean"}}))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		cookie := findCookie(rec, preference.ThemeCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "ocean", cookie.Value)
	})

	t.Run("Unknown theme stores the default", func(t *testing.T) {
		mux := newMux(t)

		rec := do(mux, postForm("/theme", url.Values{"theme": {"neon"}}))

		cookie := findCookie(rec, preference.ThemeCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "light", cookie.Value)
	})
}

func TestHandlers_API(t *testing.T) {
	t.Run("Plays a game to a win", func(t *testing.T) {
		mux := newMux(t)

		// When: X completes the top row through the JSON API
		var resp GameResponse
		for _, cell := range []string{"0", "3", "1", "4", "2"} {
			req := httptest.NewRequest(http.MethodPost, "/api/game/move", strings.NewReader(`{"cell":`+cell+`}`))
			rec := do(mux, req)
			require.Equal(t, http.StatusOK, rec.Code)
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		}

		// Then: the response reports the win and highlights the row
		assert.Equal(t, entity.Outcome{Kind: entity.OutcomeWin, Winner: entity.PlayerX, Line: entity.Triple{0, 1, 2}}, resp.Game.Outcome)
		assert.Equal(t, "Player X wins!", resp.View.Status)
		assert.True(t, resp.View.Finished)
		assert.True(t, resp.View.Cells[0].Winning)
		assert.False(t, resp.View.Cells[8].Playable)
	})

	t.Run("Missing cell", func(t *testing.T) {
		mux := newMux(t)

		rec := do(mux, httptest.NewRequest(http.MethodPost, "/api/game/move", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Reset", func(t *testing.T) {
		mux := newMux(t)
		do(mux, httptest.NewRequest(http.MethodPost, "/api/game/move", strings.NewReader(`{"cell":4}`)))

		rec := do(mux, httptest.NewRequest(http.MethodPost, "/api/game/reset", nil))

		var resp GameResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, entity.NewGame(), resp.Game)
		assert.Equal(t, "Player X's turn", resp.View.Status)
	})
}

func TestHandlers_Ping(t *testing.T) {
	mux := newMux(t)

	rec := do(mux, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
