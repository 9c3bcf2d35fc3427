package rest

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/i18n"
	"github.com/rocketscienceinc/tictactoe-web/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-web/internal/preference"
	"github.com/rocketscienceinc/tictactoe-web/internal/presenter"
	"github.com/rocketscienceinc/tictactoe-web/internal/theme"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type Handlers interface {
	Register(mux *http.ServeMux)

	Index(w http.ResponseWriter, r *http.Request)
	Move(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	SetTheme(w http.ResponseWriter, r *http.Request)

	GetGameJSON(w http.ResponseWriter, r *http.Request)
	MoveJSON(w http.ResponseWriter, r *http.Request)
	ResetJSON(w http.ResponseWriter, r *http.Request)

	Ping(w http.ResponseWriter, _ *http.Request)
}

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (entity.Game, error)
	MakeMove(ctx context.Context, sessionID string, cell int) (entity.Game, error)
	ResetGame(ctx context.Context, sessionID string) (entity.Game, error)
}

type handlers struct {
	logger *slog.Logger

	game       gameUseCase
	prefs      *preference.Resolver
	sessionTTL time.Duration
}

func NewHandlers(logger *slog.Logger, game gameUseCase, prefs *preference.Resolver, sessionTTL time.Duration) Handlers {
	return &handlers{
		logger:     logger.With("component", "rest"),
		game:       game,
		prefs:      prefs,
		sessionTTL: sessionTTL,
	}
}

func (that *handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", that.Index)
	mux.HandleFunc("POST /move", that.Move)
	mux.HandleFunc("POST /reset", that.Reset)
	mux.HandleFunc("POST /theme", that.SetTheme)

	mux.HandleFunc("GET /api/game", that.GetGameJSON)
	mux.HandleFunc("POST /api/game/move", that.MoveJSON)
	mux.HandleFunc("POST /api/game/reset", that.ResetJSON)

	mux.HandleFunc("GET /ping", that.Ping)
}

type themeOption struct {
	Name   string
	Label  string
	Active bool
}

type languageOption struct {
	Tag    string
	Label  string
	Active bool
}

type pageData struct {
	View      presenter.View
	Lang      string
	Labels    map[string]string
	Themes    []themeOption
	Languages []languageOption
}

// GameResponse is the JSON shape shared with the websocket transport.
type GameResponse struct {
	Game entity.Game    `json:"game"`
	View presenter.View `json:"view"`
}

func (that *handlers) Index(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Index")

	sessionID := that.sessionID(w, r)
	prefs := that.prefs.Resolve(r)
	that.prefs.Persist(w, prefs)

	game, err := that.game.GetOrCreateGame(r.Context(), sessionID)
	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	translator := that.prefs.Translator()
	printer := translator.Printer(prefs.Language)

	data := pageData{
		View: presenter.Build(game, prefs.Theme, printer),
		Lang: prefs.Language.String(),
		Labels: map[string]string{
			"theme":    printer.Sprintf(i18n.KeyTheme),
			"language": printer.Sprintf(i18n.KeyLanguage),
		},
	}

	for _, t := range theme.All() {
		data.Themes = append(data.Themes, themeOption{Name: t.Name, Label: t.Label, Active: t.Name == prefs.Theme.Name})
	}

	for _, tag := range translator.Supported() {
		data.Languages = append(data.Languages, languageOption{Tag: tag.String(), Label: translator.Label(tag), Active: tag == prefs.Language})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = pageTmpl.Execute(w, data); err != nil {
		log.Error("failed to render page", "error", err)
	}
}

func (that *handlers) Move(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Move")

	cell, err := strconv.Atoi(r.FormValue("cell"))
	if err != nil {
		http.Error(w, "cell must be an integer", http.StatusBadRequest)
		return
	}

	if _, err = that.game.MakeMove(r.Context(), that.sessionID(w, r), cell); err != nil {
		log.Error("failed to make move", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *handlers) Reset(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Reset")

	if _, err := that.game.ResetGame(r.Context(), that.sessionID(w, r)); err != nil {
		log.Error("failed to reset game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SetTheme stores the chosen theme. Unknown names store the default theme.
func (that *handlers) SetTheme(w http.ResponseWriter, r *http.Request) {
	t, ok := that.prefs.LookupTheme(r.FormValue("theme"))
	if !ok {
		that.logger.Debug("unknown theme requested, using default", "theme", r.FormValue("theme"))
	}

	preference.SetThemeCookie(w, t)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *handlers) GetGameJSON(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.GetOrCreateGame(r.Context(), that.sessionID(w, r))
	that.writeGame(w, r, game, err)
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

func (that *handlers) MoveJSON(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cell is required"})
		return
	}

	game, err := that.game.MakeMove(r.Context(), that.sessionID(w, r), *req.Cell)
	that.writeGame(w, r, game, err)
}

func (that *handlers) ResetJSON(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.ResetGame(r.Context(), that.sessionID(w, r))
	that.writeGame(w, r, game, err)
}

func (that *handlers) writeGame(w http.ResponseWriter, r *http.Request, game entity.Game, err error) {
	if err != nil {
		that.logger.Error("game request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	prefs := that.prefs.Resolve(r)
	printer := that.prefs.Translator().Printer(prefs.Language)

	writeJSON(w, http.StatusOK, GameResponse{
		Game: game,
		View: presenter.Build(game, prefs.Theme, printer),
	})
}

func (that *handlers) sessionID(w http.ResponseWriter, r *http.Request) string {
	if id, ok := pkg.SessionCookie(r); ok {
		return id
	}

	id := pkg.GenerateNewSessionID()
	http.SetCookie(w, pkg.NewSessionCookie(id, that.sessionTTL))

	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
