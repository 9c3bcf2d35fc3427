package presenter

import (
	"golang.org/x/text/message"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/i18n"
	"github.com/rocketscienceinc/tictactoe-web/internal/theme"
)

// Cell is one square of the rendered grid.
type Cell struct {
	Index    int    `json:"index"`
	Mark     string `json:"mark"`
	Winning  bool   `json:"winning"`
	Playable bool   `json:"playable"`
}

// View is everything the page shows for a game.
type View struct {
	Title    string      `json:"title"`
	Status   string      `json:"status"`
	NewGame  string      `json:"new_game"`
	Cells    []Cell      `json:"cells"`
	Finished bool        `json:"finished"`
	Theme    theme.Theme `json:"theme"`
}

// Build renders game for one printer and theme.
func Build(game entity.Game, t theme.Theme, p *message.Printer) View {
	cells := make([]Cell, entity.BoardSize)
	for i, mark := range game.Board {
		cells[i] = Cell{
			Index:    i,
			Mark:     string(mark),
			Winning:  game.IsWinningCell(i),
			Playable: game.CanPlay(i),
		}
	}

	return View{
		Title:    p.Sprintf(i18n.KeyTitle),
		Status:   Status(game, p),
		NewGame:  p.Sprintf(i18n.KeyNewGame),
		Cells:    cells,
		Finished: game.IsFinished(),
		Theme:    t,
	}
}

// Status is the line above the grid: whose turn it is, or how the game ended.
func Status(game entity.Game, p *message.Printer) string {
	switch game.Outcome.Kind {
	case entity.OutcomeWin:
		return p.Sprintf(i18n.KeyWinner, string(game.Outcome.Winner))
	case entity.OutcomeDraw:
		return p.Sprintf(i18n.KeyDraw)
	default:
		return p.Sprintf(i18n.KeyTurn, string(game.Turn))
	}
}
