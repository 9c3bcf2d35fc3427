package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/i18n"
	"github.com/rocketscienceinc/tictactoe-web/internal/theme"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	tr, err := i18n.New("en")
	require.NoError(t, err)

	return tr
}

func TestStatus(t *testing.T) {
	p := newTranslator(t).Printer(i18n.English)

	t.Run("Current player", func(t *testing.T) {
		game := tictactoe.ApplyMove(tictactoe.Reset(), 0)

		assert.Equal(t, "Player O's turn", Status(game, p))
	})

	t.Run("Winner", func(t *testing.T) {
		game := entity.Game{Outcome: entity.Outcome{Kind: entity.OutcomeWin, Winner: entity.PlayerX, Line: entity.Triple{0, 1, 2}}}

		assert.Equal(t, "Player X wins!", Status(game, p))
	})

	t.Run("Draw", func(t *testing.T) {
		game := entity.Game{Outcome: entity.Outcome{Kind: entity.OutcomeDraw}}

		assert.Equal(t, "It's a draw!", Status(game, p))
	})
}

func TestBuild(t *testing.T) {
	tr := newTranslator(t)

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: X holds the centre
		game := tictactoe.ApplyMove(tictactoe.Reset(), 4)
		dark, _ := theme.Lookup("dark")

		// When: building the view
		view := Build(game, dark, tr.Printer(i18n.English))

		// Then: only empty cells are playable and nothing is highlighted
		require.Len(t, view.Cells, entity.BoardSize)
		for _, cell := range view.Cells {
			assert.Equal(t, cell.Index != 4, cell.Playable, "cell %d", cell.Index)
			assert.False(t, cell.Winning)
		}
		assert.Equal(t, "X", view.Cells[4].Mark)
		assert.Equal(t, "Player O's turn", view.Status)
		assert.False(t, view.Finished)
		assert.Equal(t, "dark", view.Theme.Name)
	})

	t.Run("Won game in Kyrgyz", func(t *testing.T) {
		// Given: X won on the top row
		game := tictactoe.Reset()
		for _, cell := range []int{0, 3, 1, 4, 2} {
			game = tictactoe.ApplyMove(game, cell)
		}

		// When: building the view
		view := Build(game, theme.Default(), tr.Printer(i18n.Kyrgyz))

		// Then: the row is highlighted and nothing can be played
		for _, cell := range view.Cells {
			assert.Equal(t, cell.Index <= 2, cell.Winning, "cell %d", cell.Index)
			assert.False(t, cell.Playable)
		}
		assert.True(t, view.Finished)
		assert.Equal(t, "Оюнчу X утту!", view.Status)
		assert.Equal(t, "Х-О", view.Title)
		assert.Equal(t, "Жаңы оюн", view.NewGame)
	})
}
