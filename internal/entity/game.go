package entity

const (
	PlayerX   Marker = "X"
	PlayerO   Marker = "O"
	EmptyCell Marker = ""

	BoardSize = 9
)

const (
	OutcomeNone OutcomeKind = ""
	OutcomeWin  OutcomeKind = "win"
	OutcomeDraw OutcomeKind = "draw"
)

// Marker is the symbol a player puts on the board.
type Marker string

// Opponent returns the marker that moves after that one.
func (that Marker) Opponent() Marker {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Board holds the 9 cells row-major, index 0 is the top-left corner.
type Board [BoardSize]Marker

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// Triple is a line of three cell indices.
type Triple [3]int

func (that Triple) Contains(index int) bool {
	return that[0] == index || that[1] == index || that[2] == index
}

type OutcomeKind string

type Outcome struct {
	Kind   OutcomeKind `json:"kind,omitempty"`
	Winner Marker      `json:"winner,omitempty"`
	Line   Triple      `json:"line,omitzero"`
}

func (that Outcome) IsDecided() bool {
	return that.Kind != OutcomeNone
}

func (that Outcome) IsWin() bool {
	return that.Kind == OutcomeWin
}

func (that Outcome) IsDraw() bool {
	return that.Kind == OutcomeDraw
}

// Game is the state of one game shown to one browser session.
type Game struct {
	Board   Board   `json:"board"`
	Turn    Marker  `json:"turn"`
	Outcome Outcome `json:"outcome"`
}

func NewGame() Game {
	return Game{Turn: PlayerX}
}

func (that Game) IsFinished() bool {
	return that.Outcome.IsDecided()
}

// CanPlay reports whether a move on cell would be accepted.
func (that Game) CanPlay(cell int) bool {
	if that.IsFinished() {
		return false
	}
	if cell < 0 || cell >= BoardSize {
		return false
	}
	return that.Board[cell] == EmptyCell
}

// IsWinningCell reports whether cell belongs to the line that decided the game.
func (that Game) IsWinningCell(cell int) bool {
	return that.Outcome.IsWin() && that.Outcome.Line.Contains(cell)
}
