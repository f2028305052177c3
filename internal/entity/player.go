package entity

// Player is the zero-based index of a side: Player0 moves first.
type Player int

const (
	NoPlayer Player = -1
	Player0  Player = 0
	Player1  Player = 1
)

func (that Player) Opponent() Player {
	switch that {
	case Player0:
		return Player1
	case Player1:
		return Player0
	default:
		return NoPlayer
	}
}

// Mark returns the cell value owned by the player.
func (that Player) Mark() Cell {
	switch that {
	case Player0:
		return CellPlayer0
	case Player1:
		return CellPlayer1
	default:
		return CellEmpty
	}
}

func (that Player) IsValid() bool {
	return that == Player0 || that == Player1
}

func (that Player) String() string {
	switch that {
	case Player0:
		return "X"
	case Player1:
		return "O"
	default:
		return "-"
	}
}
