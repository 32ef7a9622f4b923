package movegen

import bd "github.com/kestog/giveaway-engine/board"

// Directions are indexed 0..3: up-left, up-right, down-left, down-right,
// where "up" means increasing row (toward Black's back rank, White's
// forward direction). Kings and backward-capturing men use all four;
// forward-only generation (men's quiet moves) picks the two matching its
// colour.
const (
	dirUpLeft = iota
	dirUpRight
	dirDownLeft
	dirDownRight
	numDirs
)

var dirDelta = [numDirs][2]int{
	dirUpLeft:    {1, -1},
	dirUpRight:   {1, 1},
	dirDownLeft:  {-1, -1},
	dirDownRight: {-1, 1},
}

// neighborTable[dir][sq] is the adjacent playable square in that diagonal
// direction from sq, or -1 if sq is on the edge in that direction. Built
// once at init time from row/column arithmetic on the standard 32-square
// dark-squares-only numbering (row = sq/4, four squares per row,
// alternating column parity per row), the same precomputed-attack-table
// idiom the teacher uses for its chess king-move table.
var neighborTable [numDirs][32]int8

func squareToRowCol(sq int) (row, col int) {
	row = sq / 4
	inRow := sq % 4
	if row%2 == 0 {
		col = 2*inRow + 1
	} else {
		col = 2 * inRow
	}
	return
}

func rowColToSquare(row, col int) (int, bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return -1, false
	}
	if row%2 == 0 && col%2 == 0 {
		return -1, false
	}
	if row%2 == 1 && col%2 == 1 {
		return -1, false
	}
	var inRow int
	if row%2 == 0 {
		inRow = (col - 1) / 2
	} else {
		inRow = col / 2
	}
	return row*4 + inRow, true
}

func init() {
	for sq := 0; sq < 32; sq++ {
		row, col := squareToRowCol(sq)
		for d := 0; d < numDirs; d++ {
			dr, dc := dirDelta[d][0], dirDelta[d][1]
			if nsq, ok := rowColToSquare(row+dr, col+dc); ok {
				neighborTable[d][sq] = int8(nsq)
			} else {
				neighborTable[d][sq] = -1
			}
		}
	}
}

// forwardDirs returns the two directions a man of side side advances
// along; kings and capture generation use all four directions regardless
// of side.
func forwardDirs(side bd.Side) [2]int {
	if side == bd.White {
		return [2]int{dirUpLeft, dirUpRight}
	}
	return [2]int{dirDownLeft, dirDownRight}
}
