package keymap

// NumKeys is the number of physical keys: three rows of five per half plus
// two thumb keys per half.
const NumKeys = 34

// Position indexes a physical key, row-major: 0-9 top row, 10-19 home row,
// 20-29 bottom row, 30-33 thumbs, left half first in every row.
type Position uint8

// Hand says which half of the board a key is on.
type Hand uint8

const (
	Left Hand = iota
	Right
)

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Row returns the row of p, thumbs being row 3.
func (p Position) Row() int {
	return int(p) / 10
}

// Col returns the column of p counted across both halves.
func (p Position) Col() int {
	if p.IsThumb() {
		return int(p) - 30
	}
	return int(p) % 10
}

// IsThumb reports whether p is a thumb key.
func (p Position) IsThumb() bool { return p >= 30 && p < NumKeys }

// Hand returns the half p belongs to.
func (p Position) Hand() Hand {
	if p.IsThumb() {
		if p < 32 {
			return Left
		}
		return Right
	}
	if p.Col() < 5 {
		return Left
	}
	return Right
}

// Valid reports whether p names a key.
func (p Position) Valid() bool { return p < NumKeys }
