package game

import (
	"fmt"
	"strings"

	"connectfour/utils"
)

var columnLetters = []string{"A", "B", "C", "D", "E", "F", "G"}

// ColumnLetter maps column index 0..6 to 'A'..'G'.
func ColumnLetter(col int) string {
	if col < 0 || col >= Columns {
		panic(fmt.Sprintf("column %d out of range", col))
	}
	return columnLetters[col]
}

// ParseColumn maps a letter 'A'..'G' (any case) back to its column index.
func ParseColumn(letter string) (int, error) {
	col := utils.FindIndex(columnLetters, strings.ToUpper(strings.TrimSpace(letter)))
	if col < 0 {
		return -1, fmt.Errorf("%q: %w", letter, ErrInvalidColumn)
	}
	return col, nil
}
