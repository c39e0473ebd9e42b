package ui

// RulesText is the content of the rules dialog, one line per entry.
var RulesText = []string{
	"Conway's Game of Life",
	"",
	"Each cell is alive or dead and has eight neighbours.",
	"The board wraps around at every edge.",
	"",
	"1. A live cell with fewer than 2 live neighbours dies.",
	"2. A live cell with 2 or 3 live neighbours survives.",
	"3. A live cell with more than 3 live neighbours dies.",
	"4. A dead cell with exactly 3 live neighbours is born.",
	"",
	"Press H, Esc or click to close.",
}
