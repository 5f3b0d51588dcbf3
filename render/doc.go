// Package render draws a solved (or unsolved) maze.
//
// What:
//
//   - Image / PNG / WriteFile rasterise the grid: each cell is a square of
//     Options.CellSize pixels inset by Options.CellBorder on a black canvas.
//     Open cells are white and walls near-black; the start is red, the goal
//     and the solution path two shades of green, explored cells orange.
//   - DataURI / ImgTag embed encoded PNG bytes in HTML.
//   - Text prints the maze to a terminal with '█' walls and '*' path cells.
//
// Complexity:
//
//   - Image: O(H×W×CellSize²) time, O(H×W×CellSize²) memory.
//   - Text:  O(H×W).
package render
