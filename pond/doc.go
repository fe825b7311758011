// Package pond models a finite grid of hexagonal cells for hexhop searches.
//
// What:
//
//   - Cell: one hexagon with a terrain Kind (Water, Mud, Reeds, LilyPad,
//     Alligator, Food), an optional Role (Start or End), up to six
//     neighbours, and a three-state traversal State.
//   - Pond: the grid that owns every Cell, wires hex adjacency, and exposes
//     the Start and End cells.
//   - Parse / Load and ParseYAML / LoadYAML build a Pond from a textual
//     description.
//
// Geometry:
//
// Pointy-top hexagons in "odd-r" offset layout: every odd row is shifted half
// a cell to the right. Neighbour indices run clockwise from East:
//
//	0=E  1=SE  2=SW  3=W  4=NW  5=NE
//
// so Neighbor(i) and Neighbor((i+3)%6) point in opposite directions.
//
// Text format:
//
//	# comment
//	S . L R
//	 . 2 A E
//
// Tokens are whitespace separated: "." or "W" water, "L" lily pad, "R" reeds,
// "M" mud, "A" alligator, "1".."3" food with that many flies, "-" hole,
// "S" start, "E" end. "S" and "E" may carry a terrain letter ("SL", "ER").
//
// Errors:
//
//   - ErrEmptyPond       no rows or no columns
//   - ErrNonRectangular  rows of differing token counts
//   - ErrUnknownToken    unrecognised cell token
//   - ErrBadFlies        food token outside 1..MaxFlies
//   - ErrNoStart / ErrMultipleStart, ErrNoEnd / ErrMultipleEnd
//
// Every loader returns its error; a Pond is never handed back half built.
package pond
