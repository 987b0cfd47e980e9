// Package coords defines the Coords value type that addresses a single cell
// of a Hex board, plus conversion to and from the conventional letter-number
// notation used when talking to humans.
//
// What:
//
//   - Coords holds a zero-based {Row, Column} pair; it is an immutable value
//     type with no board knowledge beyond the OnBoard bounds test.
//   - String renders "c3" style notation: column letter 'a'+column, 1-based row.
//   - Parse inverts String, rejecting anything it could not have produced.
//
// Why:
//
//   - Every other package (board, game, serialize, the CLI) speaks Coords;
//     flat cell indices never cross a package boundary.
//
// Errors:
//
//   - ErrInvalidCoords: input string is not valid letter-number notation.
package coords
