package gridcost

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridcost: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridcost: all rows must have the same length")
	// ErrInvalidDigit indicates a character that is not a decimal digit.
	ErrInvalidDigit = errors.New("gridcost: cell is not a decimal digit")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("gridcost: cell cost must be non-negative")
	// ErrCostRange indicates a cell cost above MaxCost.
	ErrCostRange = errors.New("gridcost: cell cost exceeds MaxCost")
	// ErrNegativeCoord indicates a sparse cell with a negative row or column.
	ErrNegativeCoord = errors.New("gridcost: coordinates must be non-negative")
	// ErrBadTileFactor indicates a tile factor below one.
	ErrBadTileFactor = errors.New("gridcost: tile factor must be at least 1")
)
