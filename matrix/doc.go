// Package matrix implements dense matrix helpers on top of array.Array.
//
// A Matrix is stored by columns: m.At(i) is column i and m.At(i).At(j) is
// the element in row j of that column. All columns of a well-formed matrix
// have the same length.
//
//	a, _ := matrix.Build(3, 3, func(i, j int) float64 { return float64(i + j) })
//	defer a.Destroy()
//	c, err := matrix.Mult(&a, &a)
//
// Functions return ErrBadShape for ragged input and ErrDimensionMismatch for
// operands that cannot be combined; both can be matched with errors.Is.
package matrix
