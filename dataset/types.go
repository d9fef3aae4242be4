// Package dataset defines the problem-file model and sentinel errors
// for the dataset subpackage of github.com/katalvlaran/lvlpack.
package dataset

import (
	"errors"

	"github.com/katalvlaran/lvlpack/knapsack"
)

// Sentinel errors for dataset parsing. Parse wraps them with line context,
// so match with errors.Is.
var (
	// ErrEmptyInput indicates the input holds no header line.
	ErrEmptyInput = errors.New("dataset: input must contain a header line")
	// ErrMalformedHeader indicates the header is not "<capacity> <itemCount>".
	ErrMalformedHeader = errors.New(`dataset: header must be "<capacity> <itemCount>"`)
	// ErrMalformedRecord indicates an item line is not "<value> <weight>".
	ErrMalformedRecord = errors.New(`dataset: item records must be "<value> <weight>"`)
	// ErrNegativeField indicates a negative capacity, count, value, or weight.
	ErrNegativeField = errors.New("dataset: all fields must be non-negative integers")
	// ErrItemCount indicates the record count does not match the declared count.
	ErrItemCount = errors.New("dataset: item record count does not match the declared count")
)

// Dataset is one loaded knapsack problem instance: a capacity plus the
// ordered item list, ready to hand to knapsack.New.
type Dataset struct {
	Capacity int
	Items    []knapsack.Item
}

// TotalValue returns the sum of all item values in the dataset.
func (d *Dataset) TotalValue() int {
	var total int
	for _, it := range d.Items {
		total += it.Value
	}

	return total
}
