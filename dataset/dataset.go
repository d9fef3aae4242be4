// Package dataset loads 0/1 knapsack problem instances from the classic
// whitespace-delimited text format:
//
//	<capacity> <itemCount>
//	<value_1> <weight_1>
//	<value_2> <weight_2>
//	...
//
// The parser owns the entire malformed-input taxonomy — non-numeric fields,
// missing columns, negative numbers, count mismatches — so the knapsack core
// can assume validated data. Blank lines are ignored.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlpack/knapsack"
)

// maxPrealloc bounds the item-slice allocation hint taken from the declared
// count; larger declarations still parse, growing by append as records arrive.
const maxPrealloc = 1 << 16

// Parse reads one dataset from r.
//
// Items receive dense 1-based indices in file order. Every violation is a
// wrapped sentinel carrying the offending line number.
//
// Complexity: O(L) over input lines, O(n) memory.
func Parse(r io.Reader) (*Dataset, error) {
	sc := bufio.NewScanner(r)

	line, lineNo, ok := nextLine(sc, 0)
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}

		return nil, ErrEmptyInput
	}

	capacity, count, err := parsePair(line, lineNo, ErrMalformedHeader)
	if err != nil {
		return nil, err
	}

	// The declared count is untrusted input: it only sizes the allocation
	// hint, clamped so a hostile header cannot force an oversized make.
	hint := count
	if hint > maxPrealloc {
		hint = maxPrealloc
	}
	ds := &Dataset{
		Capacity: capacity,
		Items:    make([]knapsack.Item, 0, hint),
	}
	for {
		line, lineNo, ok = nextLine(sc, lineNo)
		if !ok {
			break
		}
		value, weight, perr := parsePair(line, lineNo, ErrMalformedRecord)
		if perr != nil {
			return nil, perr
		}
		if len(ds.Items) == count {
			return nil, fmt.Errorf("%w: extra record on line %d", ErrItemCount, lineNo)
		}
		ds.Items = append(ds.Items, knapsack.Item{
			Index:  len(ds.Items) + 1,
			Value:  value,
			Weight: weight,
		})
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(ds.Items) != count {
		return nil, fmt.Errorf("%w: declared %d, found %d", ErrItemCount, count, len(ds.Items))
	}

	return ds, nil
}

// Load opens the file at path and parses it as one dataset.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// nextLine advances to the next non-blank line, tracking the 1-based line
// number. ok is false once the input is exhausted.
func nextLine(sc *bufio.Scanner, lineNo int) (string, int, bool) {
	for sc.Scan() {
		lineNo++
		if text := strings.TrimSpace(sc.Text()); text != "" {
			return text, lineNo, true
		}
	}

	return "", lineNo, false
}

// parsePair splits line into exactly two non-negative integers, wrapping
// shape violations with the caller's sentinel and sign violations with
// ErrNegativeField.
func parsePair(line string, lineNo int, shapeErr error) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: line %d", shapeErr, lineNo)
	}

	first, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %d", shapeErr, lineNo)
	}
	second, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %d", shapeErr, lineNo)
	}
	if first < 0 || second < 0 {
		return 0, 0, fmt.Errorf("%w: line %d", ErrNegativeField, lineNo)
	}

	return first, second, nil
}
