// Package spreadsheet extracts sample series from fixed cell layouts in
// spreadsheet files and exports fit results back out. Both xlsx and csv
// files are supported, selected by file extension.
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fitkit/curvefit/dataset"
)

var (
	ErrBadCellRange   = errors.New("cell range must be a single row or column")
	ErrNonNumericCell = errors.New("cell does not contain a numeric value")
)

// Range is a rectangular cell region resolved from an "A2:A40" style
// reference. Series ranges must span a single row or a single column.
type Range struct {
	StartCol, StartRow int
	EndCol, EndRow     int
}

// ParseRange resolves a "A2:B3" style reference into coordinates. A single
// cell reference like "C5" is a 1x1 range.
func ParseRange(cellRange string) (Range, error) {
	parts := strings.Split(cellRange, ":")
	if len(parts) > 2 {
		return Range{}, fmt.Errorf("%q, %w", cellRange, ErrBadCellRange)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("unable to resolve cell %q, %w", parts[0], err)
	}
	endCol, endRow := startCol, startRow
	if len(parts) == 2 {
		endCol, endRow, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return Range{}, fmt.Errorf("unable to resolve cell %q, %w", parts[1], err)
		}
	}

	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}

	return Range{
		StartCol: startCol,
		StartRow: startRow,
		EndCol:   endCol,
		EndRow:   endRow,
	}, nil
}

// Cells returns the cell coordinates of a single-row or single-column range
// in reading order.
func (r Range) Cells() ([][2]int, error) {
	if r.StartCol != r.EndCol && r.StartRow != r.EndRow {
		return nil, ErrBadCellRange
	}

	var cells [][2]int
	for row := r.StartRow; row <= r.EndRow; row++ {
		for col := r.StartCol; col <= r.EndCol; col++ {
			cells = append(cells, [2]int{col, row})
		}
	}
	return cells, nil
}

// cellGetter abstracts the xlsx and csv cell lookups behind one signature.
type cellGetter func(col, row int) (string, error)

// ReadSeries reads the numeric series at the given cell range. Blank cells
// are skipped; any other non-numeric cell is an error.
func ReadSeries(path, sheet, cellRange string) ([]float64, error) {
	getter, closer, err := openCellGetter(path, sheet)
	if err != nil {
		return nil, err
	}
	defer closer()

	return readSeries(getter, cellRange)
}

// ReadPair reads the two related series of the fixed cell layout into a
// dataset. The ranges must resolve to the same number of usable cells.
func ReadPair(path, sheet, xRange, yRange string) (*dataset.Dataset, error) {
	getter, closer, err := openCellGetter(path, sheet)
	if err != nil {
		return nil, err
	}
	defer closer()

	x, err := readSeries(getter, xRange)
	if err != nil {
		return nil, fmt.Errorf("unable to read x series, %w", err)
	}
	y, err := readSeries(getter, yRange)
	if err != nil {
		return nil, fmt.Errorf("unable to read y series, %w", err)
	}

	ds, err := dataset.New(x, y)
	if err != nil {
		return nil, fmt.Errorf("unable to create dataset from %q and %q, %w", xRange, yRange, err)
	}
	return ds, nil
}

func openCellGetter(path, sheet string) (cellGetter, func() error, error) {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		getter, err := csvCellGetter(path)
		if err != nil {
			return nil, nil, err
		}
		return getter, func() error { return nil }, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open spreadsheet %s, %w", path, err)
	}
	getter := func(col, row int) (string, error) {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return "", err
		}
		return f.GetCellValue(sheet, cell)
	}
	return getter, f.Close, nil
}

func csvCellGetter(path string) (cellGetter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open csv %s, %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read csv %s, %w", path, err)
	}

	return func(col, row int) (string, error) {
		if row-1 >= len(records) || col-1 >= len(records[row-1]) {
			return "", nil
		}
		return records[row-1][col-1], nil
	}, nil
}

func readSeries(getter cellGetter, cellRange string) ([]float64, error) {
	rng, err := ParseRange(cellRange)
	if err != nil {
		return nil, err
	}
	cells, err := rng.Cells()
	if err != nil {
		return nil, fmt.Errorf("%q, %w", cellRange, err)
	}

	series := make([]float64, 0, len(cells))
	for _, cell := range cells {
		raw, err := getter(cell[0], cell[1])
		if err != nil {
			return nil, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			name, _ := excelize.CoordinatesToCellName(cell[0], cell[1])
			return nil, fmt.Errorf("cell %s holds %q, %w", name, raw, ErrNonNumericCell)
		}
		series = append(series, val)
	}
	return series, nil
}
