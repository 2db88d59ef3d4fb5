package workbook

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

	// extrame/xls renders cells in built-in date formats as "2006.01"
	xlsMonthOnlyDate = regexp.MustCompile(`^\d{4}\.\d{2}$`)
)

// xlsFormulaPlaceholder is what extrame/xls returns for every formula cell
const xlsFormulaPlaceholder = "FormulaCol"

// Reader implements domain.WorkbookReader for .xlsx and legacy .xls files
type Reader struct{}

// NewReader creates a new workbook reader
func NewReader() domain.WorkbookReader {
	return &Reader{}
}

// ReadGrid sniffs the container format and returns the first sheet's cells.
// Numeric cells keep their raw value so serial dates and day fractions reach
// the pipeline unformatted.
func (r *Reader) ReadGrid(data []byte) (domain.Grid, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return readXLSX(data)
	case bytes.HasPrefix(data, oleMagic):
		return readXLS(data)
	default:
		return nil, domain.ErrUnsupportedFormat
	}
}

func readXLSX(data []byte) (domain.Grid, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWorkbookDecode, err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, domain.ErrNoSheetFound
	}

	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWorkbookDecode, err)
	}

	grid := make(domain.Grid, 0, len(rows))
	for r, row := range rows {
		cells := make(domain.Row, len(row))
		for c, value := range row {
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrWorkbookDecode, err)
			}
			cellType, err := file.GetCellType(sheetName, axis)
			if err != nil {
				cellType = excelize.CellTypeUnset
			}
			cells[c] = classify(value, cellType)
		}
		grid = append(grid, cells)
	}

	return grid, nil
}

func readXLS(data []byte) (domain.Grid, error) {
	book, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWorkbookDecode, err)
	}
	if book == nil {
		return nil, fmt.Errorf("%w: no workbook stream", domain.ErrWorkbookDecode)
	}
	if book.NumSheets() == 0 {
		return nil, domain.ErrNoSheetFound
	}

	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, domain.ErrNoSheetFound
	}

	grid := make(domain.Grid, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := xlsRow(sheet, i)
		if row == nil {
			grid = append(grid, domain.Row{})
			continue
		}
		cells := make(domain.Row, row.LastCol())
		for c := range cells {
			value := row.Col(c)
			switch {
			case value == xlsFormulaPlaceholder:
				cells[c] = domain.Cell{}
			case xlsMonthOnlyDate.MatchString(value):
				axis, _ := excelize.CoordinatesToCellName(c+1, i+1)
				return nil, fmt.Errorf("%w: date in cell %s is stored in a built-in date format that .xls decoding reduces to year and month; save the workbook as .xlsx", domain.ErrWorkbookDecode, axis)
			default:
				cells[c] = classify(value, excelize.CellTypeUnset)
			}
		}
		grid = append(grid, cells)
	}

	return grid, nil
}

// xlsRow returns nil for rows the file does not contain.
// WorkSheet.Row dereferences a missing row instead of returning nil.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// classify turns a raw cell string into a typed cell. String-typed cells stay
// text even when they look numeric.
func classify(value string, cellType excelize.CellType) domain.Cell {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeBool, excelize.CellTypeError:
		return domain.TextCell(value)
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return domain.Cell{}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return domain.NumberCell(f)
	}
	return domain.TextCell(value)
}
