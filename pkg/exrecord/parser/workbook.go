package parser

import (
	"fmt"
	"io"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
	"github.com/xuri/excelize/v2"
)

// Workbook is an open spreadsheet file.
type Workbook struct {
	f        *excelize.File
	date1904 bool
}

// OpenFile opens the workbook at path.
func OpenFile(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return newWorkbook(f)
}

// OpenReader opens a workbook from r.
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return newWorkbook(f)
}

func newWorkbook(f *excelize.File) (*Workbook, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read workbook properties: %w", err)
	}
	return &Workbook{
		f:        f,
		date1904: props.Date1904 != nil && *props.Date1904,
	}, nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Date1904 reports whether serial dates count from 1904 instead of 1900.
func (w *Workbook) Date1904() bool {
	return w.date1904
}

// SheetNames returns the worksheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Worksheet opens the named worksheet for reading.
// Returns false if no worksheet has that name.
func (w *Workbook) Worksheet(name string) (*Worksheet, bool, error) {
	idx, err := w.f.GetSheetIndex(name)
	if err != nil {
		return nil, false, err
	}
	if idx < 0 {
		return nil, false, nil
	}

	rows, err := w.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, false, fmt.Errorf("read rows of %q: %w", name, err)
	}

	return &Worksheet{
		f:        w.f,
		name:     name,
		date1904: w.date1904,
		rows:     rows,
	}, true, nil
}

// Sheets summarises every worksheet in the workbook.
func (w *Workbook) Sheets() ([]models.SheetInfo, error) {
	var infos []models.SheetInfo
	for _, name := range w.f.GetSheetList() {
		rows, err := w.f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read rows of %q: %w", name, err)
		}

		info := models.SheetInfo{
			Name:    name,
			LastRow: len(rows),
		}
		if dim, err := w.f.GetSheetDimension(name); err == nil {
			if r, ok := ParseRange(dim); ok {
				info.Dimension = r.Ref(CellName)
			}
		}
		if r, ok := usedRange(rows); ok {
			info.UsedRange = r.Ref(CellName)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
