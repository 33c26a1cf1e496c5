// Package roster converts spreadsheet rosters into the CSV form the remote
// API's import endpoint accepts.
package roster

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// IsXLSX reports whether the filename looks like an Excel workbook.
func IsXLSX(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".xlsx")
}

// ConvertXLSX renders the first sheet of a workbook as CSV. Trailing empty
// cells are kept so every row has the same width as the header.
func ConvertXLSX(file io.Reader) ([]byte, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheet)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("sheet %q is empty", sheet)
	}

	width := len(rows[0])
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	for _, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(err, "failed to write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush csv")
	}

	return buf.Bytes(), nil
}
