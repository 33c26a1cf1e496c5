package roster

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestIsXLSX(t *testing.T) {
	assert.True(t, IsXLSX("roster.xlsx"))
	assert.True(t, IsXLSX("ROSTER.XLSX"))
	assert.False(t, IsXLSX("roster.csv"))
	assert.False(t, IsXLSX("roster"))
}

func TestConvertXLSX(t *testing.T) {
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	require.NoError(t, workbook.SetSheetRow(sheet, "A1", &[]interface{}{"username", "level"}))
	require.NoError(t, workbook.SetSheetRow(sheet, "A2", &[]interface{}{"alice", "FRESHMAN"}))
	require.NoError(t, workbook.SetSheetRow(sheet, "A3", &[]interface{}{"bob", "SENIOR"}))

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)

	csv, err := ConvertXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "username,level\nalice,FRESHMAN\nbob,SENIOR\n", string(csv))
}

func TestConvertXLSXPadsShortRows(t *testing.T) {
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	require.NoError(t, workbook.SetSheetRow(sheet, "A1", &[]interface{}{"username", "level"}))
	require.NoError(t, workbook.SetSheetRow(sheet, "A2", &[]interface{}{"alice"}))

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)

	csv, err := ConvertXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "username,level\nalice,\n", string(csv))
}

func TestConvertXLSXRejectsGarbage(t *testing.T) {
	_, err := ConvertXLSX(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}
