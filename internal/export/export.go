// Package export writes the joined long table as CSV or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"dashboard.demografia.org/internal/dashboard"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" or "xlsx".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// SheetName is the worksheet holding the exported rows.
const SheetName = "Datos"

var Header = []string{
	"Country Name",
	"Year",
	"Fertility rate",
	"Urban population",
	"Population, total",
	"Urban population (%)",
	"Regime",
}

func Write(w io.Writer, format Format, points []dashboard.Point) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, points)
	case FormatCSV:
		return WriteCSV(w, points)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func WriteCSV(w io.Writer, points []dashboard.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, p := range points {
		record := []string{
			p.Entity,
			strconv.Itoa(p.Year),
			formatFloat(p.Fertility),
			formatFloat(p.UrbanPopulation),
			formatFloat(p.TotalPopulation),
			formatFloat(p.UrbanShare),
			p.Regime.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a single-sheet workbook with a bold header row.
func WriteXLSX(w io.Writer, points []dashboard.Point) (err error) {
	wb := excelize.NewFile()
	defer func() {
		if cerr := wb.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := wb.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := wb.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	bold, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(Header), 1)
	if err != nil {
		return err
	}
	if err := wb.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return err
	}

	for i, p := range points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{p.Entity, p.Year, p.Fertility, p.UrbanPopulation, p.TotalPopulation, p.UrbanShare, p.Regime.String()}
		if err := wb.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := wb.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
