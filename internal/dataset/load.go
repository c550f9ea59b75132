package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"dashboard.demografia.org/internal/logging"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath picks the reader from the file extension. Anything that is
// not a workbook is treated as delimited text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

type LoadOptions struct {
	EntityColumn string
	SeriesColumn string
	// Sheet selects the workbook sheet; empty means the first one.
	Sheet  string
	Logger *slog.Logger
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.EntityColumn == "" {
		o.EntityColumn = DefaultEntityColumn
	}
	if o.SeriesColumn == "" {
		o.SeriesColumn = DefaultSeriesColumn
	}
	return o
}

// Load reads the table at path with the default column names.
func Load(path string) (*Table, error) {
	return LoadWithOptions(path, LoadOptions{})
}

func LoadWithOptions(path string, opts LoadOptions) (table *Table, err error) {
	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	// The file is only read, so a failed close is logged and the load stands.
	defer logging.SafeCloseWithLogging(f, opts.Logger, "close_dataset")

	table, err = LoadReader(f, FormatFromPath(path), opts)
	if err != nil {
		var du *DataUnavailableError
		if errors.As(err, &du) {
			du.Path = path
		}
		return nil, err
	}
	table.source = path

	years := table.YearColumns(0, nil)
	first, last := 0, 0
	if len(years) > 0 {
		first, last = years[0], years[len(years)-1]
	}
	logging.LogDatasetLoaded(opts.Logger, path, string(table.format), table.Len(),
		len(table.columns), first, last, time.Since(start))
	return table, nil
}

// LoadReader parses a table from r. All failures are DataUnavailableErrors.
func LoadReader(r io.Reader, format Format, opts LoadOptions) (*Table, error) {
	var (
		header []string
		rows   [][]string
		err    error
	)
	switch format {
	case FormatXLSX:
		header, rows, err = readWorkbook(r, opts.Sheet)
	default:
		format = FormatCSV
		header, rows, err = readDelimited(r)
	}
	if err != nil {
		return nil, unavailable("", err)
	}

	table, err := NewTable(header, rows, opts)
	if err != nil {
		return nil, unavailable("", err)
	}
	table.format = format
	return table, nil
}

var utf8BOM = []byte("\ufeff")

func readDelimited(r io.Reader) ([]string, [][]string, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, nil, err
	}
	if bytes.HasPrefix(peek, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, nil, err
		}
		peek = peek[len(utf8BOM):]
	}
	if len(bytes.TrimSpace(peek)) == 0 {
		return nil, nil, errors.New("empty input")
	}

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(peek)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing delimited text: %w", err)
	}
	return records[0], records[1:], nil
}

// sniffDelimiter counts candidate separators on the header line.
func sniffDelimiter(sample []byte) rune {
	line, _, _ := bytes.Cut(sample, []byte{'\n'})
	best, bestCount := ',', bytes.Count(line, []byte{','})
	for _, c := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte(string(c))); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

func readWorkbook(r io.Reader, sheet string) (header []string, rows [][]string, err error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer logging.HandleDeferredError(&err, wb.Close, nil, "close_workbook")

	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	// Raw values keep thousands separators and other number formats out of the cells.
	all, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	return all[0], all[1:], nil
}
