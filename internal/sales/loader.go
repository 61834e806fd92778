package sales

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported table format")
	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidValue      = errors.New("invalid value")
)

var (
	productColumns = []string{"product_id", "level1", "level2"}
	orderColumns   = []string{"order_id", "accepted_at", "product_id", "quantity", "price"}
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02",
	"01-02-06 15:04",
	"1/2/06 15:04",
}

// LoadProducts reads products from a .csv or .xlsx file with a header row.
func LoadProducts(path string) ([]Product, error) {
	table, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := table.require(productColumns...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	products := make([]Product, 0, len(table.rows))
	for _, row := range table.rows {
		products = append(products, Product{
			ProductID: table.value(row, "product_id"),
			Name:      table.value(row, "name"),
			Level1:    table.value(row, "level1"),
			Level2:    table.value(row, "level2"),
		})
	}
	return products, nil
}

// LoadOrders reads order lines from a .csv or .xlsx file with a header row.
// regular_price defaults to price and cost_price to zero when the columns are absent.
func LoadOrders(path string) ([]Order, error) {
	table, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := table.require(orderColumns...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	orders := make([]Order, 0, len(table.rows))
	for i, row := range table.rows {
		order, err := table.order(row)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+2, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

type table struct {
	columns map[string]int
	rows    [][]string
}

func readTable(path string) (*table, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w: empty table", path, ErrMissingColumn)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return &table{columns: columns, rows: rows[1:]}, nil
}

// readXLSX reads the first worksheet with raw cell values, so dates arrive as serial numbers.
func readXLSX(path string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func (t *table) require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// value returns the trimmed cell of the named column, or "" for absent columns and short rows.
func (t *table) value(row []string, name string) string {
	i, ok := t.columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *table) order(row []string) (Order, error) {
	acceptedAt, err := parseTimestamp(t.value(row, "accepted_at"))
	if err != nil {
		return Order{}, err
	}
	quantity, err := t.number(row, "quantity")
	if err != nil {
		return Order{}, err
	}
	price, err := t.number(row, "price")
	if err != nil {
		return Order{}, err
	}
	regularPrice := price
	if t.value(row, "regular_price") != "" {
		if regularPrice, err = t.number(row, "regular_price"); err != nil {
			return Order{}, err
		}
	}
	var costPrice float64
	if t.value(row, "cost_price") != "" {
		if costPrice, err = t.number(row, "cost_price"); err != nil {
			return Order{}, err
		}
	}

	return Order{
		OrderID:      t.value(row, "order_id"),
		AcceptedAt:   acceptedAt,
		ProductID:    t.value(row, "product_id"),
		Quantity:     quantity,
		RegularPrice: regularPrice,
		Price:        price,
		CostPrice:    costPrice,
	}, nil
}

func (t *table) number(row []string, name string) (float64, error) {
	raw := strings.ReplaceAll(t.value(row, name), ",", ".")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidValue, name, raw)
	}
	return value, nil
}

// parseTimestamp accepts text timestamps and spreadsheet serial dates.
func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: accepted_at %q", ErrInvalidValue, raw)
}
