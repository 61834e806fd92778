package sales

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeWorkbook(t *testing.T, name string, rows [][]any) string {
	t.Helper()
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, file.SaveAs(path))
	return path
}

func TestLoadProducts_CSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "products.csv", "product_id,level1,level2,name\n"+
		"p1,Dairy,Milk,Milk 1L\n"+
		"p2, Bakery ,Bread,Rye\n")

	products, err := LoadProducts(path)
	require.NoError(t, err)
	assert.Equal(t, []Product{
		{ProductID: "p1", Level1: "Dairy", Level2: "Milk", Name: "Milk 1L"},
		{ProductID: "p2", Level1: "Bakery", Level2: "Bread", Name: "Rye"},
	}, products)
}

func TestLoadOrders_CSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "orders.csv", "order_id,accepted_at,product_id,quantity,regular_price,price,cost_price\n"+
		"o1,2022-01-20 10:15:00,p1,2,100,80,50\n"+
		"o2,2022-01-21,p2,\"1,5\",40,40,\n")

	orders, err := LoadOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, Order{
		OrderID:      "o1",
		AcceptedAt:   time.Date(2022, 1, 20, 10, 15, 0, 0, time.UTC),
		ProductID:    "p1",
		Quantity:     2,
		RegularPrice: 100,
		Price:        80,
		CostPrice:    50,
	}, orders[0])
	assert.Equal(t, 1.5, orders[1].Quantity)
	assert.Equal(t, 0.0, orders[1].CostPrice)
}

func TestLoadOrders_RegularPriceDefaultsToPrice(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "orders.csv", "order_id,accepted_at,product_id,quantity,price\n"+
		"o1,2022-01-20,p1,1,75\n")

	orders, err := LoadOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 75.0, orders[0].RegularPrice)
}

func TestLoadOrders_XLSX(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, "orders.xlsx", [][]any{
		{"order_id", "accepted_at", "product_id", "quantity", "regular_price", "price", "cost_price"},
		{"o1", "2022-01-20 10:15:00", "p1", 2, 100, 80, 50},
		{"o2", 44582, "p2", 1, 40, 40, 10}, // serial date 2022-01-21
	})

	orders, err := LoadOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "o1", orders[0].OrderID)
	assert.Equal(t, 80.0, orders[0].Price)
	assert.Equal(t, time.Date(2022, 1, 21, 0, 0, 0, 0, time.UTC), orders[1].AcceptedAt)
	assert.Equal(t, 10.0, orders[1].CostPrice)
}

func TestLoadProducts_XLSX(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, "products.xlsx", [][]any{
		{"product_id", "level1", "level2"},
		{"p1", "Dairy", "Milk"},
	})

	products, err := LoadProducts(path)
	require.NoError(t, err)
	assert.Equal(t, []Product{{ProductID: "p1", Level1: "Dairy", Level2: "Milk"}}, products)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		content  string
		load     func(string) error
		expected error
	}{
		{
			name:     "unsupported extension",
			file:     "orders.json",
			content:  "{}",
			load:     func(p string) error { _, err := LoadOrders(p); return err },
			expected: ErrUnsupportedFormat,
		},
		{
			name:     "missing order columns",
			file:     "orders.csv",
			content:  "order_id,product_id\no1,p1\n",
			load:     func(p string) error { _, err := LoadOrders(p); return err },
			expected: ErrMissingColumn,
		},
		{
			name:     "empty products table",
			file:     "products.csv",
			content:  "",
			load:     func(p string) error { _, err := LoadProducts(p); return err },
			expected: ErrMissingColumn,
		},
		{
			name:     "bad quantity",
			file:     "orders.csv",
			content:  "order_id,accepted_at,product_id,quantity,price\no1,2022-01-20,p1,two,10\n",
			load:     func(p string) error { _, err := LoadOrders(p); return err },
			expected: ErrInvalidValue,
		},
		{
			name:     "bad timestamp",
			file:     "orders.csv",
			content:  "order_id,accepted_at,product_id,quantity,price\no1,someday,p1,1,10\n",
			load:     func(p string) error { _, err := LoadOrders(p); return err },
			expected: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, tt.file, tt.content)
			assert.ErrorIs(t, tt.load(path), tt.expected)
		})
	}
}
