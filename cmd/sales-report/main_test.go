package main

import (
	"bytes"
	"testing"
	"time"

	"attempt-stats/internal/sales"

	"github.com/stretchr/testify/assert"
)

func TestPrintReport(t *testing.T) {
	t.Parallel()

	day := time.Date(2022, 1, 20, 0, 0, 0, 0, time.UTC)
	orders := []sales.Order{
		{OrderID: "o1", AcceptedAt: day, ProductID: "p1", Quantity: 2, RegularPrice: 10, Price: 8, CostPrice: 4},
	}
	products := []sales.Product{{ProductID: "p1", Level1: "Dairy", Level2: "Milk"}}

	var buf bytes.Buffer
	printReport(&buf, sales.Merge(products, orders), orders, day, "Dairy")

	out := buf.String()
	assert.Contains(t, out, "Dairy\t2.00\n")
	assert.Contains(t, out, "AVERAGE CHECK 2022-01-20\t16.00")
	assert.Contains(t, out, "PROMO SHARE Dairy\t100.00%")
	assert.Contains(t, out, "Dairy\t8.00\t16.00\t50.00")
	assert.Contains(t, out, "Milk\t2.00\t100.00\tC\t16.00\t100.00\tC")
}

func TestPrintReport_SkipsOptionalSections(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printReport(&buf, nil, nil, time.Time{}, "")

	assert.NotContains(t, buf.String(), "AVERAGE CHECK")
	assert.NotContains(t, buf.String(), "PROMO SHARE")
}
