package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"attempt-stats/internal/sales"
	"attempt-stats/internal/shared/loggers"
)

const dateLayout = "2006-01-02"

func main() {
	ordersPath := flag.String("orders", "orders.xlsx", "orders table (.xlsx or .csv)")
	productsPath := flag.String("products", "products.xlsx", "products table (.xlsx or .csv)")
	date := flag.String("date", "", "day for the average check, YYYY-MM-DD")
	category := flag.String("category", "", "category (level1) for the promo share")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger, err := loggers.NewConsole(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(2)
	}

	var day time.Time
	if *date != "" {
		if day, err = time.Parse(dateLayout, *date); err != nil {
			logger.Error().Err(err).Str("date", *date).Msg("invalid date")
			os.Exit(2)
		}
	}

	products, err := sales.LoadProducts(*productsPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load products")
		os.Exit(1)
	}
	orders, err := sales.LoadOrders(*ordersPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load orders")
		os.Exit(1)
	}
	merged := sales.Merge(products, orders)
	logger.Info().
		Int("products", len(products)).
		Int("orders", len(orders)).
		Int("matched", len(merged)).
		Msg("tables loaded")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printReport(w, merged, orders, day, *category)
	if err := w.Flush(); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
		os.Exit(1)
	}
}

func printReport(w io.Writer, merged []sales.Sale, orders []sales.Order, day time.Time, category string) {
	fmt.Fprintln(w, "CATEGORY\tQUANTITY")
	for _, g := range sales.QuantityByCategory(merged) {
		fmt.Fprintf(w, "%s\t%.2f\n", g.Category, g.Quantity)
	}

	fmt.Fprintln(w, "\nCATEGORY\tSUBCATEGORY\tQUANTITY")
	for _, g := range sales.QuantityBySubcategory(merged) {
		fmt.Fprintf(w, "%s\t%s\t%.2f\n", g.Category, g.Subcategory, g.Quantity)
	}

	if !day.IsZero() {
		fmt.Fprintf(w, "\nAVERAGE CHECK %s\t%.2f\n", day.Format(dateLayout), sales.AverageCheck(orders, day))
	}
	if category != "" {
		fmt.Fprintf(w, "\nPROMO SHARE %s\t%.2f%%\n", category, sales.PromoShare(merged, category)*100)
	}

	fmt.Fprintln(w, "\nCATEGORY\tPROFIT\tREVENUE\tMARGIN %")
	for _, m := range sales.MarginByCategory(merged) {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", m.Category, m.Profit, m.Revenue, m.Margin)
	}

	fmt.Fprintln(w, "\nSUBCATEGORY\tQUANTITY\tCUM QTY %\tABC QTY\tREVENUE\tCUM REV %\tABC REV")
	for _, e := range sales.ABCAnalysis(merged) {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%s\t%.2f\t%.2f\t%s\n",
			e.Subcategory, e.Quantity, e.CumulativeQuantity, e.QuantityClass,
			e.Revenue, e.CumulativeRevenue, e.RevenueClass)
	}
}
