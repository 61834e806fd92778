package sales

import (
	"math"
	"sort"
	"time"
)

// ABC classes by cumulative share.
const (
	ClassA = "A"
	ClassB = "B"
	ClassC = "C"

	thresholdA = 70.0
	thresholdB = 90.0
)

type GroupQuantity struct {
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	Quantity    float64 `json:"quantity"`
}

type CategoryMargin struct {
	Category string  `json:"category"`
	Profit   float64 `json:"profit"`
	Revenue  float64 `json:"revenue"`
	Margin   float64 `json:"margin"` // percent, 2 decimals
}

type ABCEntry struct {
	Subcategory        string  `json:"subcategory"`
	Quantity           float64 `json:"quantity"`
	Revenue            float64 `json:"revenue"`
	CumulativeQuantity float64 `json:"cumulativeQuantity"` // percent
	CumulativeRevenue  float64 `json:"cumulativeRevenue"`  // percent
	QuantityClass      string  `json:"quantityClass"`
	RevenueClass       string  `json:"revenueClass"`
}

// QuantityByCategory sums sold units per category, largest first.
func QuantityByCategory(sales []Sale) []GroupQuantity {
	totals := map[string]float64{}
	for _, sale := range sales {
		totals[sale.Level1] += sale.Quantity
	}

	groups := make([]GroupQuantity, 0, len(totals))
	for category, quantity := range totals {
		groups = append(groups, GroupQuantity{Category: category, Quantity: quantity})
	}
	sortGroups(groups)
	return groups
}

// QuantityBySubcategory sums sold units per category and subcategory, largest first.
func QuantityBySubcategory(sales []Sale) []GroupQuantity {
	type key struct{ level1, level2 string }
	totals := map[key]float64{}
	for _, sale := range sales {
		totals[key{sale.Level1, sale.Level2}] += sale.Quantity
	}

	groups := make([]GroupQuantity, 0, len(totals))
	for k, quantity := range totals {
		groups = append(groups, GroupQuantity{Category: k.level1, Subcategory: k.level2, Quantity: quantity})
	}
	sortGroups(groups)
	return groups
}

func sortGroups(groups []GroupQuantity) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Quantity != groups[j].Quantity {
			return groups[i].Quantity > groups[j].Quantity
		}
		if groups[i].Category != groups[j].Category {
			return groups[i].Category < groups[j].Category
		}
		return groups[i].Subcategory < groups[j].Subcategory
	})
}

// AverageCheck returns revenue per distinct order accepted on the given calendar day.
// Days without orders give 0.
func AverageCheck(orders []Order, day time.Time) float64 {
	year, month, date := day.Date()

	var revenue float64
	checks := map[string]struct{}{}
	for _, order := range orders {
		y, m, d := order.AcceptedAt.Date()
		if y != year || m != month || d != date {
			continue
		}
		revenue += order.Price * order.Quantity
		checks[order.OrderID] = struct{}{}
	}
	if len(checks) == 0 {
		return 0
	}
	return revenue / float64(len(checks))
}

// PromoShare returns the share (0..1) of units of a category sold below regular price.
// Unknown or empty categories give 0.
func PromoShare(sales []Sale, category string) float64 {
	var total, promo float64
	for _, sale := range sales {
		if sale.Level1 != category {
			continue
		}
		total += sale.Quantity
		if sale.Promo() {
			promo += sale.Quantity
		}
	}
	if total == 0 {
		return 0
	}
	return promo / total
}

// MarginByCategory returns profit, revenue and margin percent per category, ordered by category.
func MarginByCategory(sales []Sale) []CategoryMargin {
	byCategory := map[string]*CategoryMargin{}
	for _, sale := range sales {
		m, ok := byCategory[sale.Level1]
		if !ok {
			m = &CategoryMargin{Category: sale.Level1}
			byCategory[sale.Level1] = m
		}
		m.Profit += sale.Profit
		m.Revenue += sale.Revenue
	}

	margins := make([]CategoryMargin, 0, len(byCategory))
	for _, m := range byCategory {
		if m.Revenue != 0 {
			m.Margin = round2(m.Profit / m.Revenue * 100)
		}
		margins = append(margins, *m)
	}
	sort.Slice(margins, func(i, j int) bool { return margins[i].Category < margins[j].Category })
	return margins
}

// ABCAnalysis classifies subcategories by cumulative quantity and revenue share:
// up to 70% is A, up to 90% is B, the rest C. Entries are ordered by quantity, largest first.
func ABCAnalysis(sales []Sale) []ABCEntry {
	bySubcategory := map[string]*ABCEntry{}
	var totalQuantity, totalRevenue float64
	for _, sale := range sales {
		e, ok := bySubcategory[sale.Level2]
		if !ok {
			e = &ABCEntry{Subcategory: sale.Level2}
			bySubcategory[sale.Level2] = e
		}
		e.Quantity += sale.Quantity
		e.Revenue += sale.Revenue
		totalQuantity += sale.Quantity
		totalRevenue += sale.Revenue
	}

	entries := make([]*ABCEntry, 0, len(bySubcategory))
	for _, e := range bySubcategory {
		entries = append(entries, e)
	}

	// revenue ranking first, the returned order is by quantity
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Revenue != entries[j].Revenue {
			return entries[i].Revenue > entries[j].Revenue
		}
		return entries[i].Subcategory < entries[j].Subcategory
	})
	var running float64
	for _, e := range entries {
		running += e.Revenue
		e.CumulativeRevenue = percent(running, totalRevenue)
		e.RevenueClass = classify(e.CumulativeRevenue)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Quantity != entries[j].Quantity {
			return entries[i].Quantity > entries[j].Quantity
		}
		return entries[i].Subcategory < entries[j].Subcategory
	})
	running = 0
	result := make([]ABCEntry, 0, len(entries))
	for _, e := range entries {
		running += e.Quantity
		e.CumulativeQuantity = percent(running, totalQuantity)
		e.QuantityClass = classify(e.CumulativeQuantity)
		result = append(result, *e)
	}
	return result
}

func classify(cumulative float64) string {
	switch {
	case cumulative <= thresholdA:
		return ClassA
	case cumulative <= thresholdB:
		return ClassB
	default:
		return ClassC
	}
}

func percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
