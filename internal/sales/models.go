package sales

import "time"

// Product is one row of the products table.
type Product struct {
	ProductID string
	Name      string
	Level1    string // category
	Level2    string // subcategory
}

// Order is one order line. Price is what the customer paid per unit; a price below
// RegularPrice means the line was sold on promo.
type Order struct {
	OrderID      string
	AcceptedAt   time.Time
	ProductID    string
	Quantity     float64
	RegularPrice float64
	Price        float64
	CostPrice    float64
}

// Sale is an order line joined with its product.
type Sale struct {
	Order
	Product
	Revenue float64
	Cost    float64
	Profit  float64
}

func (s Sale) Promo() bool { return s.RegularPrice != s.Price }

// Merge inner-joins orders with products on product_id and derives revenue, cost and profit.
// Orders of unknown products are dropped.
func Merge(products []Product, orders []Order) []Sale {
	byID := make(map[string]Product, len(products))
	for _, product := range products {
		byID[product.ProductID] = product
	}

	sales := make([]Sale, 0, len(orders))
	for _, order := range orders {
		product, ok := byID[order.ProductID]
		if !ok {
			continue
		}
		revenue := order.Price * order.Quantity
		cost := order.CostPrice * order.Quantity
		sales = append(sales, Sale{
			Order:   order,
			Product: product,
			Revenue: revenue,
			Cost:    cost,
			Profit:  revenue - cost,
		})
	}
	return sales
}
