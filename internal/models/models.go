package models

import (
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Sizes     []string        `json:"sizes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Customer struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	VIP                bool      `json:"vip"`
	FavoriteCategories []string  `json:"favorite_categories,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Customer ids start at 100 and are never reused within a process.
const customerIDBase = 100

var customerSeq atomic.Int64

// NewCustomer assigns the next customer id from the process-wide sequence.
func NewCustomer(name, email string) *Customer {
	return &Customer{
		ID:        customerIDBase + customerSeq.Add(1) - 1,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
}

// OrderItem references a shared Product instance; the same instance backs
// every item for that product, so stock changes are visible everywhere.
type OrderItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"order_number"`
	Customer    *Customer   `json:"customer"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Total sums unit price × quantity over the order's items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type Review struct {
	Customer  *Customer `json:"customer"`
	Product   *Product  `json:"product"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	OrderStatusConfirmed = "confirmed"
)
