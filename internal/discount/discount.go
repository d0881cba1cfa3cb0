// Package discount computes final unit prices by threading a base price
// through an ordered list of stateless rules. Each rule receives the output
// of the previous one, so two applicable rules compound multiplicatively.
package discount

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/safar/go-retail-store/internal/models"
)

// Rule adjusts a price for a (customer, product) pair. A rule that finds no
// applicable condition returns the price unchanged; rules never fail.
type Rule interface {
	Apply(customer *models.Customer, product *models.Product, price decimal.Decimal) decimal.Decimal
}

var (
	categoryMultiplier = decimal.NewFromFloat(0.80)
	vipMultiplier      = decimal.NewFromFloat(0.90)
)

// CategoryRule takes 20% off products whose category matches the configured
// trigger, case-insensitively.
type CategoryRule struct {
	Category string
}

func NewCategoryRule(category string) CategoryRule {
	return CategoryRule{Category: category}
}

func (r CategoryRule) Apply(_ *models.Customer, product *models.Product, price decimal.Decimal) decimal.Decimal {
	if product.Category != "" && strings.EqualFold(product.Category, r.Category) {
		return price.Mul(categoryMultiplier)
	}
	return price
}

// VIPRule takes 10% off for customers flagged VIP.
type VIPRule struct{}

func (VIPRule) Apply(customer *models.Customer, _ *models.Product, price decimal.Decimal) decimal.Decimal {
	if customer != nil && customer.VIP {
		return price.Mul(vipMultiplier)
	}
	return price
}

// Pipeline evaluates rules in the order given at construction; reordering
// changes results under rounding, so the order is fixed by the caller.
type Pipeline struct {
	rules []Rule
}

func NewPipeline(rules ...Rule) *Pipeline {
	return &Pipeline{rules: rules}
}

// Default is the standard pipeline: category discount on "Shoes" first,
// VIP discount second.
func Default() *Pipeline {
	return NewPipeline(NewCategoryRule("Shoes"), VIPRule{})
}

// Apply threads base through every rule in pipeline order.
func (p *Pipeline) Apply(customer *models.Customer, product *models.Product, base decimal.Decimal) decimal.Decimal {
	price := base
	for _, rule := range p.rules {
		price = rule.Apply(customer, product, price)
	}
	return price
}

// FinalPrice applies the pipeline to the product's list price.
func (p *Pipeline) FinalPrice(customer *models.Customer, product *models.Product) decimal.Decimal {
	return p.Apply(customer, product, product.Price)
}
