package discount_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safar/go-retail-store/internal/discount"
	"github.com/safar/go-retail-store/internal/models"
)

func product(category, price string) *models.Product {
	return &models.Product{ID: 1, Name: "Product", Category: category, Price: decimal.RequireFromString(price)}
}

func customer(vip bool) *models.Customer {
	return &models.Customer{ID: 100, Name: "Alice", VIP: vip}
}

func TestDefaultPipeline(t *testing.T) {
	pipeline := discount.Default()

	tests := []struct {
		name     string
		category string
		vip      bool
		expected string
	}{
		{"shoes for VIP compound to 72%", "Shoes", true, "72"},
		{"non-shoes for VIP", "Jackets", true, "90"},
		{"shoes for non-VIP", "Shoes", false, "80"},
		{"nothing applies", "Jackets", false, "100"},
		{"category match is case-insensitive", "shoes", false, "80"},
		{"empty category never matches", "", false, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pipeline.FinalPrice(customer(tt.vip), product(tt.category, "100"))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, got)
		})
	}
}

func TestRulesChainMultiplicatively(t *testing.T) {
	// Each rule must receive the output of the previous one, never the
	// original base price: 100 × 0.80 × 0.90 = 72, not 100 − 20% − 10% = 70.
	pipeline := discount.NewPipeline(discount.NewCategoryRule("Shoes"), discount.VIPRule{})

	got := pipeline.Apply(customer(true), product("Shoes", "100"), decimal.RequireFromString("100"))
	require.True(t, got.Equal(decimal.RequireFromString("72")), "got %s", got)
}

func TestPipelineOrderIsPreserved(t *testing.T) {
	p := product("Shoes", "100")
	c := customer(true)

	categoryFirst := discount.NewPipeline(discount.NewCategoryRule("Shoes"), discount.VIPRule{})
	vipFirst := discount.NewPipeline(discount.VIPRule{}, discount.NewCategoryRule("Shoes"))

	// These rules commute numerically, so both orders agree; the check is
	// that evaluation actually walks the configured sequence.
	assert.True(t, categoryFirst.FinalPrice(c, p).Equal(vipFirst.FinalPrice(c, p)))
	assert.True(t, categoryFirst.FinalPrice(c, p).Equal(decimal.RequireFromString("72")))
}

func TestEmptyPipelinePassesPriceThrough(t *testing.T) {
	pipeline := discount.NewPipeline()

	got := pipeline.FinalPrice(customer(true), product("Shoes", "59.49"))
	assert.True(t, got.Equal(decimal.RequireFromString("59.49")), "got %s", got)
}

func TestVIPRuleHandlesNilCustomer(t *testing.T) {
	got := discount.VIPRule{}.Apply(nil, product("Shoes", "100"), decimal.RequireFromString("100"))
	assert.True(t, got.Equal(decimal.RequireFromString("100")))
}

func TestInapplicableRuleIsNoOp(t *testing.T) {
	rule := discount.NewCategoryRule("Accessories")

	base := decimal.RequireFromString("25.00")
	got := rule.Apply(customer(false), product("Jackets", "25.00"), base)
	assert.True(t, got.Equal(base))
}
