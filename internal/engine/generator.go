package engine

import (
	"fmt"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
)

// DefaultDatasets is the lab's fixed source set, in load order.
var DefaultDatasets = []string{"accounts", "products", "transactions"}

// Generator produces demo CSV contents for the default datasets.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator seeds the faker; a zero seed picks a random one.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Dataset returns the header and rows data rows for the named dataset.
// Every column keeps one shape across all rows so single-row inference
// holds for the whole file.
func (g *Generator) Dataset(name string, rows int) ([]string, [][]string, error) {
	if rows < 1 {
		return nil, nil, fmt.Errorf("dataset %s: rows must be >= 1, got %d", name, rows)
	}
	switch name {
	case "accounts":
		return g.accounts(), g.fill(rows, g.accountRow), nil
	case "products":
		return g.products(), g.fill(rows, g.productRow), nil
	case "transactions":
		return g.transactions(), g.fill(rows, func(i int) []string { return g.transactionRow(i, rows) }), nil
	default:
		return nil, nil, fmt.Errorf("unknown dataset %q", name)
	}
}

func (g *Generator) fill(rows int, row func(i int) []string) [][]string {
	out := make([][]string, rows)
	for i := range out {
		out[i] = row(i + 1)
	}
	return out
}

func (g *Generator) accounts() []string {
	return []string{"account_id", "first_name", "last_name", "email", "city", "balance"}
}

func (g *Generator) accountRow(id int) []string {
	return []string{
		strconv.Itoa(id),
		g.faker.FirstName(),
		g.faker.LastName(),
		g.faker.Email(),
		g.faker.City(),
		money(g.faker.Price(10, 5000)),
	}
}

func (g *Generator) products() []string {
	return []string{"product_id", "product_name", "category", "price", "stock"}
}

func (g *Generator) productRow(id int) []string {
	name := g.pick(ProductAdjectives) + " " + g.pick(ProductNouns)
	return []string{
		strconv.Itoa(id),
		name,
		g.pick(Categories),
		money(g.faker.Price(0.99, 99.99)),
		strconv.Itoa(g.faker.Number(0, 500)),
	}
}

func (g *Generator) transactions() []string {
	return []string{"transaction_id", "account_id", "product_id", "quantity", "amount", "payment_method"}
}

// transactionRow references account and product ids within 1..n.
func (g *Generator) transactionRow(id, n int) []string {
	return []string{
		strconv.Itoa(id),
		strconv.Itoa(g.faker.Number(1, n)),
		strconv.Itoa(g.faker.Number(1, n)),
		strconv.Itoa(g.faker.Number(1, 10)),
		money(g.faker.Price(0.99, 999.99)),
		g.pick(PaymentMethods),
	}
}

func (g *Generator) pick(words []string) string {
	return words[g.faker.Number(0, len(words)-1)]
}

// money always renders two decimals so the column infers as Real.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
