// Package generator produces deterministic synthetic customer datasets for
// seeding and load-testing repository backends.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Config drives the synthetic customer generator.
type Config struct {
	NumCustomers int
	CompanyRatio float64
	Seed         int64
}

// DefaultConfig returns baseline settings.
func DefaultConfig() Config {
	return Config{
		NumCustomers: 1000,
		CompanyRatio: 0.2,
		Seed:         42,
	}
}

// CustomerRecord is one generated customer, shaped for JSON datasets.
type CustomerRecord struct {
	TotalSales float64 `json:"totalSales"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	IsCompany  bool    `json:"isCompany"`
	Email      string  `json:"email"`
}

// Dataset contains the generated customers.
type Dataset struct {
	Customers []CustomerRecord `json:"customers"`
}

// Generator produces synthetic customers. A fixed seed yields a fixed
// dataset.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumCustomers <= 0 {
		cfg.NumCustomers = DefaultConfig().NumCustomers
	}
	if cfg.CompanyRatio < 0 {
		cfg.CompanyRatio = 0
	}
	if cfg.CompanyRatio > 1 {
		cfg.CompanyRatio = 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate synthesises the customer dataset. It respects context
// cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	customers := make([]CustomerRecord, g.cfg.NumCustomers)
	for i := range customers {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		if g.rand.Float64() < g.cfg.CompanyRatio {
			customers[i] = g.randomCompany()
		} else {
			customers[i] = g.randomPerson()
		}
	}
	return Dataset{Customers: customers}, nil
}

func (g *Generator) randomPerson() CustomerRecord {
	first := firstNames[g.rand.Intn(len(firstNames))]
	last := lastNames[g.rand.Intn(len(lastNames))]
	domain := emailDomains[g.rand.Intn(len(emailDomains))]
	return CustomerRecord{
		TotalSales: g.randomTotal(),
		FirstName:  first,
		LastName:   last,
		IsCompany:  false,
		Email:      fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), g.rand.Intn(100), domain),
	}
}

func (g *Generator) randomCompany() CustomerRecord {
	name := fmt.Sprintf("%s %s", companyStems[g.rand.Intn(len(companyStems))], companySuffixes[g.rand.Intn(len(companySuffixes))])
	slug := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	return CustomerRecord{
		TotalSales: g.randomTotal(),
		FirstName:  name,
		LastName:   "",
		IsCompany:  true,
		Email:      fmt.Sprintf("contact@%s.com", slug),
	}
}

func (g *Generator) randomTotal() float64 {
	// two decimal places, up to 250k
	return float64(g.rand.Intn(25000000)) / 100
}

var firstNames = []string{
	"Ada", "Bram", "Carla", "Dev", "Elena", "Farid", "Grace", "Hugo",
	"Imani", "Jonas", "Kira", "Luis", "Mara", "Nils", "Oona", "Priya",
	"Quinn", "Rosa", "Sven", "Tara", "Umar", "Vera", "Wes", "Yara", "Zane",
}

var lastNames = []string{
	"Alvarez", "Berg", "Chen", "Dias", "Eriksen", "Fontaine", "Gupta",
	"Hansen", "Ibarra", "Jensen", "Kovacs", "Larsen", "Moreau", "Novak",
	"Okafor", "Petrov", "Quist", "Rossi", "Sato", "Tanaka", "Ueda",
	"Vargas", "Weber", "Yilmaz", "Zhang",
}

var companyStems = []string{
	"Apex", "Borealis", "Cobalt", "Delta", "Evergreen", "Fulcrum",
	"Granite", "Horizon", "Ironwood", "Juniper", "Keystone", "Lumen",
	"Meridian", "Northwind", "Osprey", "Pinnacle",
}

var companySuffixes = []string{
	"Trading", "Logistics", "Industries", "Holdings", "Partners",
	"Systems", "Supply", "Group",
}

var emailDomains = []string{
	"example.com", "mail.test", "inbox.example", "post.example.org",
}
