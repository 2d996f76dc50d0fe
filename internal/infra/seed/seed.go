// Package seed ships the read-only data the store starts from: the built-in
// catalog and the two fixed accounts of a fresh registry.
package seed

import (
	_ "embed"

	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/service"
	"furnishop/internal/errors"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed products.yaml
	productsYAML []byte

	//go:embed accounts.yaml
	accountsYAML []byte
)

type productRecord struct {
	ID          int64   `yaml:"id"`
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
	Image       string  `yaml:"image"`
	Featured    bool    `yaml:"featured"`
}

type accountRecord struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type provider struct {
	products []entity.Product
	accounts []service.SeedAccount
}

// NewProvider decodes the embedded seed files.
func NewProvider() (service.SeedProvider, error) {
	return Parse(productsYAML, accountsYAML)
}

// Parse decodes seed documents and checks them: unique product ids, known
// categories, non-negative prices, unique emails and valid roles.
func Parse(productsDoc, accountsDoc []byte) (service.SeedProvider, error) {
	var productRecords []productRecord
	if err := yaml.Unmarshal(productsDoc, &productRecords); err != nil {
		return nil, errors.Wrap(err, "decode seed products")
	}

	var accountRecords []accountRecord
	if err := yaml.Unmarshal(accountsDoc, &accountRecords); err != nil {
		return nil, errors.Wrap(err, "decode seed accounts")
	}

	p := &provider{
		products: make([]entity.Product, 0, len(productRecords)),
		accounts: make([]service.SeedAccount, 0, len(accountRecords)),
	}

	seenProducts := make(map[int64]struct{}, len(productRecords))
	for _, r := range productRecords {
		if _, dup := seenProducts[r.ID]; dup {
			return nil, errors.Errorf("duplicate seed product id %d", r.ID)
		}
		seenProducts[r.ID] = struct{}{}

		category := entity.Category(r.Category)
		if !category.IsValid() {
			return nil, errors.Errorf("seed product %d has unknown category %q", r.ID, r.Category)
		}
		if r.Price < 0 {
			return nil, errors.Errorf("seed product %d has negative price", r.ID)
		}

		p.products = append(p.products, entity.Product{
			ID:          r.ID,
			Name:        r.Name,
			Price:       r.Price,
			Category:    category,
			Description: r.Description,
			Image:       r.Image,
			Featured:    r.Featured,
		})
	}

	seenEmails := make(map[string]struct{}, len(accountRecords))
	for _, r := range accountRecords {
		if _, dup := seenEmails[r.Email]; dup {
			return nil, errors.Errorf("duplicate seed account %s", r.Email)
		}
		seenEmails[r.Email] = struct{}{}

		role := entity.Role(r.Role)
		if !role.IsValid() {
			return nil, errors.Errorf("seed account %s has unknown role %q", r.Email, r.Role)
		}

		p.accounts = append(p.accounts, service.SeedAccount{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			Password: r.Password,
			Role:     role,
		})
	}

	return p, nil
}

func (p *provider) Products() []entity.Product {
	return entity.CloneProducts(p.products)
}

func (p *provider) Accounts() []service.SeedAccount {
	accounts := make([]service.SeedAccount, len(p.accounts))
	copy(accounts, p.accounts)

	return accounts
}
