package product

import "time"

var seededAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// Seed is the built-in menu. The product service serves it when no database is
// configured and the storefront falls back to it when the service is unreachable.
func Seed() []Product {
	items := []Product{
		{
			ID:          "1",
			Title:       "Expresso Cappuccino",
			Description: []string{"cappuccino"},
			Price:       Price("8.50"),
			Category:    "Drinks",
			Ingredients: []string{"Espresso", "Milk", "White Chocolate Syrup", "Caramel Drizzle"},
			Available:   true,
		},
		{
			ID:          "2",
			Title:       "Expresso Latte",
			Description: []string{"latte"},
			Price:       Price("7.50"),
			Category:    "Drinks",
			Ingredients: []string{"Leite vaporizado", "Combinado com uma fina camada final de espuma de leite por cima"},
			Available:   true,
		},
		{
			ID:          "3",
			Title:       "Expresso Americano",
			Description: []string{"americano"},
			Price:       Price("6.00"),
			Category:    "Drinks",
			Ingredients: []string{"Agua", "Cafe expresso"},
			Available:   true,
		},
		{
			ID:          "4",
			Title:       "Expresso Mocha",
			Description: []string{"mocha"},
			Price:       Price("9.00"),
			Category:    "Drinks",
			Ingredients: []string{"Agua", "Leite vaporizado", "Caramelo"},
			Available:   true,
		},
		{
			ID:          "5",
			Title:       "Bolo de Cenoura",
			Description: []string{"fatia com cobertura de chocolate"},
			Price:       Price("7.00"),
			Category:    "Sweets",
			Ingredients: []string{"Cenoura", "Farinha", "Ovos", "Chocolate"},
			Available:   true,
		},
		{
			ID:          "6",
			Title:       "Pão de Queijo",
			Description: []string{"porção com 6 unidades"},
			Price:       Price("5.50"),
			Category:    "Savory",
			Ingredients: []string{"Polvilho", "Queijo minas", "Leite"},
			Available:   true,
		},
	}
	for i := range items {
		items[i].CreatedAt = seededAt
		items[i].UpdatedAt = seededAt
	}
	return items
}
