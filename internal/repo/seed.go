package repo

import (
	"context"
	"fmt"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

// DefaultCategories is the starter set every new account receives.
func DefaultCategories() []models.Category {
	return []models.Category{
		{Name: "Electronics", Description: "Electronic devices and accessories", Color: "#3B82F6"},
		{Name: "Clothing", Description: "Apparel and fashion items", Color: "#10B981"},
		{Name: "Food & Beverages", Description: "Food items and drinks", Color: "#F59E0B"},
		{Name: "Books", Description: "Books and educational materials", Color: "#8B5CF6"},
		{Name: "Home & Garden", Description: "Home improvement and garden supplies", Color: "#06B6D4"},
	}
}

// SampleProducts is a small demo catalog that references DefaultCategories by name.
func SampleProducts() []models.Product {
	return []models.Product{
		{Name: "Wireless Headphones", Description: "High-quality Bluetooth headphones with noise cancellation", Category: "Electronics", Price: 99.99, Cost: 60, Stock: 25, MinStock: 5, SKU: "WH001"},
		{Name: "Cotton T-Shirt", Description: "Comfortable 100% cotton t-shirt in various colors", Category: "Clothing", Price: 19.99, Cost: 8, Stock: 50, MinStock: 10, SKU: "TS001"},
		{Name: "Coffee Beans", Description: "Premium arabica coffee beans, medium roast", Category: "Food & Beverages", Price: 12.99, Cost: 6.5, Stock: 3, MinStock: 5, SKU: "CB001"},
		{Name: "Programming Book", Description: "Learn JavaScript programming from basics to advanced", Category: "Books", Price: 39.99, Cost: 20, Stock: 0, MinStock: 3, SKU: "PB001"},
		{Name: "Garden Hose", Description: "50ft expandable garden hose with spray nozzle", Category: "Home & Garden", Price: 29.99, Cost: 15, Stock: 15, MinStock: 5, SKU: "GH001"},
	}
}

// SeedCatalog installs the default categories for ownerID and, when withProducts is set,
// the sample products too.
func SeedCatalog(ctx context.Context, categories CategoryRepository, products ProductRepository, ownerID string, withProducts bool) error {
	for _, c := range DefaultCategories() {
		c.OwnerID = ownerID
		if _, err := categories.Create(ctx, c); err != nil {
			return fmt.Errorf("seeding category %q: %w", c.Name, err)
		}
	}
	if !withProducts {
		return nil
	}
	for _, p := range SampleProducts() {
		p.OwnerID = ownerID
		if _, err := products.Create(ctx, p); err != nil {
			return fmt.Errorf("seeding product %q: %w", p.SKU, err)
		}
	}
	return nil
}
