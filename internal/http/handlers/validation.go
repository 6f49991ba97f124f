package handlers

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/Akshadkurundwade07/shopflow/internal/auth"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// maxAmount caps prices and costs so that price × stock sums stay finite.
const maxAmount = 1e9

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(p.SKU) == "" {
		errs = append(errs, ProductValidationError{Field: "SKU", Description: "SKU is required"})
	}
	errs = append(errs, validateAmounts(&p.Price, &p.Cost, &p.Stock, &p.MinStock)...)
	return errs
}

func validateProductPatch(p ProductPatchRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name cannot be empty"})
	}
	if p.SKU != nil && strings.TrimSpace(*p.SKU) == "" {
		errs = append(errs, ProductValidationError{Field: "SKU", Description: "SKU cannot be empty"})
	}
	errs = append(errs, validateAmounts(p.Price, p.Cost, p.Stock, p.MinStock)...)
	return errs
}

// validateAmounts checks the numeric product fields that are present.
// Zero prices and a cost above the price are allowed.
func validateAmounts(price, cost *float64, stock, minStock *int) []ProductValidationError {
	var errs []ProductValidationError
	if price != nil {
		if *price < 0 {
			errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot be negative"})
		} else if *price > maxAmount {
			errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot exceed 1000000000"})
		}
	}
	if cost != nil {
		if *cost < 0 {
			errs = append(errs, ProductValidationError{Field: "Cost", Description: "Cost cannot be negative"})
		} else if *cost > maxAmount {
			errs = append(errs, ProductValidationError{Field: "Cost", Description: "Cost cannot exceed 1000000000"})
		}
	}
	if stock != nil && *stock < 0 {
		errs = append(errs, ProductValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	if minStock != nil && *minStock < 0 {
		errs = append(errs, ProductValidationError{Field: "MinStock", Description: "Minimum stock cannot be negative"})
	}
	return errs
}

func validateCategory(c CategoryRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if c.Color != "" && !hexColor.MatchString(c.Color) {
		errs = append(errs, ProductValidationError{Field: "Color", Description: "Color must be a hex value like #3B82F6"})
	}
	return errs
}

func validateCategoryPatch(c CategoryPatchRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name cannot be empty"})
	}
	if c.Color != nil && !hexColor.MatchString(*c.Color) {
		errs = append(errs, ProductValidationError{Field: "Color", Description: "Color must be a hex value like #3B82F6"})
	}
	return errs
}

func validateSignup(req SignupRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if _, err := mail.ParseAddress(req.Email); err != nil || strings.TrimSpace(req.Email) == "" {
		errs = append(errs, ProductValidationError{Field: "Email", Description: "A valid email is required"})
	}
	if len(req.Password) < auth.MinPasswordLength {
		errs = append(errs, ProductValidationError{Field: "Password", Description: "Password must be at least 6 characters"})
	}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(req.ShopName) == "" {
		errs = append(errs, ProductValidationError{Field: "ShopName", Description: "Shop name is required"})
	}
	return errs
}

// defaultCategoryColor is used when a category is created without a color.
const defaultCategoryColor = "#6B7280"
