package handlers

import (
	"strings"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"min_stock"`
	SKU         string  `json:"sku"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// ProductPatchRequest is a partial update; omitted fields keep their value.
type ProductPatchRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	MinStock    *int     `json:"min_stock,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// trimmed returns a trimmed copy of s, or nil when s is nil.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func (pr ProductPatchRequest) patch() models.ProductPatch {
	return models.ProductPatch{
		Name:        trimmed(pr.Name),
		Description: pr.Description,
		Category:    pr.Category,
		Price:       pr.Price,
		Cost:        pr.Cost,
		Stock:       pr.Stock,
		MinStock:    pr.MinStock,
		SKU:         trimmed(pr.SKU),
		ImageURL:    pr.ImageURL,
	}
}

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	SKU         string    `json:"sku"`
	ImageURL    string    `json:"image_url,omitempty"`
	LowStock    bool      `json:"low_stock,omitempty"`
	OutOfStock  bool      `json:"out_of_stock,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		SKU:         p.SKU,
		ImageURL:    p.ImageURL,
		LowStock:    p.IsLowStock(),
		OutOfStock:  p.IsOutOfStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}
	return resp
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type CategoryPatchRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func toCategoryResponse(c models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, Color: c.Color}
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // positive restocks, negative sells
}

type MovementResponse struct {
	ID        int       `json:"id"`
	ProductID string    `json:"product_id"`
	Delta     int       `json:"delta"`
	CreatedAt time.Time `json:"created_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	ShopName string `json:"shop_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ShopName  string    `json:"shop_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		ShopName:  u.ShopName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type AuthResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type ProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	ShopName *string `json:"shop_name,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type MessageResult struct {
	Message string `json:"message"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}

// AccountExport is the downloadable snapshot of one account.
type AccountExport struct {
	User       UserResponse       `json:"user"`
	Products   []ProductResponse  `json:"products"`
	Categories []CategoryResponse `json:"categories"`
	ExportedAt time.Time          `json:"exported_at"`
}
