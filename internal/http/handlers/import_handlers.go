package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"github.com/shopspring/decimal"
)

// productCSVHeader is the column order used by export and accepted by import.
var productCSVHeader = []string{"name", "description", "category", "price", "cost", "stock", "min_stock", "sku"}

var requiredCSVColumns = []string{"name", "sku", "price", "stock"}

type csvRow struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Cost        float64
	Stock       int
	MinStock    int
	SKU         string
}

func (c csvRow) product(owner string) models.Product {
	return models.Product{
		OwnerID:     owner,
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Price:       c.Price,
		Cost:        c.Cost,
		Stock:       c.Stock,
		MinStock:    c.MinStock,
		SKU:         c.SKU,
	}
}

func (c csvRow) patch() models.ProductPatch {
	return models.ProductPatch{
		Name:        &c.Name,
		Description: &c.Description,
		Category:    &c.Category,
		Price:       &c.Price,
		Cost:        &c.Cost,
		Stock:       &c.Stock,
		MinStock:    &c.MinStock,
	}
}

// csvRecord is one data line plus any error found while decoding it.
type csvRecord struct {
	row csvRow
	err error
}

func parseCSV(file io.Reader) ([]csvRecord, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredCSVColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", col)
		}
	}

	var records []csvRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}
		records = append(records, decodeRow(index, record))
	}
	return records, nil
}

func decodeRow(index map[string]int, record []string) csvRecord {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var (
		row = csvRow{
			Name:        field("name"),
			Description: field("description"),
			Category:    field("category"),
			SKU:         field("sku"),
		}
		err error
	)
	if row.Price, err = parseMoney(field("price")); err != nil {
		return csvRecord{err: errors.New("invalid price")}
	}
	if row.Cost, err = parseMoney(field("cost")); err != nil {
		return csvRecord{err: errors.New("invalid cost")}
	}
	if row.Stock, err = parseCount(field("stock")); err != nil {
		return csvRecord{err: errors.New("invalid stock")}
	}
	if row.MinStock, err = parseCount(field("min_stock")); err != nil {
		return csvRecord{err: errors.New("invalid min_stock")}
	}
	return csvRecord{row: row}
}

// parseMoney reads a decimal amount. An empty cell is zero.
func parseMoney(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func validateRow(r csvRow) error {
	if r.Name == "" {
		return errors.New("missing name")
	}
	if r.SKU == "" {
		return errors.New("missing sku")
	}
	if r.Price < 0 || r.Price > maxAmount {
		return errors.New("invalid price")
	}
	if r.Cost < 0 || r.Cost > maxAmount {
		return errors.New("invalid cost")
	}
	if r.Stock < 0 {
		return errors.New("invalid stock")
	}
	if r.MinStock < 0 {
		return errors.New("invalid min_stock")
	}
	return nil
}

// ImportProducts godoc
// @Summary Import products via CSV
// @Description Columns: name, description, category, price, cost, stock, min_stock, sku. Rows are matched by SKU; existing products are skipped or updated depending on mode.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
func (s *Server) ImportProducts(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	owner := ownerID(r)
	imported := 0
	errorsList := []ProductValidationError{}
	rowError := func(rowNum int, format string, args ...any) {
		errorsList = append(errorsList, ProductValidationError{
			Field:       fmt.Sprintf("row %d", rowNum),
			Description: fmt.Sprintf(format, args...),
		})
	}

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		if rec.err != nil {
			rowError(rowNum, "%v", rec.err)
			continue
		}
		if err := validateRow(rec.row); err != nil {
			rowError(rowNum, "%v", err)
			continue
		}

		existing, err := s.Products.GetBySKU(r.Context(), owner, rec.row.SKU)
		switch {
		case err == nil:
			if mode == "skip" {
				rowError(rowNum, "product with SKU '%s' already exists", rec.row.SKU)
				continue
			}
			if _, err := s.Products.Update(r.Context(), owner, existing.ID, rec.row.patch()); err != nil {
				rowError(rowNum, "failed to update '%s'", rec.row.SKU)
				continue
			}
		case errors.Is(err, repo.ErrProductNotFound):
			if _, err := s.Products.Create(r.Context(), rec.row.product(owner)); err != nil {
				rowError(rowNum, "failed to create '%s'", rec.row.SKU)
				continue
			}
		default:
			s.internalError(w, r, "could not import products", err)
			return
		}
		imported++
	}

	writeJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}
