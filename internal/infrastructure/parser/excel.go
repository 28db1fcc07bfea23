// Package parser loads product catalogs from spreadsheet files.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

// expected header columns, matched case-insensitively
var headerAliases = map[string]string{
	"name":      "name",
	"product":   "name",
	"category":  "category",
	"price":     "price",
	"image":     "image_url",
	"image_url": "image_url",
	"imageurl":  "image_url",
}

// ParseCatalogXLSX reads products from the first sheet of an xlsx file.
// The first row must be a header with at least Name and Price columns;
// rows with an empty name or unparsable price are skipped with an error
// listing them.
func ParseCatalogXLSX(path string) ([]entity.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalog file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("catalog sheet %q has no data rows", sheets[0])
	}

	cols, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	var products []entity.Product
	var bad []string
	for i, row := range rows[1:] {
		product, err := parseRow(row, cols)
		if err != nil {
			bad = append(bad, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		products = append(products, product)
	}
	if len(bad) > 0 {
		return products, fmt.Errorf("skipped %d rows: %s", len(bad), strings.Join(bad, "; "))
	}
	return products, nil
}

func mapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, cell := range header {
		key := strings.ToLower(strings.TrimSpace(cell))
		if field, ok := headerAliases[key]; ok {
			cols[field] = i
		}
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("catalog header missing Name column")
	}
	if _, ok := cols["price"]; !ok {
		return nil, fmt.Errorf("catalog header missing Price column")
	}
	return cols, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseRow(row []string, cols map[string]int) (entity.Product, error) {
	name := cell(row, cols["name"])
	if name == "" {
		return entity.Product{}, fmt.Errorf("empty name")
	}
	priceRaw := cell(row, cols["price"])
	price, err := strconv.ParseFloat(strings.TrimPrefix(priceRaw, "₹"), 64)
	if err != nil {
		return entity.Product{}, fmt.Errorf("bad price %q", priceRaw)
	}
	if price < 0 {
		return entity.Product{}, fmt.Errorf("negative price %q", priceRaw)
	}

	product := entity.Product{Name: name, Price: price}
	if idx, ok := cols["category"]; ok {
		product.Category = cell(row, idx)
	}
	if idx, ok := cols["image_url"]; ok {
		product.ImageURL = cell(row, idx)
	}
	return product, nil
}
