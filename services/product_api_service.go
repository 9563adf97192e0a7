package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Yolianaadel/NutriPlan-Website/models"
)

// ProductAPIService is the packaged-product directory client.
type ProductAPIService struct {
	baseURL string
	client  *http.Client
}

func NewProductAPIService(baseURL string, timeout time.Duration) *ProductAPIService {
	return &ProductAPIService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type productSearchResponse struct {
	Products []models.ProductRecord `json:"products"`
}

type productLookupResponse struct {
	Product *models.ProductRecord `json:"product"`
}

type productCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type productCategoryResponse struct {
	Results []models.ProductRecord `json:"results"`
}

func (s *ProductAPIService) get(path string, out any) error {
	resp, err := s.client.Get(s.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to call product directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("product directory error %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse product directory response: %w", err)
	}
	return nil
}

// SearchByName pages through packaged products matching q. Empty input is
// rejected before any network call.
func (s *ProductAPIService) SearchByName(q string, page, limit int) ([]models.Product, error) {
	if strings.TrimSpace(q) == "" {
		return nil, ErrEmptyQuery
	}
	path := fmt.Sprintf("/products/search?q=%s&page=%d&limit=%d", url.QueryEscape(q), page, limit)
	var parsed productSearchResponse
	if err := s.get(path, &parsed); err != nil {
		return nil, err
	}
	return normalizeProducts(parsed.Products), nil
}

// ByBarcode looks one product up. A miss is ErrProductNotFound, distinct
// from transport failures.
func (s *ProductAPIService) ByBarcode(barcode string) (*models.Product, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, ErrEmptyBarcode
	}
	var parsed productLookupResponse
	if err := s.get("/products/barcode/"+url.PathEscape(barcode), &parsed); err != nil {
		return nil, err
	}
	if parsed.Product == nil {
		return nil, ErrProductNotFound
	}
	p := models.NewProduct(*parsed.Product)
	return &p, nil
}

// Categories lists the product category names.
func (s *ProductAPIService) Categories() ([]string, error) {
	var parsed productCategoriesResponse
	if err := s.get("/products/categories", &parsed); err != nil {
		return nil, err
	}
	return parsed.Categories, nil
}

// ByCategory pages through the products of one category.
func (s *ProductAPIService) ByCategory(category string, page, limit int) ([]models.Product, error) {
	path := fmt.Sprintf("/products/category/%s?page=%d&limit=%d", url.PathEscape(category), page, limit)
	var parsed productCategoryResponse
	if err := s.get(path, &parsed); err != nil {
		return nil, err
	}
	return normalizeProducts(parsed.Results), nil
}

func normalizeProducts(records []models.ProductRecord) []models.Product {
	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, models.NewProduct(rec))
	}
	return products
}
