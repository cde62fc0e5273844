package service

import (
	"fmt"
	"strings"

	"github.com/emily-flower/api/internal/models"
	"github.com/emily-flower/api/internal/repository"
)

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务实例
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput 商品创建/更新输入
type ProductInput struct {
	CategoryID    uint              `json:"category_id"`
	Slug          string            `json:"slug"`
	Name          map[string]string `json:"name"`
	Description   map[string]string `json:"description"`
	Price         int64             `json:"price"`
	OriginalPrice *int64            `json:"original_price"`
	Image         string            `json:"image"`
	Images        []string          `json:"images"`
	Tag           string            `json:"tag"`
	Rating        float64           `json:"rating"`
	Reviews       int               `json:"reviews"`
	InStock       bool              `json:"in_stock"`
	Featured      bool              `json:"featured"`
	SortOrder     int               `json:"sort_order"`
}

// List 商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// ListFeatured 首页推荐商品
func (s *ProductService) ListFeatured(limit int) ([]models.Product, error) {
	return s.productRepo.ListFeatured(limit)
}

// GetBySlug 公开商品详情
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// GetByID 按 ID 获取商品
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validateInput(input, nil); err != nil {
		return nil, err
	}

	product := &models.Product{}
	s.applyInput(product, input)
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(id string, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if err := s.validateInput(input, &id); err != nil {
		return nil, err
	}

	s.applyInput(product, input)
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id string) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.productRepo.Delete(id)
}

func (s *ProductService) validateInput(input ProductInput, excludeID *string) error {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return fmt.Errorf("%w: slug required", ErrInvalidInput)
	}
	count, err := s.productRepo.CountBySlug(slug, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}
	if input.Price <= 0 {
		return ErrInvalidPrice
	}
	if input.OriginalPrice != nil && *input.OriginalPrice <= 0 {
		return ErrInvalidPrice
	}
	if input.CategoryID == 0 {
		return ErrNotFound
	}
	category, err := s.categoryRepo.GetByID(fmt.Sprintf("%d", input.CategoryID))
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return nil
}

func (s *ProductService) applyInput(product *models.Product, input ProductInput) {
	product.CategoryID = input.CategoryID
	product.Slug = strings.TrimSpace(input.Slug)
	product.NameJSON = toJSONMap(input.Name)
	product.DescriptionJSON = toJSONMap(input.Description)
	product.Price = models.NewMoneyFromInt(input.Price)
	if input.OriginalPrice != nil {
		original := models.NewMoneyFromInt(*input.OriginalPrice)
		product.OriginalPrice = &original
	} else {
		product.OriginalPrice = nil
	}
	product.Image = strings.TrimSpace(input.Image)
	product.Images = models.StringArray(input.Images)
	product.Tag = strings.TrimSpace(input.Tag)
	product.Rating = clampRating(input.Rating)
	product.Reviews = input.Reviews
	product.InStock = input.InStock
	product.Featured = input.Featured
	product.SortOrder = input.SortOrder
}

func toJSONMap(m map[string]string) models.JSON {
	if len(m) == 0 {
		return models.JSON{}
	}
	out := models.JSON{}
	for key, value := range m {
		out[key] = value
	}
	return out
}

func clampRating(rating float64) float64 {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}
