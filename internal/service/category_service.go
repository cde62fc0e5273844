package service

import (
	"fmt"
	"strings"

	"github.com/emily-flower/api/internal/models"
	"github.com/emily-flower/api/internal/repository"
)

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务实例
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryInput 分类创建/更新输入
type CategoryInput struct {
	Slug      string            `json:"slug"`
	Name      map[string]string `json:"name"`
	SortOrder int               `json:"sort_order"`
}

// List 分类列表
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// GetByID 按 ID 获取分类
func (s *CategoryService) GetByID(id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	if err := s.validateInput(input, nil); err != nil {
		return nil, err
	}
	category := &models.Category{
		Slug:      strings.TrimSpace(input.Slug),
		NameJSON:  toJSONMap(input.Name),
		SortOrder: input.SortOrder,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update 更新分类
func (s *CategoryService) Update(id string, input CategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	if err := s.validateInput(input, &id); err != nil {
		return nil, err
	}

	category.Slug = strings.TrimSpace(input.Slug)
	category.NameJSON = toJSONMap(input.Name)
	category.SortOrder = input.SortOrder
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类，被商品引用时拒绝
func (s *CategoryService) Delete(id string) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	count, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}

func (s *CategoryService) validateInput(input CategoryInput, excludeID *string) error {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return fmt.Errorf("%w: slug required", ErrInvalidInput)
	}
	count, err := s.categoryRepo.CountBySlug(slug, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}
	return nil
}
