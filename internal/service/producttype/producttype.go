package producttype

import (
	"context"
	"fmt"
	"strings"

	"yardbook/internal/entities"
)

type ProductTypes struct {
	repository Repository
}

func New(repository Repository) *ProductTypes {
	return &ProductTypes{
		repository: repository,
	}
}

func (s *ProductTypes) CreateProductType(ctx context.Context, typeModify entities.ProductTypeModify) (int64, error) {
	if typeModify.Name == nil || typeModify.Yard == nil || typeModify.DailyCapacity == nil {
		return 0, ErrMissingRequiredFields
	}
	if strings.TrimSpace(*typeModify.Name) == "" {
		return 0, ErrInvalidName
	}
	if *typeModify.DailyCapacity < 0 {
		return 0, ErrInvalidCapacity
	}
	if typeModify.Tolerance != nil && *typeModify.Tolerance < 0 {
		return 0, ErrInvalidCapacity
	}

	id, err := s.repository.Create(ctx, typeModify)
	if err != nil {
		return 0, fmt.Errorf("create product type: %w", err)
	}
	return id, nil
}

func (s *ProductTypes) UpdateProductType(ctx context.Context, typeModify entities.ProductTypeModify) (*entities.ProductType, error) {
	if typeModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if typeModify.Name == nil && typeModify.Yard == nil && typeModify.DailyCapacity == nil && typeModify.Tolerance == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if typeModify.Name != nil && strings.TrimSpace(*typeModify.Name) == "" {
		return nil, ErrInvalidName
	}
	if typeModify.DailyCapacity != nil && *typeModify.DailyCapacity < 0 {
		return nil, ErrInvalidCapacity
	}

	productType, err := s.repository.Update(ctx, typeModify)
	if err != nil {
		return nil, fmt.Errorf("update product type: %w", err)
	}
	return productType, nil
}

func (s *ProductTypes) GetProductType(ctx context.Context, id int64) (*entities.ProductType, error) {
	productType, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product type: %w", err)
	}
	return productType, nil
}

func (s *ProductTypes) GetProductTypes(ctx context.Context) ([]entities.ProductType, error) {
	productTypes, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get product types: %w", err)
	}
	return productTypes, nil
}
