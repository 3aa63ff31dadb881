package controller

import "github.com/lumiere-jewelry/storefront-recommendations/internal/domain"

type ProductsListResponse struct {
	Data     []domain.Product     `json:"data"`
	Metadata ProductsListMetadata `json:"metadata"`
}

type ProductsListMetadata struct{}
