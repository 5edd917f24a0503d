package handlers

import (
	"github.com/ghuser/backoffice/services/catalog/domain/models"
)

// ItemResponse is the catalog item projection returned by every item endpoint.
type ItemResponse struct {
	ID          int64  `json:"id"          example:"10"`
	Name        string `json:"name"        example:"Blue Widget"`
	Description string `json:"description" example:"Widget, blue, 10mm"`
	Price       int64  `json:"price"       example:"120"`
	Cost        int64  `json:"cost"        example:"100"`
	Status      string `json:"status"      example:"ACTIVE"`
}

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name.String(),
		Description: item.Description,
		Price:       item.Price,
		Cost:        item.Cost,
		Status:      string(item.Status),
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}
