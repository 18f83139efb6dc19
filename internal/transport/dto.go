package transport

import "shopcarts/internal/models"

type ItemPayload struct {
	ID         uint    `json:"id"`
	ShopcartID uint    `json:"shopcart_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Color      string  `json:"color"`
}

func (p ItemPayload) ToModel() models.Item {
	return models.Item{
		ID:         p.ID,
		ShopcartID: p.ShopcartID,
		Name:       p.Name,
		Price:      p.Price,
		Quantity:   p.Quantity,
		Color:      p.Color,
	}
}

func ToItems(payloads []ItemPayload) []models.Item {
	items := make([]models.Item, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, p.ToModel())
	}
	return items
}

type CreateShopcartRequest struct {
	CustomerID uint          `json:"customer_id"`
	Items      []ItemPayload `json:"items"`
}

type UpdateShopcartRequest struct {
	ID         uint          `json:"id"`
	CustomerID uint          `json:"customer_id"`
	Items      []ItemPayload `json:"items"`
}

// UpdateItemRequest is a partial update: absent fields stay untouched.
type UpdateItemRequest struct {
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}

type CheckoutRequest struct {
	Items []ItemPayload `json:"items"`
}

type ItemListResponse struct {
	Items []models.Item `json:"items"`
}
