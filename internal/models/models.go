package models

// Shopcart is the aggregate root: one customer's in-progress cart.
// A customer may own any number of shopcarts.
type Shopcart struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"                          json:"id"`
	CustomerID uint   `gorm:"index;not null"                                    json:"customer_id"`
	Items      []Item `gorm:"foreignKey:ShopcartID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Shopcart) TableName() string {
	return "shopcarts"
}

type Item struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	ShopcartID uint    `gorm:"index;not null"            json:"shopcart_id"`
	Name       string  `gorm:"size:64;not null"          json:"name"`
	Price      float64 `gorm:"not null"                  json:"price"`
	Quantity   int     `gorm:"not null;check:quantity>0" json:"quantity"`
	Color      string  `gorm:"size:16"                   json:"color"`
}

func (Item) TableName() string {
	return "items"
}
