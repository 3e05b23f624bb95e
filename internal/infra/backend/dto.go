package backend

import (
	"time"

	"storefront/internal/domain/entity"
)

// messageResponse is the minimal body every backend reply carries.
type messageResponse struct {
	Message string `json:"message"`
}

// userDTO mirrors the backend's account record. The backend emits either a
// Mongo-style "_id" or a plain "id" depending on the endpoint; "_id" wins
// when both are present.
type userDTO struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func (d *userDTO) toEntity() *entity.User {
	if d == nil {
		return nil
	}

	id := d.MongoID
	if id == "" {
		id = d.ID
	}
	if id == "" {
		return nil
	}

	return &entity.User{
		ID:    id,
		Name:  d.Name,
		Email: d.Email,
		Phone: d.Phone,
	}
}

type authResponse struct {
	Message string   `json:"message"`
	User    *userDTO `json:"user"`
}

type orderItemDTO struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderDTO struct {
	MongoID       string         `json:"_id"`
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	Items         []orderItemDTO `json:"items"`
	TotalAmount   float64        `json:"totalAmount"`
	Address       string         `json:"address"`
	PaymentMethod string         `json:"paymentMethod"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (d *orderDTO) toEntity() *entity.Order {
	id := d.MongoID
	if id == "" {
		id = d.ID
	}

	items := make([]entity.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &entity.Order{
		ID:            id,
		UserID:        d.UserID,
		Items:         items,
		TotalAmount:   d.TotalAmount,
		Address:       d.Address,
		PaymentMethod: d.PaymentMethod,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
	}
}

type orderResponse struct {
	Message string    `json:"message"`
	OrderID string    `json:"orderId"`
	Order   *orderDTO `json:"order"`
}

// orderID resolves the confirmed order's identifier from whichever field the
// backend populated.
func (r *orderResponse) orderID() string {
	if r.OrderID != "" {
		return r.OrderID
	}
	if r.Order != nil {
		if r.Order.MongoID != "" {
			return r.Order.MongoID
		}

		return r.Order.ID
	}

	return ""
}

type ordersResponse struct {
	Orders []orderDTO `json:"orders"`
}

type productDTO struct {
	MongoID       string   `json:"_id"`
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	InStock       bool     `json:"inStock"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
}

func (d *productDTO) toEntity() entity.Product {
	id := d.MongoID
	if id == "" {
		id = d.ID
	}

	return entity.Product{
		ID:            id,
		Name:          d.Name,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Image:         d.Image,
		Category:      d.Category,
		Rating:        d.Rating,
		Reviews:       d.Reviews,
		InStock:       d.InStock,
		Description:   d.Description,
		Features:      d.Features,
	}
}

type productsResponse struct {
	Products []productDTO `json:"products"`
}
