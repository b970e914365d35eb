package models

type ShippingStatus string

const (
	ShippingPending   ShippingStatus = "PENDING"
	ShippingShipped   ShippingStatus = "SHIPPED"
	ShippingDelivered ShippingStatus = "DELIVERED"
	ShippingCancelled ShippingStatus = "CANCELLED"
)

var ShippingStatuses = []ShippingStatus{ShippingPending, ShippingShipped, ShippingDelivered, ShippingCancelled}

func (s ShippingStatus) Valid() bool {
	for _, v := range ShippingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Order struct {
	ID             string         `json:"id"`
	BuyerID        string         `json:"buyerId"`
	SellerID       string         `json:"sellerId"`
	ItemID         string         `json:"itemId"`
	ShippingStatus ShippingStatus `json:"shippingStatus"`
	Data           *string        `json:"data"`
}

type NewOrder struct {
	BuyerID        string         `json:"buyerId"`
	SellerID       string         `json:"sellerId"`
	ItemID         string         `json:"itemId"`
	ShippingStatus ShippingStatus `json:"shippingStatus"`
	Data           *string        `json:"data"`
}
