package order

// CreateOrderRequest is the checkout payload posted to /orders.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	UserID        string `json:"user_id"       example:"user_1718000000000_k3j9x1"`
	Items         []Item `json:"items"`
	CustomerName  string `json:"customerName"  example:"João Silva"`
	CustomerPhone string `json:"customerPhone,omitempty" example:"11999999999"`
	Notes         string `json:"notes,omitempty"         example:"Entregar em: Rua das Flores, 123"`
}
