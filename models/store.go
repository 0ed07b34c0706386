package models

// Product is an item in the in-app store catalog.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// CartItem is a product reference with a quantity, as submitted at checkout.
type CartItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// Order is a recorded checkout. Payment processing is out of scope; orders
// stay in "pending".
type Order struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"`
	CreatedAt string     `json:"createdAt"`
}

// Catalog returns the static store catalog.
func Catalog() []Product {
	return []Product{
		{ID: "1", Name: "Elo Premium Mensal", Price: 29.90, Category: "Assinaturas", Image: "💎", Description: "Acesso ilimitado a todas as funcionalidades por 1 mês."},
		{ID: "2", Name: "Elo Premium Anual", Price: 299.90, Category: "Assinaturas", Image: "👑", Description: "Economize 20% com o plano anual."},
		{ID: "3", Name: "Pacote 100 Créditos", Price: 19.90, Category: "Serviços IA", Image: "🪙", Description: "Créditos para gerar imagens ou mensagens especiais."},
		{ID: "4", Name: "Camiseta Elo", Price: 59.90, Category: "Itens Físicos", Image: "👕", Description: "Mostre seu estilo com a camiseta oficial."},
		{ID: "5", Name: "Caneca Elo", Price: 34.90, Category: "Itens Físicos", Image: "☕", Description: "Sua companhia perfeita para o café."},
		{ID: "6", Name: "Boost de Perfil", Price: 9.90, Category: "Serviços IA", Image: "🚀", Description: "Fique em destaque na descoberta por 24h."},
	}
}

// OrderKey builds the KV key for an order record.
func OrderKey(orderID string) string {
	return "order:" + orderID
}
