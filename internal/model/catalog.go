package model

// ExamCatalogItemDTO mirrors a backend catalog row.
type ExamCatalogItemDTO struct {
	ID            string `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	CategoryID    string `db:"category_id" json:"category_id"`
	CategoryTitle string `db:"category_title" json:"category_title"`
	PriceCents    int64  `db:"price_cents" json:"price_cents"`
}

// CatalogItem is a billable exam type with price in BRL units.
type CatalogItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"category_id"`
}

// CatalogSection groups catalog items by category. The title comes
// from the first item seen for the category.
type CatalogSection struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Items []CatalogItem `json:"items"`
}
