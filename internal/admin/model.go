package admin

import (
	"strings"
	"time"
)

// Client-side item types. The wire format uses "_id" for identifiers and
// expands references to full documents; these types flatten that into what
// the table and form work with, keyed by plain "id".

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Categories  string   `json:"categories"`
	CategoryIDs []string `json:"categoryIds"`
	ImageURL    string   `json:"imageUrl"`
}

type Order struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Products   string   `json:"products"`
	ProductIDs []string `json:"productIds"`
	Total      float64  `json:"total"`
}

// Wire representations as served by the REST API.

type categoryResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type productResponse struct {
	ID          string             `json:"_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	CategoryIds []categoryResponse `json:"categoryIds"`
	ImageURL    string             `json:"imageUrl"`
}

type orderResponse struct {
	ID         string            `json:"_id"`
	Date       time.Time         `json:"date"`
	ProductIds []productResponse `json:"productIds"`
	Total      float64           `json:"total"`
}

func (r categoryResponse) toItem() Category {
	return Category{ID: r.ID, Name: r.Name}
}

func (r productResponse) toItem() Product {
	names := make([]string, 0, len(r.CategoryIds))
	ids := make([]string, 0, len(r.CategoryIds))
	for _, c := range r.CategoryIds {
		names = append(names, c.Name)
		ids = append(ids, c.ID)
	}
	return Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Categories:  strings.Join(names, ", "),
		CategoryIDs: ids,
		ImageURL:    r.ImageURL,
	}
}

func (r orderResponse) toItem() Order {
	names := make([]string, 0, len(r.ProductIds))
	ids := make([]string, 0, len(r.ProductIds))
	for _, p := range r.ProductIds {
		names = append(names, p.Name)
		ids = append(ids, p.ID)
	}
	return Order{
		ID:         r.ID,
		Date:       r.Date.Format(time.RFC3339),
		Products:   strings.Join(names, ", "),
		ProductIDs: ids,
		Total:      r.Total,
	}
}
