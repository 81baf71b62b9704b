package entities

import "time"

// Client is a customer record quotes are issued against.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Client struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Street    string    `json:"street,omitempty"`
	ZipCode   string    `json:"zip_code,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category groups products in the catalog.
type Category struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Company is the tenant's own business profile, one document per tenant
// keyed directly by user_id.
type Company struct {
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	CNPJ       string    `json:"cnpj"`
	Phone      string    `json:"phone,omitempty"`
	Street     string    `json:"street,omitempty"`
	Number     string    `json:"number,omitempty"`
	Complement string    `json:"complement,omitempty"`
	District   string    `json:"district,omitempty"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"state,omitempty"`
	ZipCode    string    `json:"zip_code,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DashboardCounts is the per-tenant collection summary shown on the
// admin landing page.
type DashboardCounts struct {
	Products   int `json:"products"`
	SKUs       int `json:"skus"`
	Quotes     int `json:"quotes"`
	Clients    int `json:"clients"`
	Categories int `json:"categories"`
}
