package response

import (
	"time"

	"comercial_xpto/internal/domain/entities"
)

type ClientResponse struct {
	ID        string    `json:"id"`
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

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Phone:     c.Phone,
		Email:     c.Email,
		Street:    c.Street,
		ZipCode:   c.ZipCode,
		City:      c.City,
		State:     c.State,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromClients(list []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromClient(c))
	}
	return out
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCategories(list []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCategory(c))
	}
	return out
}

type CompanyResponse struct {
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

func FromCompany(c entities.Company) CompanyResponse {
	return CompanyResponse{
		Name:       c.Name,
		CNPJ:       c.CNPJ,
		Phone:      c.Phone,
		Street:     c.Street,
		Number:     c.Number,
		Complement: c.Complement,
		District:   c.District,
		City:       c.City,
		State:      c.State,
		ZipCode:    c.ZipCode,
		UpdatedAt:  c.UpdatedAt,
	}
}

type DashboardResponse struct {
	Products   int `json:"products"`
	SKUs       int `json:"skus"`
	Quotes     int `json:"quotes"`
	Clients    int `json:"clients"`
	Categories int `json:"categories"`
}

func FromDashboardCounts(c entities.DashboardCounts) DashboardResponse {
	return DashboardResponse{
		Products:   c.Products,
		SKUs:       c.SKUs,
		Quotes:     c.Quotes,
		Clients:    c.Clients,
		Categories: c.Categories,
	}
}
