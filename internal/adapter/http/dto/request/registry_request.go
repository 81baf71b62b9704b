package request

import (
	"comercial_xpto/internal/domain/entities"
)

type ClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Street   string `json:"street"`
	ZipCode  string `json:"zip_code"`
	City     string `json:"city"`
	State    string `json:"state"`
}

func (r ClientRequest) ToClient(id string) entities.Client {
	return entities.Client{
		ID:       id,
		Name:     r.Name,
		Document: r.Document,
		Phone:    r.Phone,
		Email:    r.Email,
		Street:   r.Street,
		ZipCode:  r.ZipCode,
		City:     r.City,
		State:    r.State,
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r CategoryRequest) ToCategory(id string) entities.Category {
	return entities.Category{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
	}
}

type CompanyRequest struct {
	Name       string `json:"name" binding:"required"`
	CNPJ       string `json:"cnpj" binding:"required"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

func (r CompanyRequest) ToCompany() entities.Company {
	return entities.Company{
		Name:       r.Name,
		CNPJ:       r.CNPJ,
		Phone:      r.Phone,
		Street:     r.Street,
		Number:     r.Number,
		Complement: r.Complement,
		District:   r.District,
		City:       r.City,
		State:      r.State,
		ZipCode:    r.ZipCode,
	}
}
