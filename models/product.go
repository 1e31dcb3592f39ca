package models

import "strings"

// Product mirrors the backend's laptop record. Field names follow the
// backend's JSON contract, camelCase included.
type Product struct {
	IDProduct    int    `json:"idProduct"`
	Brand        int    `json:"brand"`
	BrandName    string `json:"brandName,omitempty"`
	ModelName    string `json:"modelName"`
	CPU          string `json:"cpu"`
	RAM          string `json:"ram"`
	SSD          string `json:"ssd"`
	GPU          string `json:"gpu"`
	Screen       string `json:"screen"`
	Battery      string `json:"battery"`
	Price        int64  `json:"price"`
	Location     string `json:"location"`
	Touchscreen  bool   `json:"touchscreen"`
	Convertible  bool   `json:"convertible"`
	Grade        string `json:"grade"`
	KeyboardLed  bool   `json:"keyboardLed"`
	Numpad       bool   `json:"numpad"`
	FullFunction bool   `json:"fullFunction"`
	Notes        string `json:"notes"`
	ImageURL     string `json:"imageUrl"`
	Warranty     string `json:"warranty"`
	Enabled      bool   `json:"enabled"`
}

// Trimmed returns a copy with every free-text field whitespace-trimmed,
// matching what the admin form sends.
func (p Product) Trimmed() Product {
	p.ModelName = strings.TrimSpace(p.ModelName)
	p.CPU = strings.TrimSpace(p.CPU)
	p.RAM = strings.TrimSpace(p.RAM)
	p.SSD = strings.TrimSpace(p.SSD)
	p.GPU = strings.TrimSpace(p.GPU)
	p.Screen = strings.TrimSpace(p.Screen)
	p.Battery = strings.TrimSpace(p.Battery)
	p.Location = strings.TrimSpace(p.Location)
	p.Grade = strings.TrimSpace(p.Grade)
	p.Notes = strings.TrimSpace(p.Notes)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.Warranty = strings.TrimSpace(p.Warranty)
	return p
}

type Brand struct {
	BrandID   int    `json:"brandId"`
	BrandName string `json:"brandName"`
}

// ProductPage is the backend's Spring-style page envelope. TotalPages is
// authoritative for pager rendering; Content never exceeds Size.
type ProductPage struct {
	Content          []Product `json:"content"`
	TotalPages       int       `json:"totalPages"`
	TotalElements    int64     `json:"totalElements"`
	Size             int       `json:"size"`
	Number           int       `json:"number"`
	NumberOfElements int       `json:"numberOfElements"`
	First            bool      `json:"first"`
	Last             bool      `json:"last"`
	Empty            bool      `json:"empty"`
}

// Pages enumerates zero-based page indexes for pager rendering; TotalPages
// from the envelope is authoritative.
func (p ProductPage) Pages() []int {
	pages := make([]int, p.TotalPages)
	for i := range pages {
		pages[i] = i
	}
	return pages
}
