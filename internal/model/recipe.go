package model

type Recipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	PrepInfo     []string `json:"prep_info"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Plating      string   `json:"plating"`
	Image        string   `json:"image,omitempty"`
}
