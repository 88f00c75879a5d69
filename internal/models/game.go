package models

// FreeGame is a catalog entry without a price.
type FreeGame struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"urlimage"`
}

// OfficialGame is a paid catalog entry.
type OfficialGame struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"urlimage"`
	Price       float64 `json:"price"`
}
