package services

import "github.com/CPU-commits/Intranet_BDirectorio/models"

// ChipLink reproduces the current filter state with Value removed.
type ChipLink struct {
	Value string `json:"value"`
	URL   string `json:"url"`
}

type Facets struct {
	Instituciones []string `json:"instituciones"`
	Cargos        []string `json:"cargos"`
}

type ListResult struct {
	Usuarios         []models.Usuario `json:"usuarios"`
	Facets           Facets           `json:"facets"`
	Selection        ListSelection    `json:"selection"`
	InstitucionChips []ChipLink       `json:"institucion_chips"`
	CargoChips       []ChipLink       `json:"cargo_chips"`
}
