package models

// State is a Brazilian federative unit as returned by IBGE.
type State struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// City is a municipality as returned by IBGE.
type City struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// CNAEClass is an industry classification class as returned by IBGE.
type CNAEClass struct {
	ID        string `json:"id"`
	Descricao string `json:"descricao"`
}
