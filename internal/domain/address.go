package domain

type Address struct {
	Street     string `json:"logradouro"`
	Number     string `json:"numero,omitempty"`
	Complement string `json:"complemento,omitempty"`
	District   string `json:"bairro"`
	City       string `json:"cidade"`
	State      string `json:"estado"`
	CEP        string `json:"cep"`
	Type       string `json:"tipo_endereco,omitempty"`
	Principal  bool   `json:"is_principal,omitempty"`
}

// CEPLookup é o resultado da consulta ao ViaCEP usado para preencher o
// endereço no cadastro.
type CEPLookup struct {
	CEP      string `json:"cep"`
	Street   string `json:"logradouro"`
	District string `json:"bairro"`
	City     string `json:"localidade"`
	State    string `json:"uf"`
}
