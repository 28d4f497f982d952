package models

// Brand defines a manufacturer label shown in the catalog.
type Brand struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	NameAr  string `json:"nameAr" yaml:"nameAr"`
	Slug    string `json:"slug" yaml:"slug"`
	LogoURL string `json:"logoUrl" yaml:"logoUrl"`
	Color   string `json:"color" yaml:"color"`
}
