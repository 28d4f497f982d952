package models

// Category groups products on the shop page.
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	NameAr      string `json:"nameAr" yaml:"nameAr"`
	Slug        string `json:"slug" yaml:"slug"`
	Image       string `json:"image" yaml:"image"`
	AccentColor string `json:"accentColor" yaml:"accentColor"`
}
