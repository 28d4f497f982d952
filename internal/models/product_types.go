package models

// Badge is a merchandising tag shown on product cards and used to weight the
// "popular" sort. A product may carry any number of badges.
type Badge string

const (
	BadgeBestseller Badge = "bestseller"
	BadgeNew        Badge = "new"
	BadgeSale       Badge = "sale"
)

// Product is a sellable catalog entry. Brand and Category are embedded copies,
// not references: the catalog is immutable at runtime.
type Product struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	NameAr        string           `json:"nameAr"`
	Description   string           `json:"description"`
	DescriptionAr string           `json:"descriptionAr"`
	Brand         Brand            `json:"brand"`
	Category      Category         `json:"category"`
	Images        []string         `json:"images"`
	Variants      []ProductVariant `json:"variants"`
	Badges        []Badge          `json:"badges"`
	Features      []string         `json:"features"`
	Nutrition     *NutritionalInfo `json:"nutritionalInfo,omitempty"`
	IsActive      bool             `json:"isActive"`
}

// ProductVariant is one purchasable size of a product.
type ProductVariant struct {
	ID             string `json:"id" yaml:"id"`
	Size           string `json:"size" yaml:"size"`
	Price          int64  `json:"price" yaml:"price"`
	CompareAtPrice *int64 `json:"compareAtPrice,omitempty" yaml:"compareAtPrice"`
	SKU            string `json:"sku" yaml:"sku"`
	InStock        bool   `json:"inStock" yaml:"inStock"`
	Weight         string `json:"weight" yaml:"weight"`
}

type NutritionalInfo struct {
	ServingSize string `json:"servingSize" yaml:"servingSize"`
	Calories    int    `json:"calories" yaml:"calories"`
	Protein     string `json:"protein" yaml:"protein"`
	Fat         string `json:"fat" yaml:"fat"`
	Carbs       string `json:"carbs" yaml:"carbs"`
	Sodium      string `json:"sodium" yaml:"sodium"`
}

// MinPrice is the lowest variant price. Price filters and price sorts use it.
func (p Product) MinPrice() int64 {
	if len(p.Variants) == 0 {
		return 0
	}
	lowest := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < lowest {
			lowest = v.Price
		}
	}
	return lowest
}

// Variant looks up a variant of this product by id.
func (p Product) Variant(id string) (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return ProductVariant{}, false
}

// PrimaryImage is the first image, or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

func (p Product) HasBadge(b Badge) bool {
	for _, have := range p.Badges {
		if have == b {
			return true
		}
	}
	return false
}
