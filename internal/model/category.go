package model

import "strings"

// Category is a marketplace top-level category.
type Category string

const (
	CategoryElectronics    Category = "Electronics"
	CategoryCellPhones     Category = "Cell Phones & Accessories"
	CategoryHomeKitchen    Category = "Home & Kitchen"
	CategoryBooks          Category = "Books"
	CategoryToysGames      Category = "Toys & Games"
	CategorySportsOutdoors Category = "Sports & Outdoors"
	CategoryBeauty         Category = "Beauty & Personal Care"
	CategoryClothing       Category = "Clothing, Shoes & Jewelry"
	CategoryHealth         Category = "Health & Household"
	CategoryOffice         Category = "Office Products"
	CategoryUnknown        Category = "Unknown"
)

// KnownCategories lists every category other than CategoryUnknown.
var KnownCategories = []Category{
	CategoryElectronics,
	CategoryCellPhones,
	CategoryHomeKitchen,
	CategoryBooks,
	CategoryToysGames,
	CategorySportsOutdoors,
	CategoryBeauty,
	CategoryClothing,
	CategoryHealth,
	CategoryOffice,
}

// ParseCategory maps a marketplace label such as "Electronics > Headphones"
// to a Category. Unrecognized labels yield CategoryUnknown.
func ParseCategory(label string) Category {
	head, _, _ := strings.Cut(label, ">")
	head = strings.TrimSpace(head)
	for _, c := range KnownCategories {
		if strings.EqualFold(head, string(c)) {
			return c
		}
	}
	return CategoryUnknown
}
