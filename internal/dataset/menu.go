package dataset

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Menu categories and the lookup tables the restaurant demo cycles through.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	Categories        = Pool{"Hamburguesas", "Pizzas", "Bebidas", "Postres", "Ensaladas"}
	SpecialCategories = Pool{"Hamburguesas", "Pizzas", "Postres"}
	PortionSizes      = Pool{"Individual", "Mediana", "Familiar"}
	SpiceLevels       = Pool{"Nulo", "Suave", "Medio", "Fuerte"}
	baseNames         = Pool{
		"Clásica", "Doble Queso", "BBQ", "Veggie", "Napolitana",
		"Cuatro Quesos", "Pepperoni", "Margarita", "Cola", "Limonada",
		"Cerveza Artesanal", "Brownie", "Tiramisú", "Ensalada César", "Ensalada Mixta",
	}
)

// Category names referenced by the pricing and nutrition rules.
const (
	CategoryBurgers  = "Hamburguesas"
	CategoryPizzas   = "Pizzas"
	CategoryDrinks   = "Bebidas"
	CategoryDesserts = "Postres"
	CategorySalads   = "Ensaladas"
)

// SpecialThreshold is the last regular ordinal; items past it are the
// "specials of the day" with their own naming and pricing.
const SpecialThreshold = 60

const specialDescription = "Producto especial agregado manualmente"

// MenuItem is one row of the restaurant menu demo.
type MenuItem struct {
	ID                int     `json:"id"                yaml:"id"`
	Name              string  `json:"name"              yaml:"name"`
	Category          string  `json:"category"          yaml:"category"`
	Price             float64 `json:"price"             yaml:"price"`
	Stock             int     `json:"stock"             yaml:"stock"`
	OnOffer           bool    `json:"onOffer"           yaml:"on_offer"`
	Rating            int     `json:"rating"            yaml:"rating"`
	Calories          int     `json:"calories"          yaml:"calories"`
	Description       string  `json:"description"       yaml:"description"`
	PortionSize       string  `json:"portionSize"       yaml:"portion_size"`
	PrepMinutes       int     `json:"prepMinutes"       yaml:"prep_minutes"`
	Vegan             bool    `json:"vegan"             yaml:"vegan"`
	GlutenFree        bool    `json:"glutenFree"        yaml:"gluten_free"`
	SpiceLevel        string  `json:"spiceLevel"        yaml:"spice_level"`
	ServedCold        bool    `json:"servedCold"        yaml:"served_cold"`
	Protein           int     `json:"protein"           yaml:"protein"`
	Fat               int     `json:"fat"               yaml:"fat"`
	Carbs             int     `json:"carbs"             yaml:"carbs"`
	Sugar             int     `json:"sugar"             yaml:"sugar"`
	Sodium            int     `json:"sodium"            yaml:"sodium"`
	Popularity        int     `json:"popularity"        yaml:"popularity"`
	SKU               string  `json:"sku"               yaml:"sku"`
	DeliveryAvailable bool    `json:"deliveryAvailable" yaml:"delivery_available"`
}

// IsSpecial reports whether the item belongs to the specials branch.
func (m MenuItem) IsSpecial() bool {
	return m.ID > SpecialThreshold
}

// Menu generates n menu items with ordinals 1..n.
func Menu(n int) []MenuItem {
	return Generate(n, func(index int) MenuItem {
		return menuItem(index + 1)
	})
}

//nolint:funlen // One assignment per field; splitting it obscures the rules.
func menuItem(i int) MenuItem {
	special := i > SpecialThreshold

	category := Categories.At(i)
	name := fmt.Sprintf("%s %s #%d", singular(category), baseNames.At(i), i)
	if special {
		name = fmt.Sprintf("Especial del día #%d", i)
		category = SpecialCategories.At(i)
	}

	description := specialDescription
	if !special {
		description = fmt.Sprintf("Deliciosa %s con ingredientes frescos.", name)
	}

	popularity := 1 + i%5
	sku := fmt.Sprintf("SKU-%04d", i)
	if special {
		popularity = 5
		sku = fmt.Sprintf("SKU-EX-%d", i)
	}

	return MenuItem{
		ID:                i,
		Name:              name,
		Category:          category,
		Price:             price(i, category, special),
		Stock:             5 + (i*3)%40,
		OnOffer:           i%4 == 0 || special,
		Rating:            3 + i%3,
		Calories:          calories(i, category),
		Description:       description,
		PortionSize:       PortionSizes.At(i),
		PrepMinutes:       10 + i%25,
		Vegan:             category == CategorySalads && i%2 == 0,
		GlutenFree:        category == CategorySalads || category == CategoryDrinks,
		SpiceLevel:        SpiceLevels.At(i),
		ServedCold:        category == CategoryDrinks || category == CategorySalads || category == CategoryDesserts,
		Protein:           5 + i%15,
		Fat:               3 + i%20,
		Carbs:             10 + i%40,
		Sugar:             sugar(i, category),
		Sodium:            200 + i%300,
		Popularity:        popularity,
		SKU:               sku,
		DeliveryAvailable: i%3 != 0 || special,
	}
}

func price(i int, category string, special bool) float64 {
	var p float64
	switch {
	case special:
		p = float64(9 + i%6)
	case category == CategoryDrinks:
		p = 2 + float64(i%5)*0.5
	case category == CategoryDesserts:
		p = float64(3 + i%4)
	case category == CategorySalads:
		p = float64(6 + i%3)
	default:
		p = float64(8 + i%6)
	}
	return math.Round(p*100) / 100
}

func calories(i int, category string) int {
	switch category {
	case CategorySalads:
		return 200 + i%80
	case CategoryDrinks:
		return 80 + i%60
	default:
		return 450 + i%250
	}
}

func sugar(i int, category string) int {
	if category == CategoryDrinks || category == CategoryDesserts {
		return 15 + i%20
	}
	return 5 + i%10
}

// singular drops the trailing plural letter of a category name.
func singular(category string) string {
	if category == "" {
		return ""
	}
	_, size := utf8.DecodeLastRuneInString(category)
	return category[:len(category)-size]
}
