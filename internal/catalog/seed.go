package catalog

// Seed returns the restaurant's menu. The catalog is static: items
// change by redeploying, not at runtime (only availability and images
// are mutable, via the admin endpoints).
func Seed() []MenuItem {
	return []MenuItem{
		{
			ID:            "wings-1",
			NameHe:        "כנפיים",
			NameEn:        "Wings",
			DescriptionHe: "9 חתיכות, 2 רטבים",
			DescriptionEn: "9 pieces, 2 sauces",
			Price:         45,
			Category:      CategoryWings,
			ImageURL:      "/assets/menu_items/wings.webp",
			IsAvailable:   true,
		},
		{
			ID:            "tenders-1",
			NameHe:        "טנדרס",
			NameEn:        "Tenders",
			DescriptionHe: "6 חתיכות חזה עוף, 2 רטבים",
			DescriptionEn: "6 chicken fillet pieces, 2 sauces",
			Price:         45,
			Category:      CategoryTenders,
			ImageURL:      "/assets/menu_items/tenders.webp",
			IsAvailable:   true,
		},
		{
			ID:            "sauce-mustard",
			NameHe:        "חרדל ודבש",
			NameEn:        "Mustard and Honey",
			DescriptionHe: "רוטב חרדל ודבש מתוק",
			DescriptionEn: "Sweet mustard and honey sauce",
			Price:         2,
			Category:      CategorySauces,
			ImageURL:      "/assets/menu_items/Sweet_mustard_and_honey_sauce.webp",
			IsAvailable:   true,
		},
		{
			ID:            "sauce-peanut",
			NameHe:        "חמאת בוטנים",
			NameEn:        "Peanut Butter",
			DescriptionHe: "רוטב חמאת בוטנים",
			DescriptionEn: "Peanut butter sauce",
			Price:         2,
			Category:      CategorySauces,
			ImageURL:      "/assets/menu_items/Creamy_peanut_butter_sauce.webp",
			IsAvailable:   true,
		},
		{
			ID:            "sauce-chili",
			NameHe:        "צ'ילי",
			NameEn:        "Chili",
			DescriptionHe: "רוטב צ'ילי",
			DescriptionEn: "Chili sauce",
			Price:         2,
			Category:      CategorySauces,
			ImageURL:      "/assets/menu_items/Traditional_chili_sauce.webp",
			IsAvailable:   true,
		},
		{
			ID:            "sauce-spicy-honey",
			NameHe:        "דבש חריף",
			NameEn:        "Spicy Honey",
			DescriptionHe: "רוטב דבש חריף",
			DescriptionEn: "Spicy Honey sauce",
			Price:         2,
			Category:      CategorySauces,
			ImageURL:      "/assets/menu_items/spicy_honey.webp",
			SpiceLevel:    4,
			IsAvailable:   true,
		},
		{
			ID:            "salad-coleslaw",
			NameHe:        "קולסלאו",
			NameEn:        "Coleslaw",
			DescriptionHe: "קולסלאו",
			DescriptionEn: "Coleslaw",
			Price:         5,
			Category:      CategorySalads,
			ImageURL:      "/assets/menu_items/coleslaw.webp",
			IsAvailable:   true,
		},
		{
			ID:            "drink-cola-zero",
			NameHe:        "קולה זירו",
			NameEn:        "Cola Zero",
			DescriptionHe: "קולה זירו",
			DescriptionEn: "Cola Zero",
			Price:         10,
			Category:      CategoryDrinks,
			ImageURL:      "/assets/menu_items/cola_zero.webp",
			IsAvailable:   true,
		},
		{
			ID:            "drink-fanta",
			NameHe:        "פנטה",
			NameEn:        "Fanta",
			DescriptionHe: "פנטה",
			DescriptionEn: "Fanta",
			Price:         10,
			Category:      CategoryDrinks,
			ImageURL:      "/assets/menu_items/fanta.webp",
			IsAvailable:   true,
		},
		{
			ID:            "drink-sprite-zero",
			NameHe:        "ספרייט זירו",
			NameEn:        "Sprite Zero",
			DescriptionHe: "ספרייט זירו",
			DescriptionEn: "Sprite Zero",
			Price:         10,
			Category:      CategoryDrinks,
			ImageURL:      "/assets/menu_items/sprite_zero.webp",
			IsAvailable:   true,
		},
		{
			ID:            "drink-sprite",
			NameHe:        "ספרייט",
			NameEn:        "Sprite",
			DescriptionHe: "ספרייט",
			DescriptionEn: "Sprite",
			Price:         10,
			Category:      CategoryDrinks,
			ImageURL:      "/assets/menu_items/sprite.webp",
			IsAvailable:   true,
		},
		{
			ID:            "addon-fries",
			NameHe:        "צ'יפס",
			NameEn:        "Fries",
			DescriptionHe: "צ'יפס פריך וטעים",
			DescriptionEn: "Crispy and delicious fries",
			Price:         15,
			Category:      CategoryAddons,
			ImageURL:      "/assets/menu_items/fries.webp",
			IsAvailable:   true,
		},
		{
			ID:            "addon-corndog",
			NameHe:        "קורנדוג",
			NameEn:        "Corndog",
			DescriptionHe: "4 יחידות",
			DescriptionEn: "4 units",
			Price:         30,
			Category:      CategoryAddons,
			ImageURL:      "/assets/menu_items/corndogs.webp",
			IsAvailable:   true,
		},
		{
			ID:            "combo-1",
			NameHe:        "עסקית",
			NameEn:        "Combo Meal",
			DescriptionHe: "טנדרס/כנפיים + צ'יפס + פחית שתייה + סלט",
			DescriptionEn: "Tenders/Wings + Fries + Can Drink + Salad",
			Price:         65,
			Category:      CategoryCombo,
			ImageURL:      "/assets/menu_items/combo.webp",
			IsAvailable:   true,
		},
	}
}
