package catalog

import "github.com/rahulsingh558/the-piquant-pan/internal/models"

func foodImage(photo string) string {
	return "https://images.unsplash.com/photo-" + photo + "?auto=format&fit=crop&w=300&q=80"
}

var (
	imgFritters  = foodImage("1563379091339-03246963d9d6")
	imgPotato    = foodImage("1563379926898-05f4575a45d8")
	imgFries     = foodImage("1541592106381-b31e9677c0e5")
	imgCorn      = foodImage("1574943320219-553eb213f72d")
	imgNachos    = foodImage("1571407970349-bc81e7e96d47")
	imgGobi      = foodImage("1459411621453-7b03977f4bfc")
	imgMushroom  = foodImage("1485579148751-308a1fe6b0b5")
	imgPaneer    = foodImage("1565299585323-38d6b0865b47")
	imgEgg       = foodImage("1556909114-f6e7ad7d3136")
	imgChicken   = foodImage("1603360946369-dc9bb6258143")
	imgPrawn     = foodImage("1580959375944-abd7e991f971")
	imgSandwich  = foodImage("1528735602780-2552fd46c7af")
	imgNoodles   = foodImage("1551882547-ff40c63fe5fa")
	imgMaggi     = foodImage("1585032226651-759b368d7246")
	imgPizza     = foodImage("1565299624946-b28f40a0ae38")
	imgBurger    = foodImage("1568901346375-23c9450c58cd")
	imgGravy     = foodImage("1631452180519-c014fe946bc7")
	imgDal       = foodImage("1546833999-b9f581a1996d")
	imgButter    = foodImage("1603894584373-5ac82b2ae398")
	imgParatha   = foodImage("1565299507177-b0ac66763828")
	imgFriedRice = foodImage("1516684732162-798a0062be99")
	imgThali     = foodImage("1512058564366-18510be2db19")
	imgSweet     = foodImage("1563805042-7684c019e1cb")
	imgCoffee    = foodImage("1510707577719-ae7c9b788690")
	imgSalad     = foodImage("1540420828642-fca2c5c18abe")
	imgBakery    = foodImage("1578985545062-69928b1d9587")
)

// seedMenu is the complete printed menu, used to populate an empty admin
// store one time via SeedIfEmpty.
var seedMenu = []models.AdminMenuItem{
	// Snacks
	{ID: 1, Name: "Veg Pakoda", Subtitle: "Crispy fried vegetable fritters", BasePrice: 50, Type: models.TypeVeg, Category: models.CategorySnacks, Image: imgFritters},
	{ID: 2, Name: "Onion Pakoda", Subtitle: "Crispy onion fritters", BasePrice: 50, Type: models.TypeVeg, Category: models.CategorySnacks, Image: imgFritters},
	{ID: 3, Name: "Mirchi Bhajji", Subtitle: "Spicy chili fritters", BasePrice: 50, Type: models.TypeVeg, Category: models.CategorySnacks, Image: imgFritters},
	{ID: 4, Name: "Aloo Chap (2 pcs)", Subtitle: "Potato patties", BasePrice: 50, Type: models.TypeVeg, Category: models.CategorySnacks, Image: imgPotato},
	{ID: 5, Name: "Potato Cheese Balls", Subtitle: "Cheesy potato balls", BasePrice: 99, Type: models.TypeVeg, Category: models.CategorySnacks, Image: imgPotato},
	{ID: 6, Name: "French Fries", Subtitle: "Crispy potato fries", BasePrice: 99, Type: models.TypeVeg, Category: models.CategorySnacks, Image: imgFries},
	{ID: 7, Name: "Crispy Corn", Subtitle: "Crispy fried corn", BasePrice: 200, Type: models.TypeVeg, Category: models.CategorySnacks, Image: imgCorn},
	{ID: 8, Name: "Nachos with Cheese", Subtitle: "Crispy nachos with cheese dip", BasePrice: 250, Type: models.TypeVeg, Category: models.CategorySnacks, Image: imgNachos},
	{ID: 9, Name: "Cheese Stuffed Potato", Subtitle: "Cheese + Corn + Veggies + Paneer + Potato Cup (4 Pcs)", BasePrice: 250, Type: models.TypeVeg, Category: models.CategorySnacks, Image: imgPotato},

	// Starters
	{ID: 10, Name: "Gobi Chilli", Subtitle: "Spicy cauliflower stir-fry", BasePrice: 120, Type: models.TypeVeg, Category: models.CategoryStarters, Image: imgGobi},
	{ID: 11, Name: "Gobi Manchurian", Subtitle: "Indo-Chinese cauliflower", BasePrice: 120, Type: models.TypeVeg, Category: models.CategoryStarters, Image: imgGobi},
	{ID: 12, Name: "Mushroom Pakoda", Subtitle: "Crispy mushroom fritters", BasePrice: 160, Type: models.TypeVeg, Category: models.CategoryStarters, Image: imgMushroom},
	{ID: 13, Name: "Paneer Tikka", Subtitle: "Grilled cottage cheese cubes", BasePrice: 180, Type: models.TypeVeg, Category: models.CategoryStarters, Image: imgPaneer},
	{ID: 14, Name: "Boiled Egg (2 Nos)", Subtitle: "Hard boiled eggs", BasePrice: 40, Type: models.TypeEgg, Category: models.CategoryStarters, Image: imgEgg},
	{ID: 15, Name: "Egg Bhurji", Subtitle: "Spicy scrambled eggs", BasePrice: 80, Type: models.TypeEgg, Category: models.CategoryStarters, Image: imgEgg},
	{ID: 16, Name: "Chicken 65", Subtitle: "Spicy deep-fried chicken", BasePrice: 175, Type: models.TypeNonVeg, Category: models.CategoryStarters, Image: imgChicken},
	{ID: 17, Name: "Chicken Tikka", Subtitle: "Grilled chicken pieces", BasePrice: 225, Type: models.TypeNonVeg, Category: models.CategoryStarters, Image: imgChicken},
	{ID: 18, Name: "Prawn Fry", Subtitle: "Crispy fried prawns", BasePrice: 240, Type: models.TypeNonVeg, Category: models.CategoryStarters, Image: imgPrawn},

	// Sandwiches
	{ID: 19, Name: "Grilled Cheese", Subtitle: "Classic grilled cheese sandwich", BasePrice: 110, Type: models.TypeVeg, Category: models.CategorySandwiches, Image: imgSandwich},
	{ID: 20, Name: "Grilled Paneer Cheese", Subtitle: "Paneer and cheese grilled sandwich", BasePrice: 150, Type: models.TypeVeg, Category: models.CategorySandwiches, Image: imgSandwich},
	{ID: 21, Name: "Grilled Chicken Cheese", Subtitle: "Chicken and cheese grilled sandwich", BasePrice: 160, Type: models.TypeNonVeg, Category: models.CategorySandwiches, Image: imgSandwich},

	// Noodles & Maggi
	{ID: 22, Name: "Veg Noodles", Subtitle: "Vegetable stir-fry noodles", BasePrice: 130, Type: models.TypeVeg, Category: models.CategoryNoodles, Image: imgNoodles},
	{ID: 23, Name: "Egg Noodles", Subtitle: "Noodles with egg", BasePrice: 140, Type: models.TypeEgg, Category: models.CategoryNoodles, Image: imgNoodles},
	{ID: 24, Name: "Chicken Noodles", Subtitle: "Noodles with chicken", BasePrice: 160, Type: models.TypeNonVeg, Category: models.CategoryNoodles, Image: imgNoodles},
	{ID: 25, Name: "Piquant Spl Maggi", Subtitle: "Veggies Paneer Mushroom Corn Cheese Maggi", BasePrice: 120, Type: models.TypeVeg, Category: models.CategoryNoodles, Image: imgMaggi},

	// Pizzas
	{ID: 26, Name: "Cheese Pizza (7\")", Subtitle: "Classic cheese pizza", BasePrice: 150, Type: models.TypeVeg, Category: models.CategoryPizzas, Image: imgPizza},
	{ID: 27, Name: "Chicken Cheese Pizza (7\")", Subtitle: "Chicken and cheese pizza", BasePrice: 180, Type: models.TypeNonVeg, Category: models.CategoryPizzas, Image: imgPizza},

	// Pasta
	{ID: 28, Name: "Cheese Pasta (White Sauce)", Subtitle: "Creamy white sauce pasta", BasePrice: 160, Type: models.TypeVeg, Category: models.CategoryPasta, Image: imgPotato},
	{ID: 29, Name: "Chicken Cheese Pasta (Pink Sauce)", Subtitle: "Pink sauce pasta with chicken", BasePrice: 210, Type: models.TypeNonVeg, Category: models.CategoryPasta, Image: imgPotato},

	// Burgers
	{ID: 30, Name: "Veg Burger", Subtitle: "Vegetable burger", BasePrice: 120, Type: models.TypeVeg, Category: models.CategoryBurgers, Image: imgBurger},
	{ID: 31, Name: "Chicken Burger", Subtitle: "Chicken patty burger", BasePrice: 145, Type: models.TypeNonVeg, Category: models.CategoryBurgers, Image: imgBurger},

	// Gravy
	{ID: 32, Name: "Paneer Butter Masala", Subtitle: "Cottage cheese in rich gravy", BasePrice: 170, Type: models.TypeVeg, Category: models.CategoryGravy, Image: imgGravy},
	{ID: 33, Name: "Dal Makhani", Subtitle: "Creamy black lentil curry", BasePrice: 120, Type: models.TypeVeg, Category: models.CategoryGravy, Image: imgDal},
	{ID: 34, Name: "Chicken Butter Masala", Subtitle: "Chicken in rich buttery gravy", BasePrice: 180, Type: models.TypeNonVeg, Category: models.CategoryGravy, Image: imgButter},
	{ID: 35, Name: "Mutton Curry", Subtitle: "Spicy mutton curry", BasePrice: 270, Type: models.TypeNonVeg, Category: models.CategoryGravy, Image: imgChicken},

	// Roti & Rice
	{ID: 36, Name: "Paratha (Aloo) 2 pcs", Subtitle: "Potato stuffed flatbread", BasePrice: 60, Type: models.TypeVeg, Category: models.CategoryRoti, Image: imgParatha},
	{ID: 37, Name: "Veg Fried Rice", Subtitle: "Fried rice with vegetables", BasePrice: 150, Type: models.TypeVeg, Category: models.CategoryRoti, Image: imgFriedRice},
	{ID: 38, Name: "Chicken Biryani + Raita", Subtitle: "Fragrant rice with chicken", BasePrice: 199, Type: models.TypeNonVeg, Category: models.CategoryRoti, Image: imgFritters},

	// Thali
	{ID: 39, Name: "Veg Deluxe Thali", Subtitle: "Rice + Roti (2) + Dal + Curry + Fry + Salad + Sweet", BasePrice: 160, Type: models.TypeVeg, Category: models.CategoryThali, Image: imgThali},
	{ID: 40, Name: "Chicken Deluxe Thali", Subtitle: "Rice + Roti (2) + Dal + Chicken (2) + Salad + Sweet", BasePrice: 220, Type: models.TypeNonVeg, Category: models.CategoryThali, Image: imgThali},

	// Beverages
	{ID: 41, Name: "Sweet Lassi", Subtitle: "Sweet yogurt drink", BasePrice: 70, Type: models.TypeVeg, Category: models.CategoryBeverages, Image: imgSweet},
	{ID: 42, Name: "Cold Coffee", Subtitle: "Chilled coffee drink", BasePrice: 80, Type: models.TypeVeg, Category: models.CategoryBeverages, Image: imgCoffee},
	{ID: 43, Name: "Cold Coffee with Boba", Subtitle: "Iced coffee with tapioca pearls", BasePrice: 120, Type: models.TypeVeg, Category: models.CategoryBeverages, Image: imgCoffee},

	// Sweets
	{ID: 44, Name: "Gajar Halwa", Subtitle: "Carrot pudding dessert", BasePrice: 120, Type: models.TypeVeg, Category: models.CategorySweets, Image: imgSweet},
	{ID: 45, Name: "Rice Kheer", Subtitle: "Rice pudding dessert", BasePrice: 140, Type: models.TypeVeg, Category: models.CategorySweets, Image: imgSweet},

	// Healthy Food
	{ID: 46, Name: "Piquants Salad", Subtitle: "Special garden salad", BasePrice: 60, Type: models.TypeVeg, Category: models.CategoryHealthy, Image: imgSalad},
	{ID: 47, Name: "Fruit Salad", Subtitle: "Fresh fruit medley", BasePrice: 150, Type: models.TypeVeg, Category: models.CategoryHealthy, Image: imgSalad},

	// Bakery
	{ID: 48, Name: "Chocolate Brownie", Subtitle: "Fudgy chocolate brownie", BasePrice: 90, Type: models.TypeVeg, Category: models.CategoryBakery, Image: imgBakery},
	{ID: 49, Name: "Garlic Bread", Subtitle: "Toasted garlic butter bread", BasePrice: 80, Type: models.TypeVeg, Category: models.CategoryBakery, Image: imgBakery},
}

// SeedMenu returns a copy of the full printed menu.
func SeedMenu() []models.AdminMenuItem {
	out := make([]models.AdminMenuItem, len(seedMenu))
	copy(out, seedMenu)
	return out
}
