package initializers

import (
	"log"

	"github.com/sweetdelights/pastry-shop/models"
)

// SeedPastries fills an empty catalog with the standard assortment. It is a
// no-op when any pastry already exists, so restarts never duplicate rows.
func SeedPastries() {
	var count int64
	if err := DB.Model(&models.Pastry{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count pastries: ", err)
	}
	if count > 0 {
		log.Println("Catalog already seeded, skipping.")
		return
	}

	pastries := []models.Pastry{
		{
			Name:        "Chocolate Croissant",
			Description: "Buttery, flaky croissant filled with rich Belgian dark chocolate. Made with premium French butter and artisanal chocolate for an indulgent morning treat.",
			Price:       3.50,
			Category:    "Croissants",
			ImageURL:    "https://images.unsplash.com/photo-1555507036-ab794f4ded6a?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Blueberry Muffin",
			Description: "Moist vanilla muffin bursting with fresh Maine blueberries. Topped with a golden crumb topping and baked to perfection each morning.",
			Price:       2.75,
			Category:    "Muffins",
			ImageURL:    "https://images.unsplash.com/photo-1571115764595-644a1f56a55c?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Apple Danish",
			Description: "Traditional Danish pastry with layers of buttery puff pastry, filled with cinnamon-spiced apple compote and finished with a sweet vanilla glaze.",
			Price:       4.25,
			Category:    "Danish",
			ImageURL:    "https://images.unsplash.com/photo-1509440159596-0249088772ff?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Strawberry Tart",
			Description: "Elegant French pastry featuring a crisp almond tart shell filled with silky vanilla pastry cream and topped with fresh strawberries and apricot glaze.",
			Price:       5.50,
			Category:    "Tarts",
			ImageURL:    "https://images.unsplash.com/photo-1551024601-bec78aea704b?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Almond Croissant",
			Description: "Classic French croissant filled with rich almond cream and topped with sliced almonds and powdered sugar. A bakery favorite since 1985.",
			Price:       4.00,
			Category:    "Croissants",
			ImageURL:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Lemon Eclair",
			Description: "Light choux pastry filled with tangy lemon curd and topped with bright lemon glaze. A refreshing citrus treat perfect for any time of day.",
			Price:       3.75,
			Category:    "Eclairs",
			ImageURL:    "https://images.unsplash.com/photo-1486427944299-d1955d23e34d?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Chocolate Brownie",
			Description: "Decadent fudge brownie made with premium cocoa and studded with toasted walnuts. Rich, dense texture with a crackly top.",
			Price:       3.25,
			Category:    "Brownies",
			ImageURL:    "https://images.unsplash.com/photo-1606890737304-57a1ca8a5b62?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Raspberry Cheesecake",
			Description: "Creamy New York style cheesecake with a graham cracker crust, swirled with fresh raspberry puree and topped with fresh berries.",
			Price:       6.00,
			Category:    "Cheesecakes",
			ImageURL:    "https://images.unsplash.com/photo-1533134242443-d4fd215305ad?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Cinnamon Roll",
			Description: "Soft, pillowy sweet roll filled with brown sugar and cinnamon, topped with house-made cream cheese frosting. Best served warm.",
			Price:       3.00,
			Category:    "Rolls",
			ImageURL:    "https://images.unsplash.com/photo-1509365390234-d5681ebb4062?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Mixed Berry Scone",
			Description: "Traditional British scone loaded with blueberries, raspberries, and blackberries. Served with clotted cream and strawberry jam.",
			Price:       2.95,
			Category:    "Scones",
			ImageURL:    "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Tiramisu Slice",
			Description: "Classic Italian dessert with layers of espresso-soaked ladyfingers and rich mascarpone cream, dusted with cocoa powder.",
			Price:       5.75,
			Category:    "Cakes",
			ImageURL:    "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Pecan Pie Slice",
			Description: "Southern classic with a flaky butter crust filled with rich, gooey pecan filling made with pure maple syrup and toasted pecans.",
			Price:       4.50,
			Category:    "Pies",
			ImageURL:    "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Lemon Tart",
			Description: "Bright and tangy lemon curd in a crisp pastry shell, topped with torched meringue. Made with fresh lemons and organic eggs.",
			Price:       4.95,
			Category:    "Tarts",
			ImageURL:    "https://images.unsplash.com/photo-1519915028121-7d3463d20b13?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "Red Velvet Cupcake",
			Description: "Moist red velvet cake topped with classic cream cheese frosting and a sprinkle of red velvet crumbs. A Southern favorite.",
			Price:       3.75,
			Category:    "Cupcakes",
			ImageURL:    "https://images.unsplash.com/photo-1576618148400-f54bed99fcfd?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
		{
			Name:        "French Macarons",
			Description: "Delicate almond-based cookies with smooth tops and ruffled feet, filled with ganache. Available in vanilla, chocolate, and raspberry flavors.",
			Price:       2.25,
			Category:    "Macarons",
			ImageURL:    "https://images.unsplash.com/photo-1558312657-b2dead66fad7?auto=format&fit=crop&w=1000&q=80",
			Available:   true,
		},
	}

	if err := DB.Create(&pastries).Error; err != nil {
		log.Fatal("Failed to seed pastries: ", err)
	}
	log.Printf("Seeded %d pastries.", len(pastries))
}
