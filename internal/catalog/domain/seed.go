package domain

// Seed returns the default catalog used when nothing has been persisted
// yet. IDs are fixed so a freshly seeded store is stable across runs.
func Seed() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Professional Chef Knife",
			Description: "Premium German steel chef's knife with perfect balance and razor-sharp edge. Features a full tang construction and ergonomic handle for professional-grade cutting performance.",
			Price:       8999,
			Image:       "https://images.unsplash.com/photo-1584346134479-8c19f353aef7?w=400&h=400&fit=crop",
			Category:    "Cutlery",
		},
		{
			ID:          2,
			Name:        "Wüsthof Classic Chef's Knife",
			Description: "Premium German steel chef's knife with perfect balance and razor-sharp edge. Features a full tang construction and ergonomic handle for professional-grade cutting performance.",
			Price:       14999,
			Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=400&fit=crop",
			Category:    "Cutlery",
		},
		{
			ID:          3,
			Name:        "Le Creuset Dutch Oven",
			Description: "Enameled cast iron Dutch oven with superior heat retention and even cooking. Perfect for braising, stewing, and slow cooking. Available in multiple colors.",
			Price:       29999,
			Image:       "https://images.unsplash.com/photo-1582735689369-4fe89db7114c?w=400&h=400&fit=crop",
			Category:    "Cookware",
		},
		{
			ID:          4,
			Name:        "KitchenAid Artisan Stand Mixer",
			Description: "Professional stand mixer with 10-speed motor and multiple attachments. Includes dough hook, flat beater, and wire whip. Perfect for baking and food preparation.",
			Price:       37999,
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop",
			Category:    "Appliances",
		},
		{
			ID:          5,
			Name:        "Cuisinart Food Processor",
			Description: "14-cup food processor with multiple blades for chopping, slicing, shredding, and pureeing. Includes work bowl, lid, and feed tube for versatile food preparation.",
			Price:       18999,
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop",
			Category:    "Appliances",
		},
		{
			ID:          6,
			Name:        "OXO Digital Kitchen Scale",
			Description: "11-pound digital kitchen scale with pull-out display and tare function. Features multiple unit measurements and auto-off function for precise weighing.",
			Price:       3499,
			Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=400&fit=crop",
			Category:    "Tools",
		},
		{
			ID:          7,
			Name:        "Silpat Baking Mats Set",
			Description: "Set of 3 non-stick silicone baking mats that replace parchment paper. Heat resistant up to 480°F and dishwasher safe. Perfect for cookies, pastries, and roasting.",
			Price:       2999,
			Image:       "https://images.unsplash.com/photo-1582735689369-4fe89db7114c?w=400&h=400&fit=crop",
			Category:    "Baking",
		},
		{
			ID:          8,
			Name:        "All-Clad Stainless Steel Pan Set",
			Description: "5-piece stainless steel cookware set with aluminum core for even heat distribution. Includes 8-inch and 10-inch fry pans, 2-quart and 3-quart saucepans, and 5-quart Dutch oven.",
			Price:       44999,
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop",
			Category:    "Cookware",
		},
		{
			ID:          9,
			Name:        "Microplane Premium Zester",
			Description: "Premium stainless steel zester with razor-sharp blades for citrus zest, hard cheeses, and chocolate. Ergonomic handle and dishwasher safe design.",
			Price:       1999,
			Image:       "https://images.unsplash.com/photo-1582735689369-4fe89db7114c?w=400&h=400&fit=crop",
			Category:    "Tools",
		},
		{
			ID:          10,
			Name:        "Breville Smart Oven Air Fryer",
			Description: "Convection toaster oven with air fryer function. Features 13 cooking functions, digital display, and large capacity. Perfect for roasting, baking, and air frying.",
			Price:       39999,
			Image:       "https://images.unsplash.com/photo-1582735689369-4fe89db7114c?w=400&h=400&fit=crop",
			Category:    "Appliances",
		},
		{
			ID:          11,
			Name:        "Victorinox Paring Knife Set",
			Description: "Set of 3 high-carbon stainless steel paring knives with ergonomic handles. Perfect for peeling, trimming, and detailed cutting tasks. Dishwasher safe.",
			Price:       3999,
			Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=400&fit=crop",
			Category:    "Cutlery",
		},
		{
			ID:          12,
			Name:        "Nordic Ware Bundt Pan",
			Description: "Classic bundt pan with intricate design for beautiful cakes. Made from heavy-gauge aluminum with non-stick coating. Perfect for pound cakes and coffee cakes.",
			Price:       2499,
			Image:       "https://images.unsplash.com/photo-1584346134479-8c19f353aef7?w=400&h=400&fit=crop",
			Category:    "Baking",
		},
		{
			ID:          13,
			Name:        "Instant Pot Duo 7-in-1",
			Description: "7-in-1 electric pressure cooker with slow cooker, rice cooker, steamer, sauté pan, yogurt maker, and warmer functions. 6-quart capacity with 13 one-touch programs.",
			Price:       8999,
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop",
			Category:    "Appliances",
		},
	}
}
