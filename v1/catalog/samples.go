package catalog

// SampleProducts returns a small demo catalog for seeding fresh deployments
// and smoke-testing search quality by hand.
func SampleProducts() []Product {
	return []Product{
		{
			ProductID:   "SKU-1001",
			Name:        "Trailblazer Running Shoes",
			Description: "Lightweight trail running shoes with a breathable mesh upper, rock plate protection and an aggressive lug pattern for muddy terrain.",
			Category:    "Footwear",
			Price:       129.99,
			Brand:       "Peakform",
			Tags:        []string{"running", "trail", "outdoor", "shoes"},
		},
		{
			ProductID:   "SKU-1002",
			Name:        "Alpine Down Jacket",
			Description: "Warm 800-fill down jacket with a water-repellent shell, packable into its own pocket. Built for cold alpine starts.",
			Category:    "Outerwear",
			Price:       249.0,
			Brand:       "Northcrest",
			Tags:        []string{"jacket", "down", "winter", "hiking"},
		},
		{
			ProductID:   "SKU-1003",
			Name:        "Voyager 40L Backpack",
			Description: "Carry-on sized travel backpack with a laptop sleeve, expandable main compartment and stowable hip belt.",
			Category:    "Bags",
			Price:       159.5,
			Brand:       "Peakform",
			Tags:        []string{"backpack", "travel", "carry-on"},
		},
		{
			ProductID:   "SKU-1004",
			Name:        "Glacier Insulated Bottle",
			Description: "Double-wall vacuum insulated steel bottle, keeps drinks cold for 24 hours or hot for 12. One liter capacity.",
			Category:    "Accessories",
			Price:       34.95,
			Brand:       "Hydropeak",
			Tags:        []string{"bottle", "insulated", "hydration"},
		},
		{
			ProductID:   "SKU-1005",
			Name:        "Basecamp Merino Hoodie",
			Description: "Midweight merino wool hoodie that regulates temperature and resists odor on multi-day trips.",
			Category:    "Apparel",
			Price:       98.0,
			Brand:       "Northcrest",
			Tags:        []string{"merino", "hoodie", "layering"},
		},
	}
}
