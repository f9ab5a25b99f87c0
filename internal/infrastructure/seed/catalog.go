// internal/infrastructure/seed/catalog.go
package seed

import "github.com/your-org/storefront/internal/domain/catalog"

// Products returns the static demo catalog. It stands in for a real
// catalog source; the stores never care where the list came from.
func Products() []catalog.Product {
	return []catalog.Product{
		{ID: "p-001", Name: "Wireless Headphones Pro", Description: "Over-ear noise cancelling headphones with 30h battery", Price: 199.99, OriginalPrice: 249.99, Image: "/images/headphones-pro.jpg", Category: "Electronics", Brand: "AudioMax", Rating: 4.7, ReviewCount: 1284, InStock: true, Tags: []string{"audio", "wireless", "sale"}},
		{ID: "p-002", Name: "Smart Watch Series 5", Description: "Fitness tracking smart watch with AMOLED display", Price: 299.00, Image: "/images/smart-watch-5.jpg", Category: "Electronics", Brand: "TechCore", Rating: 4.5, ReviewCount: 892, InStock: true, Tags: []string{"wearable", "fitness"}},
		{ID: "p-003", Name: "Bluetooth Speaker Mini", Description: "Portable waterproof speaker with deep bass", Price: 49.99, OriginalPrice: 69.99, Image: "/images/speaker-mini.jpg", Category: "Electronics", Brand: "AudioMax", Rating: 4.2, ReviewCount: 445, InStock: true, Tags: []string{"audio", "portable", "sale"}},
		{ID: "p-004", Name: "4K Action Camera", Description: "Rugged action camera with image stabilization", Price: 329.99, Image: "/images/action-camera.jpg", Category: "Electronics", Brand: "TechCore", Rating: 4.4, ReviewCount: 367, InStock: false, Tags: []string{"camera", "outdoor"}},
		{ID: "p-005", Name: "Mechanical Keyboard TKL", Description: "Tenkeyless mechanical keyboard with hot-swap switches", Price: 129.00, Image: "/images/keyboard-tkl.jpg", Category: "Electronics", Brand: "KeyForge", Rating: 4.8, ReviewCount: 2103, InStock: true, Tags: []string{"keyboard", "gaming"}},
		{ID: "p-006", Name: "Ergonomic Office Chair", Description: "Adjustable mesh-back chair with lumbar support", Price: 389.00, OriginalPrice: 459.00, Image: "/images/office-chair.jpg", Category: "Furniture", Brand: "ComfortLine", Rating: 4.6, ReviewCount: 734, InStock: true, Tags: []string{"office", "ergonomic", "sale"}},
		{ID: "p-007", Name: "Standing Desk Frame", Description: "Dual-motor height adjustable desk frame", Price: 449.99, Image: "/images/desk-frame.jpg", Category: "Furniture", Brand: "ComfortLine", Rating: 4.5, ReviewCount: 512, InStock: true, Tags: []string{"office", "desk"}},
		{ID: "p-008", Name: "Oak Bookshelf", Description: "Five-shelf solid oak bookcase", Price: 259.00, Image: "/images/bookshelf.jpg", Category: "Furniture", Brand: "WoodWorks", Rating: 4.3, ReviewCount: 198, InStock: true, Tags: []string{"storage", "living-room"}},
		{ID: "p-009", Name: "Bedside Table", Description: "Compact two-drawer bedside table", Price: 89.99, Image: "/images/bedside-table.jpg", Category: "Furniture", Brand: "WoodWorks", Rating: 3.9, ReviewCount: 87, InStock: false, Tags: []string{"bedroom"}},
		{ID: "p-010", Name: "Trail Running Shoes", Description: "Lightweight trail shoes with aggressive grip", Price: 139.95, OriginalPrice: 159.95, Image: "/images/trail-shoes.jpg", Category: "Sports", Brand: "PeakStride", Rating: 4.6, ReviewCount: 1045, InStock: true, Tags: []string{"running", "outdoor", "sale"}},
		{ID: "p-011", Name: "Yoga Mat Premium", Description: "Non-slip 6mm yoga mat with carry strap", Price: 39.00, Image: "/images/yoga-mat.jpg", Category: "Sports", Brand: "ZenFit", Rating: 4.4, ReviewCount: 623, InStock: true, Tags: []string{"yoga", "fitness"}},
		{ID: "p-012", Name: "Adjustable Dumbbell Set", Description: "Pair of 2-24kg quick-adjust dumbbells", Price: 349.00, Image: "/images/dumbbells.jpg", Category: "Sports", Brand: "IronPeak", Rating: 4.7, ReviewCount: 901, InStock: true, Tags: []string{"strength", "home-gym"}},
		{ID: "p-013", Name: "Insulated Water Bottle", Description: "1L vacuum-insulated stainless bottle", Price: 29.95, Image: "/images/water-bottle.jpg", Category: "Sports", Brand: "ZenFit", Rating: 4.1, ReviewCount: 310, InStock: true, Tags: []string{"hydration", "outdoor"}},
		{ID: "p-014", Name: "Cycling Helmet Aero", Description: "Ventilated road helmet with MIPS protection", Price: 119.00, Image: "/images/helmet-aero.jpg", Category: "Sports", Brand: "PeakStride", Rating: 4.5, ReviewCount: 276, InStock: false, Tags: []string{"cycling", "safety"}},
		{ID: "p-015", Name: "Espresso Machine Compact", Description: "15-bar pump espresso machine with steam wand", Price: 229.00, OriginalPrice: 279.00, Image: "/images/espresso-machine.jpg", Category: "Home & Kitchen", Brand: "BrewCraft", Rating: 4.6, ReviewCount: 1532, InStock: true, Tags: []string{"coffee", "kitchen", "sale"}},
		{ID: "p-016", Name: "Cast Iron Skillet 12in", Description: "Pre-seasoned cast iron skillet", Price: 44.99, Image: "/images/skillet.jpg", Category: "Home & Kitchen", Brand: "ChefLine", Rating: 4.8, ReviewCount: 2874, InStock: true, Tags: []string{"cookware"}},
		{ID: "p-017", Name: "Air Purifier Tower", Description: "HEPA air purifier for rooms up to 50sqm", Price: 189.99, Image: "/images/air-purifier.jpg", Category: "Home & Kitchen", Brand: "PureAir", Rating: 4.3, ReviewCount: 658, InStock: true, Tags: []string{"air-quality"}},
		{ID: "p-018", Name: "Chef Knife 8in", Description: "Forged high-carbon steel chef knife", Price: 79.00, Image: "/images/chef-knife.jpg", Category: "Home & Kitchen", Brand: "ChefLine", Rating: 4.9, ReviewCount: 1911, InStock: true, Tags: []string{"cookware", "knives"}},
		{ID: "p-019", Name: "Cold Brew Pitcher", Description: "2L cold brew coffee maker with steel filter", Price: 24.99, Image: "/images/cold-brew.jpg", Category: "Home & Kitchen", Brand: "BrewCraft", Rating: 4.0, ReviewCount: 203, InStock: true, Tags: []string{"coffee"}},
		{ID: "p-020", Name: "Denim Jacket Classic", Description: "Mid-wash denim jacket, regular fit", Price: 89.90, Image: "/images/denim-jacket.jpg", Category: "Clothing", Brand: "UrbanThread", Rating: 4.2, ReviewCount: 419, InStock: true, Tags: []string{"outerwear"}},
		{ID: "p-021", Name: "Merino Wool Sweater", Description: "Crew-neck sweater in extra-fine merino", Price: 119.00, OriginalPrice: 149.00, Image: "/images/merino-sweater.jpg", Category: "Clothing", Brand: "NordKnit", Rating: 4.7, ReviewCount: 587, InStock: true, Tags: []string{"knitwear", "sale"}},
		{ID: "p-022", Name: "Canvas Sneakers", Description: "Low-top canvas sneakers with rubber sole", Price: 54.95, Image: "/images/canvas-sneakers.jpg", Category: "Clothing", Brand: "UrbanThread", Rating: 3.8, ReviewCount: 264, InStock: true, Tags: []string{"shoes", "casual"}},
		{ID: "p-023", Name: "Rain Shell Jacket", Description: "Packable waterproof shell with taped seams", Price: 159.00, Image: "/images/rain-shell.jpg", Category: "Clothing", Brand: "NordKnit", Rating: 4.4, ReviewCount: 332, InStock: false, Tags: []string{"outerwear", "outdoor"}},
		{ID: "p-024", Name: "Leather Belt", Description: "Full-grain leather belt with brass buckle", Price: 39.50, Image: "/images/leather-belt.jpg", Category: "Clothing", Brand: "UrbanThread", Rating: 4.5, ReviewCount: 148, InStock: true, Tags: []string{"accessories"}},
	}
}
