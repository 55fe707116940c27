package repositories

import (
	"github.com/lib/pq"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/db_models"
)

// HakodateCatalog returns the fixed tourist-spot catalog. IDs are stable
// slugs referenced by clients; never rename them.
func HakodateCatalog() []db_models.Spot {
	return []db_models.Spot{
		{
			ID:           "goryokaku",
			Name:         "Goryokaku Park & Tower",
			Category:     "Park & Viewpoint",
			Description:  "Star-shaped fort with an observation tower offering panoramic views, especially beautiful during cherry blossom season.",
			Image:        "https://placehold.co/600x400.png",
			DetailsForAI: "Category: Park, Viewpoint. Features: Historical star-shaped fort, observation tower, cherry blossoms, walking paths. Average visit: 2-3 hours.",
			Features:     pq.StringArray{"park", "viewpoint", "historical", "cherry blossoms"},
		},
		{
			ID:           "mount_hakodate",
			Name:         "Mount Hakodate Observatory",
			Category:     "Viewpoint",
			Description:  "Famous for its stunning night view, considered one of the best in Japan, accessible by ropeway.",
			Image:        "https://placehold.co/600x400.png",
			DetailsForAI: "Category: Viewpoint. Features: Night view, ropeway, observation deck. Average visit: 1-2 hours.",
			Features:     pq.StringArray{"viewpoint", "night view", "ropeway"},
		},
		{
			ID:           "kanemori_warehouse",
			Name:         "Kanemori Red Brick Warehouse",
			Category:     "Shopping & Historical",
			Description:  "Charming red brick warehouses along the waterfront, now housing shops, restaurants, and a beer hall.",
			Image:        "https://placehold.co/600x400.png",
			DetailsForAI: "Category: Shopping, Historical. Features: Waterfront, red brick buildings, boutiques, restaurants, souvenirs. Average visit: 2-3 hours.",
			Features:     pq.StringArray{"shopping", "historical", "waterfront"},
		},
		{
			ID:           "hakodate_market",
			Name:         "Hakodate Morning Market",
			Category:     "Market & Food",
			Description:  "Bustling morning market with fresh seafood, local produce, and various eateries. Famous for squid fishing.",
			Image:        "https://placehold.co/600x400.png",
			DetailsForAI: "Category: Market, Food. Features: Fresh seafood, local produce, restaurants, squid fishing. Average visit: 1-2 hours.",
			Features:     pq.StringArray{"market", "food", "seafood"},
		},
		{
			ID:           "motomachi_church",
			Name:         "Motomachi Roman Catholic Church",
			Category:     "Historical & Landmark",
			Description:  "A beautiful Gothic-style church with a distinctive red roof, part of the historic Motomachi area.",
			Image:        "https://placehold.co/600x400.png",
			DetailsForAI: "Category: Historical, Landmark. Features: Gothic architecture, religious site, Motomachi area. Average visit: 30-60 minutes.",
			Features:     pq.StringArray{"historical", "landmark", "church"},
		},
		{
			ID:           "old_public_hall",
			Name:         "Old Public Hall of Hakodate Ward",
			Category:     "Historical & Landmark",
			Description:  "An elegant colonial-style building with stunning architecture and views, offering costume rentals.",
			Image:        "https://placehold.co/600x400.png",
			DetailsForAI: "Category: Historical, Landmark. Features: Colonial architecture, concert hall, costume rental, views. Average visit: 1-1.5 hours.",
			Features:     pq.StringArray{"historical", "landmark", "architecture"},
		},
		{
			ID:           "trappistine_convent",
			Name:         "Trappistine Convent",
			Category:     "Historical & Landmark",
			Description:  "A peaceful and beautiful convent known for its European-style architecture and gardens. Famous for its butter cookies.",
			Image:        "https://placehold.co/600x400.png",
			DetailsForAI: "Category: Historical, Landmark. Features: European architecture, gardens, religious site, gift shop with cookies. Average visit: 1 hour.",
			Features:     pq.StringArray{"historical", "landmark", "gardens"},
		},
		{
			ID:           "yunokawa_onsen",
			Name:         "Yunokawa Onsen",
			Category:     "Onsen Area",
			Description:  "A well-known hot spring resort area in Hakodate, offering various ryokans and public baths.",
			Image:        "https://placehold.co/600x400.png",
			DetailsForAI: "Category: Onsen Area. Features: Hot springs, ryokans, public baths, seaside location. Average visit: Varies (day trip or overnight).",
			Features:     pq.StringArray{"onsen", "hot spring", "relaxation"},
		},
	}
}
