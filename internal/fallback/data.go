package fallback

import "github.com/villafrance/frontend/internal/domain"

// Bundled content sets, same shape contract as the live payloads.
// Returned fresh on each call so callers can't mutate the bundle.

func Destinations() []domain.Destination {
	return []domain.Destination{
		{
			Id:          "1",
			Name:        "Loire, Vendée, Brittany and Burgundy",
			Description: "The beautiful heart of Central France",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
			Slug:        "loire-vendee-brittany-burgundy",
		},
		{
			Id:          "2",
			Name:        "Dordogne and South-West",
			Description: "The much-loved South-West",
			Image:       "https://images.unsplash.com/photo-1516548043878-4e9a92085ba8?w=800&h=600&fit=crop",
			Slug:        "dordogne-south-west",
		},
		{
			Id:          "3",
			Name:        "Occitanie (inc. Languedoc)",
			Description: "The sun-drenched Mediterranean",
			Image:       "https://images.unsplash.com/photo-1549144511-f099e773c147?w=800&h=600&fit=crop",
			Slug:        "languedoc-occitanie",
		},
		{
			Id:          "4",
			Name:        "Provence, Côte d'Azur and Corsica",
			Description: "Picturesque villages and the French Riviera",
			Image:       "https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=800&h=600&fit=crop",
			Slug:        "provence-cote-d-azur-corsica",
		},
	}
}

func Properties() []domain.Property {
	return []domain.Property{
		{Id: "1", Name: "Maison Beauregard", Bedrooms: 4, Type: "holiday home", Region: "Nouvelle-Aquitaine", Image: "https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800&h=600&fit=crop", Slug: "maison-beauregard"},
		{Id: "2", Name: "Les Bergeries", Bedrooms: 2, Type: "holiday cottage", Region: "Occitanie", Image: "https://images.unsplash.com/photo-1520637836862-4d197d17c13a?w=800&h=600&fit=crop", Slug: "les-bergeries"},
		{Id: "3", Name: "Cluzel Barn Conversion", Bedrooms: 3, Type: "holiday home", Region: "Occitanie", Image: "https://images.unsplash.com/photo-1502672023488-70e25813eb80?w=800&h=600&fit=crop", Slug: "cluzel-barn-conversion"},
		{Id: "4", Name: "Manoir Tilleul", Bedrooms: 5, Type: "holiday home", Region: "Nouvelle-Aquitaine", Image: "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&h=600&fit=crop", Slug: "manoir-tilleul"},
		{Id: "5", Name: "Maison de Benne", Bedrooms: 4, Type: "holiday home", Region: "Occitanie", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&h=600&fit=crop", Slug: "maison-de-benne"},
		{Id: "6", Name: "Maison Temniac", Bedrooms: 2, Type: "holiday home", Region: "Nouvelle-Aquitaine", Image: "https://images.unsplash.com/photo-1582268611958-ebfd161ef9cf?w=800&h=600&fit=crop", Slug: "maison-temniac"},
		{Id: "7", Name: "La Maison de Pernes", Bedrooms: 5, Type: "holiday home", Region: "Provence-Alpes-Côte d'Azur", Image: "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800&h=600&fit=crop", Slug: "la-maison-de-pernes"},
		{Id: "8", Name: "Mas de Pitou", Bedrooms: 3, Type: "rental home", Region: "Provence-Alpes-Côte d'Azur", Image: "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&h=600&fit=crop", Slug: "mas-de-pitou"},
	}
}

func Inspiration() []domain.InspirationCategory {
	return []domain.InspirationCategory{
		{Id: "1", Title: "Perfect for couples", Image: "https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=800&h=600&fit=crop", Slug: "couples"},
		{Id: "2", Title: "Large groups 12+", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&h=600&fit=crop", Slug: "large-groups"},
		{Id: "3", Title: "Short stays", Image: "https://images.unsplash.com/photo-1502672023488-70e25813eb80?w=800&h=600&fit=crop", Slug: "short-breaks"},
		{Id: "4", Title: "Pets considered", Image: "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=800&h=600&fit=crop", Slug: "pet-friendly"},
	}
}

func BlogPosts() []domain.BlogPost {
	return []domain.BlogPost{
		{Id: "1", Title: "The lovely town of Pornic on France's Cote de Jade", Image: "https://images.unsplash.com/photo-1549144511-f099e773c147?w=800&h=600&fit=crop", Slug: "pornic-cote-de-jade"},
		{Id: "2", Title: "Unusual historical places to visit in France", Image: "https://images.unsplash.com/photo-1558618047-b2b89c4a2868?w=800&h=600&fit=crop", Slug: "unusual-historical-places"},
		{Id: "3", Title: "Renting a holiday home is creating lasting memories", Image: "https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=800&h=600&fit=crop", Slug: "lasting-memories"},
		{Id: "4", Title: "Top 10 villas with swimming pool for an unforgettable summer", Image: "https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800&h=600&fit=crop", Slug: "top-10-villas-swimming-pool"},
	}
}

// SpecialOffers has no bundled equivalent: a failed offers fetch simply
// hides the strip, which is why it returns an empty set.
func SpecialOffers() []domain.SpecialOffer {
	return nil
}

func PressLogos() []domain.PressLogo {
	return []domain.PressLogo{
		{Name: "The Sunday Times", Image: "/static/images/press/sunday-times.png"},
		{Name: "The Telegraph", Image: "/static/images/press/telegraph.png"},
		{Name: "The Guardian", Image: "/static/images/press/guardian.png"},
		{Name: "Conde Nast Traveller", Image: "/static/images/press/conde-nast.png"},
	}
}
