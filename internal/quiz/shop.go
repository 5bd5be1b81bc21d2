package quiz

// ThemeDefinition is a purchasable color theme.
type ThemeDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// ShopPack is a purchasable premium question pack.
type ShopPack struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

var ShopThemes = []ThemeDefinition{
	{ID: "forest", Name: "Forest Green", Price: 0, Description: "A natural forest theme (Free)"},
	{ID: "royal", Name: "Royal Purple", Price: 50, Description: "A regal purple theme"},
	{ID: "safari", Name: "Safari Red", Price: 50, Description: "A bold safari adventure theme"},
	{ID: "ocean", Name: "Ocean Blue", Price: 50, Description: "A calming ocean theme"},
	{ID: "sunset", Name: "Sunset Orange", Price: 75, Description: "A warm sunset theme"},
	{ID: "midnight", Name: "Midnight", Price: 100, Description: "A sleek dark theme"},
	{ID: "rainbow", Name: "Rainbow", Price: 150, Description: "A vibrant multicolor theme"},
}

var PremiumPacks = []ShopPack{
	{ID: "dinosaurs", Name: "Dinosaurs", Price: 200, Description: "Journey back in time with prehistoric creatures!"},
	{ID: "ocean-creatures", Name: "Deep Sea", Price: 200, Description: "Explore the mysterious depths of the ocean!"},
	{ID: "endangered", Name: "Endangered Species", Price: 250, Description: "Learn about animals that need our protection"},
	{ID: "australian", Name: "Australian Wildlife", Price: 150, Description: "Discover unique creatures from Down Under!"},
}

// PurchaseTheme debits the theme's catalog price and unlocks it. The
// ledger does not defend against double purchase; callers hide owned items.
func PurchaseTheme(p *UserProgress, themeID string) error {
	for _, t := range ShopThemes {
		if t.ID == themeID {
			return purchase(p, t.Price, &p.UnlockedThemes, themeID)
		}
	}
	return ErrUnknownItem
}

// PurchasePack debits the premium pack's catalog price and unlocks it.
func PurchasePack(p *UserProgress, packID string) error {
	for _, sp := range PremiumPacks {
		if sp.ID == packID {
			return purchase(p, sp.Price, &p.UnlockedPacks, packID)
		}
	}
	return ErrUnknownItem
}

func purchase(p *UserProgress, price int, unlocked *[]string, id string) error {
	if p.Coins < price {
		return ErrInsufficientCoins
	}
	p.Coins -= price
	*unlocked = append(*unlocked, id)
	return nil
}
