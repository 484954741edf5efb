package main

import (
	"fmt"
	"log"
	"math"
	"strings"

	"esim4travel/internal/config"
	"esim4travel/internal/database"
)

func main() {
	fmt.Println("🌱 Seeding database with sample data...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.InitializeSchema(); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	// Clear existing data so the seeder is repeatable in development
	tables := []string{
		"support_tickets", "order_items", "orders", "testimonials", "faq_items",
		"promo_codes", "packages", "regional_packages", "destinations", "regions", "customers",
	}
	for _, table := range tables {
		if _, err := db.DB.Exec("DELETE FROM " + table); err != nil {
			log.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}
	fmt.Println("Cleared existing data")

	// Seed regions
	fmt.Println("Seeding regions...")
	regions := []struct {
		Name         string
		Slug         string
		Description  string
		DisplayOrder int
	}{
		{"Europe", "europe", "European countries", 1},
		{"Asia Pacific", "asia-pacific", "Asian and Pacific countries", 2},
		{"North America", "north-america", "North American countries", 3},
		{"South America", "south-america", "South American countries", 4},
		{"Africa", "africa", "African countries", 5},
		{"Middle East", "middle-east", "Middle Eastern countries", 6},
		{"Oceania", "oceania", "Oceania countries", 7},
	}

	regionIDs := make(map[string]int)
	for _, r := range regions {
		var id int
		err := db.DB.QueryRow(`
			INSERT INTO regions (name, slug, description, display_order)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			r.Name, r.Slug, r.Description, r.DisplayOrder).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to seed region %s: %v", r.Name, err)
		}
		regionIDs[r.Slug] = id
	}
	fmt.Printf("✅ Seeded %d regions\n", len(regions))

	// Seed destinations
	fmt.Println("Seeding destinations...")
	destinations := []struct {
		Region      string
		Name        string
		Slug        string
		CountryCode string
		Flag        string
		IsPopular   bool
	}{
		// Europe
		{"europe", "United Kingdom", "united-kingdom", "GB", "🇬🇧", true},
		{"europe", "France", "france", "FR", "🇫🇷", true},
		{"europe", "Germany", "germany", "DE", "🇩🇪", true},
		{"europe", "Spain", "spain", "ES", "🇪🇸", true},
		{"europe", "Italy", "italy", "IT", "🇮🇹", true},
		{"europe", "Netherlands", "netherlands", "NL", "🇳🇱", false},
		{"europe", "Switzerland", "switzerland", "CH", "🇨🇭", false},
		{"europe", "Portugal", "portugal", "PT", "🇵🇹", false},
		{"europe", "Greece", "greece", "GR", "🇬🇷", false},
		{"europe", "Austria", "austria", "AT", "🇦🇹", false},
		{"europe", "Belgium", "belgium", "BE", "🇧🇪", false},
		{"europe", "Poland", "poland", "PL", "🇵🇱", false},
		{"europe", "Czech Republic", "czech-republic", "CZ", "🇨🇿", false},
		{"europe", "Ireland", "ireland", "IE", "🇮🇪", false},
		{"europe", "Denmark", "denmark", "DK", "🇩🇰", false},
		{"europe", "Sweden", "sweden", "SE", "🇸🇪", false},
		{"europe", "Norway", "norway", "NO", "🇳🇴", false},
		{"europe", "Finland", "finland", "FI", "🇫🇮", false},
		// Asia Pacific
		{"asia-pacific", "Japan", "japan", "JP", "🇯🇵", true},
		{"asia-pacific", "South Korea", "south-korea", "KR", "🇰🇷", true},
		{"asia-pacific", "Thailand", "thailand", "TH", "🇹🇭", true},
		{"asia-pacific", "Singapore", "singapore", "SG", "🇸🇬", false},
		{"asia-pacific", "China", "china", "CN", "🇨🇳", false},
		{"asia-pacific", "Hong Kong", "hong-kong", "HK", "🇭🇰", false},
		{"asia-pacific", "Taiwan", "taiwan", "TW", "🇹🇼", false},
		{"asia-pacific", "Vietnam", "vietnam", "VN", "🇻🇳", false},
		{"asia-pacific", "Indonesia", "indonesia", "ID", "🇮🇩", false},
		{"asia-pacific", "Malaysia", "malaysia", "MY", "🇲🇾", false},
		{"asia-pacific", "Philippines", "philippines", "PH", "🇵🇭", false},
		{"asia-pacific", "India", "india", "IN", "🇮🇳", false},
		// North America
		{"north-america", "United States", "united-states", "US", "🇺🇸", true},
		{"north-america", "Canada", "canada", "CA", "🇨🇦", false},
		{"north-america", "Mexico", "mexico", "MX", "🇲🇽", false},
		// South America
		{"south-america", "Brazil", "brazil", "BR", "🇧🇷", false},
		{"south-america", "Argentina", "argentina", "AR", "🇦🇷", false},
		{"south-america", "Chile", "chile", "CL", "🇨🇱", false},
		{"south-america", "Colombia", "colombia", "CO", "🇨🇴", false},
		{"south-america", "Peru", "peru", "PE", "🇵🇪", false},
		// Africa
		{"africa", "South Africa", "south-africa", "ZA", "🇿🇦", false},
		{"africa", "Egypt", "egypt", "EG", "🇪🇬", false},
		{"africa", "Morocco", "morocco", "MA", "🇲🇦", false},
		{"africa", "Kenya", "kenya", "KE", "🇰🇪", false},
		{"africa", "Nigeria", "nigeria", "NG", "🇳🇬", false},
		// Middle East
		{"middle-east", "United Arab Emirates", "uae", "AE", "🇦🇪", false},
		{"middle-east", "Saudi Arabia", "saudi-arabia", "SA", "🇸🇦", false},
		{"middle-east", "Turkey", "turkey", "TR", "🇹🇷", false},
		{"middle-east", "Israel", "israel", "IL", "🇮🇱", false},
		{"middle-east", "Qatar", "qatar", "QA", "🇶🇦", false},
		// Oceania
		{"oceania", "Australia", "australia", "AU", "🇦🇺", true},
		{"oceania", "New Zealand", "new-zealand", "NZ", "🇳🇿", false},
		{"oceania", "Fiji", "fiji", "FJ", "🇫🇯", false},
	}

	destinationIDs := make(map[string]int)
	for _, d := range destinations {
		var id int
		err := db.DB.QueryRow(`
			INSERT INTO destinations (region_id, name, slug, country_code, flag_emoji, is_popular, coverage_quality)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			regionIDs[d.Region], d.Name, d.Slug, d.CountryCode, d.Flag, d.IsPopular, 4).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to seed destination %s: %v", d.Name, err)
		}
		destinationIDs[d.Slug] = id
	}
	fmt.Printf("✅ Seeded %d destinations\n", len(destinations))

	// Seed packages
	fmt.Println("Seeding packages...")
	packageTemplates := []struct {
		DataAmount      string
		ValidityDays    int
		PriceMultiplier float64
		IsPopular       bool
		NetworkType     string
	}{
		{"1", 7, 1.0, false, "4G"},
		{"3", 15, 2.0, false, "4G"},
		{"5", 30, 3.0, true, "4G"},
		{"10", 30, 5.0, false, "5G"},
		{"Unlimited", 30, 8.0, false, "5G"},
	}

	basePrices := map[string]float64{
		"united-states":  4.99,
		"japan":          5.99,
		"united-kingdom": 4.99,
		"thailand":       3.99,
		"france":         4.99,
		"australia":      5.99,
		"germany":        4.99,
		"south-korea":    5.99,
		"spain":          4.49,
		"italy":          4.49,
	}

	packageCount := 0
	for _, d := range destinations {
		basePrice, ok := basePrices[d.Slug]
		if !ok {
			basePrice = 4.99
		}

		for _, tpl := range packageTemplates {
			price := math.Round(basePrice*tpl.PriceMultiplier*100) / 100

			name := fmt.Sprintf("%sGB / %d days", tpl.DataAmount, tpl.ValidityDays)
			dataUnit := "GB"
			if tpl.DataAmount == "Unlimited" {
				name = fmt.Sprintf("Unlimited / %d days", tpl.ValidityDays)
				dataUnit = "Unlimited"
			}

			_, err := db.DB.Exec(`
				INSERT INTO packages (destination_id, name, data_amount, data_unit, validity_days, price_usd, is_popular, network_type, tethering_allowed)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)`,
				destinationIDs[d.Slug], name, tpl.DataAmount, dataUnit, tpl.ValidityDays, price, tpl.IsPopular, tpl.NetworkType)
			if err != nil {
				log.Fatalf("Failed to seed package for %s: %v", d.Name, err)
			}
			packageCount++
		}
	}
	fmt.Printf("✅ Seeded %d packages\n", packageCount)

	// Seed regional packages
	fmt.Println("Seeding regional packages...")
	type regionalTier struct {
		DataAmount   string
		ValidityDays int
		PriceUSD     float64
	}
	regionalPackages := []struct {
		Name        string
		Slug        string
		Description string
		Countries   string
		Tiers       []regionalTier
	}{
		{
			Name:        "Europe 39",
			Slug:        "europe-39",
			Description: "Covers all EU countries plus UK, Switzerland, and Norway",
			Countries:   `["UK","France","Germany","Spain","Italy","Netherlands","Switzerland","Portugal","Greece","Austria","Belgium","Poland","Czech Republic","Ireland","Denmark","Sweden","Norway","Finland","and 21 more"]`,
			Tiers: []regionalTier{
				{"3GB", 15, 12.99},
				{"5GB", 30, 19.99},
				{"10GB", 30, 29.99},
				{"Unlimited", 30, 49.99},
			},
		},
		{
			Name:        "Asia 15",
			Slug:        "asia-15",
			Description: "Covers major Asian destinations",
			Countries:   `["Japan","South Korea","Thailand","Singapore","Hong Kong","Taiwan","Vietnam","Indonesia","Malaysia","Philippines","and 5 more"]`,
			Tiers: []regionalTier{
				{"3GB", 15, 14.99},
				{"5GB", 30, 24.99},
				{"10GB", 30, 39.99},
			},
		},
	}

	regionalCount := 0
	for _, rp := range regionalPackages {
		for _, tier := range rp.Tiers {
			slug := fmt.Sprintf("%s-%s", rp.Slug, strings.ToLower(tier.DataAmount))
			_, err := db.DB.Exec(`
				INSERT INTO regional_packages (name, slug, description, countries_included, data_amount, validity_days, price_usd)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				rp.Name, slug, rp.Description, rp.Countries, tier.DataAmount, tier.ValidityDays, tier.PriceUSD)
			if err != nil {
				log.Fatalf("Failed to seed regional package %s: %v", slug, err)
			}
			regionalCount++
		}
	}
	fmt.Printf("✅ Seeded %d regional packages\n", regionalCount)

	// Seed promo codes
	fmt.Println("Seeding promo codes...")
	_, err = db.DB.Exec(`
		INSERT INTO promo_codes (code, discount_type, discount_value, min_order_amount, is_active, valid_until)
		VALUES
			('WELCOME10', 'percent', 10, 0, true, NULL),
			('TRAVEL20', 'fixed', 5, 25, true, NULL),
			('SUMMER2024', 'percent', 15, 0, false, '2024-09-01')`)
	if err != nil {
		log.Fatal("Failed to seed promo codes:", err)
	}
	fmt.Println("✅ Seeded 3 promo codes")

	// Seed testimonials
	fmt.Println("Seeding testimonials...")
	testimonials := []struct {
		CustomerName string
		Country      string
		Rating       int
		ReviewText   string
		Destination  string
		IsFeatured   bool
	}{
		{"Sarah M.", "Canada", 5, "Used this in Japan for 2 weeks. Flawless connection everywhere I went!", "Japan", true},
		{"James L.", "UK", 5, "So much easier than getting a local SIM. Set up in 5 minutes at the airport.", "Thailand", true},
		{"Maria G.", "Spain", 5, "Great prices and excellent coverage across Europe. Highly recommend!", "France", true},
		{"David K.", "USA", 5, "Perfect for my business trip to Germany. Fast 5G speeds and reliable.", "Germany", true},
		{"Linda W.", "Australia", 4, "Good service overall. Had minor issues in remote areas but great in cities.", "Italy", false},
		{"Alex P.", "Singapore", 5, "Used the regional Europe package for my multi-country trip. Worked perfectly!", "Europe", true},
	}
	for _, t := range testimonials {
		_, err := db.DB.Exec(`
			INSERT INTO testimonials (customer_name, country, rating, review_text, destination_visited, is_featured)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			t.CustomerName, t.Country, t.Rating, t.ReviewText, t.Destination, t.IsFeatured)
		if err != nil {
			log.Fatalf("Failed to seed testimonial from %s: %v", t.CustomerName, err)
		}
	}
	fmt.Printf("✅ Seeded %d testimonials\n", len(testimonials))

	// Seed FAQ items
	fmt.Println("Seeding FAQ items...")
	faqItems := []struct {
		Category     string
		Question     string
		Answer       string
		DisplayOrder int
	}{
		{"general", "What is an eSIM?", "An eSIM (embedded SIM) is a digital SIM that allows you to activate a cellular plan without having to use a physical SIM card. It's built into your device and can be programmed remotely.", 1},
		{"general", "Which devices support eSIM?", "Most newer smartphones support eSIM including iPhone XS and later, Google Pixel 3 and later, Samsung Galaxy S20 and later, and many other devices. Check our compatibility list for details.", 2},
		{"installation", "How do I install the eSIM?", "After purchasing, you'll receive a QR code via email. Go to your device settings, select \"Add Cellular Plan\" (iOS) or \"Add Mobile Network\" (Android), and scan the QR code. The eSIM will be installed automatically.", 1},
		{"general", "Can I use my regular number alongside eSIM?", "Yes! Your device can have both a physical SIM and eSIM active at the same time. You can choose which line to use for calls, texts, and data.", 3},
		{"usage", "What happens when I run out of data?", "When your data runs out, you can purchase a new package or top up. Your eSIM profile will remain on your device for easy reactivation.", 1},
		{"policies", "Do you offer refunds?", "We offer refunds within 7 days if the eSIM hasn't been activated. Once activated, sales are final as the service has been provided.", 1},
		{"usage", "Can I share my data (tethering)?", "Yes, most of our plans support tethering and mobile hotspot functionality. Check the specific plan details for confirmation.", 2},
		{"technical", "How fast is the connection?", "Our eSIMs use the same networks as local carriers, providing 4G LTE and 5G speeds (where available). Speed depends on the local network and coverage in your area.", 1},
	}
	for _, f := range faqItems {
		_, err := db.DB.Exec(`
			INSERT INTO faq_items (category, question, answer, display_order)
			VALUES ($1, $2, $3, $4)`,
			f.Category, f.Question, f.Answer, f.DisplayOrder)
		if err != nil {
			log.Fatalf("Failed to seed FAQ item %q: %v", f.Question, err)
		}
	}
	fmt.Printf("✅ Seeded %d FAQ items\n", len(faqItems))

	fmt.Println("\n✅ Database seeding complete!")
	fmt.Println("Summary:")
	fmt.Printf("- %d regions\n", len(regions))
	fmt.Printf("- %d destinations\n", len(destinations))
	fmt.Printf("- %d packages\n", packageCount)
	fmt.Printf("- %d regional packages\n", regionalCount)
	fmt.Println("- 3 promo codes")
	fmt.Printf("- %d testimonials\n", len(testimonials))
	fmt.Printf("- %d FAQ items\n", len(faqItems))
}
