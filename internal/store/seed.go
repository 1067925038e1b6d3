package store

import (
	"context"
	"fmt"
	"time"

	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/models"
	"github.com/shopspring/decimal"
)

// SeedCatalog loads the launch catalog. Deals keep their fixed ids so links
// shared before a restart still resolve.
func SeedCatalog(ctx context.Context, db *database.DB) (int, error) {
	deals := seedDeals()
	now := time.Now().UTC()

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		for i := range deals {
			if _, exists := tx.FindDeal(deals[i].ID); exists {
				continue
			}
			d := deals[i]
			d.Active = true
			d.CreatedAt = now
			if err := tx.InsertDeal(&d); err != nil {
				return fmt.Errorf("insert deal %d: %w", d.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}

	return len(deals), nil
}

func seedDeals() []models.Deal {
	return []models.Deal{
		{
			ID: 1, Store: "Pizza Palace", Category: "food", Offer: "50% OFF",
			Description: "Get 50% off on all large pizzas. Valid on dine-in and takeaway.",
			Address: "123 Main Street, Downtown", Lat: 27.4924, Lng: 77.6737, Validity: "Valid until Feb 15, 2026",
			FullDescription: "Enjoy our authentic Italian pizzas with fresh ingredients. This limited-time offer includes all our specialty pizzas including Margherita, Pepperoni, BBQ Chicken, and Vegetarian options. Made with imported cheese and baked in traditional wood-fired ovens for that perfect crispy crust every time.",
			Badge: "hot", Savings: "$15-25", Popularity: 85, Rating: 4.5, PeopleViewed: 342,
			BasePrice: decimal.NewFromInt(50), DiscountPercent: decimal.NewFromInt(50), Stock: 100,
		},
		{
			ID: 2, Store: "TechHub Electronics", Category: "electronics", Offer: "30% OFF Headphones",
			Description: "Premium wireless headphones at 30% discount with noise cancellation.",
			Address: "456 Tech Avenue, City Center", Lat: 27.4984, Lng: 77.6797, Validity: "Valid until Feb 10, 2026",
			FullDescription: "Shop from leading brands including Sony, Bose, and JBL. All headphones come with 1-year warranty and free shipping on orders above $50. Experience studio-quality sound with active noise cancellation technology that seamlessly adapts to your environment.",
			Badge: "trending", Savings: "$40-80", Popularity: 92, Rating: 4.8, PeopleViewed: 578,
			BasePrice: decimal.NewFromInt(120), DiscountPercent: decimal.NewFromInt(30), Stock: 50,
		},
		{
			ID: 3, Store: "Fashion Forward", Category: "clothing", Offer: "Buy 2 Get 1 Free",
			Description: "Purchase any 2 items and get the third absolutely free on winter collection.",
			Address: "789 Style Street, Fashion District", Lat: 27.4864, Lng: 77.6697, Validity: "Valid until Feb 28, 2026",
			FullDescription: "Update your wardrobe with our latest winter collection. Offer includes jackets, sweaters, jeans, and accessories. Mix and match any items from our premium fabrics and trendy designs crafted for every occasion and lifestyle.",
			Badge: "vip", Savings: "$30-60", Popularity: 78, Rating: 4.3, PeopleViewed: 267,
			BasePrice: decimal.NewFromInt(90), DiscountPercent: decimal.NewFromInt(33), Stock: 75,
		},
		{
			ID: 4, Store: "Glow Hair Salon", Category: "services", Offer: "40% OFF Haircuts",
			Description: "Professional haircut and styling at 40% off. Book your appointment now.",
			Address: "321 Beauty Lane, Uptown", Lat: 27.5024, Lng: 77.6837, Validity: "Valid until Feb 20, 2026",
			FullDescription: "Our expert stylists provide personalized consultations and premium hair services. Includes wash, cut, and blow-dry. First-time customers get an additional 10% off. Using only premium salon-grade products for exceptional results.",
			Savings: "$20-35", Popularity: 65, Rating: 4.6, PeopleViewed: 189,
			BasePrice: decimal.NewFromInt(55), DiscountPercent: decimal.NewFromInt(40), Stock: 40,
		},
		{
			ID: 5, Store: "Burger Bros", Category: "food", Offer: "Free Fries & Drink",
			Description: "Free medium fries and drink with any burger combo. Limited time.",
			Address: "555 Food Court, Mall Plaza", Lat: 27.4944, Lng: 77.6657, Validity: "Valid until Feb 12, 2026",
			FullDescription: "Choose from our signature beef, chicken, or veggie burgers. Made with fresh ingredients and served with crispy fries and your choice of beverage. 100% fresh, never frozen patties grilled to perfection on every single order.",
			Badge: "trending", Savings: "$8-12", Popularity: 88, Rating: 4.4, PeopleViewed: 445,
			BasePrice: decimal.NewFromInt(18), DiscountPercent: decimal.NewFromInt(50), Stock: 200,
		},
		{
			ID: 6, Store: "GameZone", Category: "electronics", Offer: "25% OFF Gaming",
			Description: "Get 25% off on all gaming accessories and controllers.",
			Address: "888 Gaming Street, Tech Park", Lat: 27.5004, Lng: 77.6717, Validity: "Valid until Feb 25, 2026",
			FullDescription: "Shop controllers, headsets, keyboards, and mice from top gaming brands. Compatible with PS5, Xbox Series X, and high-end PC setups. Pro-level equipment trusted by competitive esports professionals worldwide.",
			Savings: "$25-75", Popularity: 90, Rating: 4.7, PeopleViewed: 523,
			BasePrice: decimal.NewFromInt(100), DiscountPercent: decimal.NewFromInt(25), Stock: 60,
		},
		{
			ID: 7, Store: "Casual Wear Co", Category: "clothing", Offer: "Flat $20 OFF",
			Description: "Flat $20 discount on purchases above $100. Premium casual wear.",
			Address: "234 Casual Avenue, Shopping Center", Lat: 27.4884, Lng: 77.6777, Validity: "Valid until Feb 18, 2026",
			FullDescription: "Trendy t-shirts, shirts, pants, and dresses. New arrivals added weekly. Comfortable and stylish options for all occasions, made from premium cotton and breathable fabrics that keep you cool all day long.",
			Savings: "$20", Popularity: 70, Rating: 4.2, PeopleViewed: 198,
			BasePrice: decimal.NewFromInt(120), DiscountPercent: decimal.NewFromInt(17), Stock: 80,
		},
		{
			ID: 8, Store: "Spa Serenity", Category: "services", Offer: "50% OFF Massage",
			Description: "Relaxing full-body massage at half price. Perfect for unwinding.",
			Address: "777 Wellness Road, Spa District", Lat: 27.4904, Lng: 77.6817, Validity: "Valid until Feb 22, 2026",
			FullDescription: "Choose from Swedish, deep tissue, or aromatherapy massage. 60-minute sessions by certified therapists in a serene, peaceful environment. Premium essential oils and heated stones included for the ultimate relaxation experience.",
			Badge: "vip", Savings: "$40-60", Popularity: 75, Rating: 4.9, PeopleViewed: 312,
			BasePrice: decimal.NewFromInt(100), DiscountPercent: decimal.NewFromInt(50), Stock: 30,
		},
		{
			ID: 9, Store: "Sushi Express", Category: "food", Offer: "20% OFF Platters",
			Description: "Fresh sushi platters at 20% discount. Perfect for sharing.",
			Address: "999 Sushi Lane, Food Street", Lat: 27.4964, Lng: 77.6677, Validity: "Valid until Feb 14, 2026",
			FullDescription: "Hand-rolled sushi made fresh daily by master chefs. Choose from signature rolls, nigiri, and sashimi platters. Vegetarian options available. Premium-grade fish imported daily from the freshest coastal markets around the world.",
			Savings: "$12-25", Popularity: 82, Rating: 4.6, PeopleViewed: 289,
			BasePrice: decimal.NewFromInt(60), DiscountPercent: decimal.NewFromInt(20), Stock: 90,
		},
		{
			ID: 10, Store: "SmartHome Tech", Category: "electronics", Offer: "35% OFF Smart Bulbs",
			Description: "Smart LED bulbs with app control at 35% off. Transform your home.",
			Address: "444 Innovation Drive, Tech Valley", Lat: 27.5044, Lng: 77.6857, Validity: "Valid until Feb 16, 2026",
			FullDescription: "WiFi-enabled smart bulbs compatible with Alexa and Google Home. Customize 16 million colors, set automated schedules, and control from anywhere. Energy-efficient LED technology that lasts 25x longer than standard bulbs.",
			Badge: "hot", Savings: "$15-30", Popularity: 87, Rating: 4.5, PeopleViewed: 401,
			BasePrice: decimal.NewFromInt(45), DiscountPercent: decimal.NewFromInt(35), Stock: 150,
		},
		{
			ID: 11, Store: "Denim Depot", Category: "clothing", Offer: "40% OFF Jeans",
			Description: "Premium denim jeans at amazing prices. All fits and washes.",
			Address: "666 Denim Street, Fashion Hub", Lat: 27.4824, Lng: 77.6757, Validity: "Valid until Feb 24, 2026",
			FullDescription: "Classic, slim, and relaxed fits in our entire range. High-quality denim that lasts season after season. Multiple washes from light blue to deep black. Imported premium stretch denim engineered for comfort and effortless style.",
			Savings: "$30-50", Popularity: 73, Rating: 4.4, PeopleViewed: 234,
			BasePrice: decimal.NewFromInt(85), DiscountPercent: decimal.NewFromInt(40), Stock: 65,
		},
		{
			ID: 12, Store: "Nail Art Studio", Category: "services", Offer: "Buy 1 Get 1",
			Description: "Get two manicures for the price of one. Bring a friend!",
			Address: "111 Beauty Plaza, Salon Row", Lat: 27.4844, Lng: 77.6877, Validity: "Valid until Feb 11, 2026",
			FullDescription: "Professional nail services including manicure, pedicure, and stunning nail art designs. Wide selection of OPI and Essie polishes. Gel and acrylic options available with expert technicians certified in Korean nail techniques.",
			Badge: "trending", Savings: "$25-35", Popularity: 80, Rating: 4.7, PeopleViewed: 356,
			BasePrice: decimal.NewFromInt(70), DiscountPercent: decimal.NewFromInt(50), Stock: 45,
		},
		{
			ID: 13, Store: "Taco Fiesta", Category: "food", Offer: "Free Guacamole",
			Description: "Free guacamole and chips with any taco order. Authentic Mexican.",
			Address: "222 Fiesta Avenue, Restaurant Row", Lat: 27.4984, Lng: 77.6617, Validity: "Valid until Feb 13, 2026",
			FullDescription: "Authentic tacos made with fresh, hand-selected ingredients. Choose from slow-cooked beef, marinated chicken, fresh fish, or vibrant vegetarian options. Handmade corn tortillas rolled daily with our legendary 7-salsa fresh bar.",
			Savings: "$6-10", Popularity: 86, Rating: 4.5, PeopleViewed: 412,
			BasePrice: decimal.NewFromInt(22), DiscountPercent: decimal.NewFromInt(30), Stock: 180,
		},
		{
			ID: 14, Store: "Camera Corner", Category: "electronics", Offer: "15% OFF Cameras",
			Description: "Digital cameras and accessories at special prices.",
			Address: "333 Photo Street, Electronics Mall", Lat: 27.5064, Lng: 77.6797, Validity: "Valid until Feb 26, 2026",
			FullDescription: "DSLR and mirrorless cameras from Canon, Nikon, and Sony. Professional lenses, carbon fiber tripods, and premium camera bags at bundled prices. In-store photography workshops included with every purchase over $200.",
			Savings: "$50-150", Popularity: 68, Rating: 4.3, PeopleViewed: 176,
			BasePrice: decimal.NewFromInt(350), DiscountPercent: decimal.NewFromInt(15), Stock: 25,
		},
		{
			ID: 15, Store: "Shoe Haven", Category: "clothing", Offer: "30% OFF Sneakers",
			Description: "Latest sneaker collection at 30% discount. Limited stock.",
			Address: "888 Footwear Lane, Shoe District", Lat: 27.4804, Lng: 77.6637, Validity: "Valid until Feb 19, 2026",
			FullDescription: "Athletic and casual sneakers from Nike, Adidas, and New Balance. Various sizes and colorways available including limited edition releases and exclusive colorways not found anywhere else. Perfect for running or everyday streetwear.",
			Badge: "hot", Savings: "$40-80", Popularity: 91, Rating: 4.6, PeopleViewed: 534,
			BasePrice: decimal.NewFromInt(130), DiscountPercent: decimal.NewFromInt(30), Stock: 55,
		},
		{
			ID: 16, Store: "Fitness First Gym", Category: "services", Offer: "First Month Free",
			Description: "Sign up for a year and get your first month free. Premium gym.",
			Address: "555 Fitness Boulevard, Health Zone", Lat: 27.5084, Lng: 77.6897, Validity: "Valid until Feb 29, 2026",
			FullDescription: "State-of-the-art equipment, certified personal trainers, group fitness classes, and luxury sauna. Open 24/7 with full locker rooms, secure parking, and an Olympic-size pool. Nutrition counseling and meal planning included with annual membership.",
			Badge: "vip", Savings: "$80", Popularity: 79, Rating: 4.8, PeopleViewed: 298,
			BasePrice: decimal.NewFromInt(160), DiscountPercent: decimal.NewFromInt(50), Stock: 20,
		},
		{
			ID: 17, Store: "Coffee Culture", Category: "food", Offer: "Buy 3 Get 1 Free",
			Description: "Buy three coffees and get the fourth free. Premium artisan coffee.",
			Address: "777 Brew Street, Café Corner", Lat: 27.4924, Lng: 77.6597, Validity: "Valid until Feb 17, 2026",
			FullDescription: "Specialty coffee drinks crafted by expert baristas. Choose from single-origin espresso, velvety cappuccino, smooth latte, and refreshing cold brew. Freshly roasted beans sourced from sustainable farms across Ethiopia and Colombia.",
			Savings: "$5-8", Popularity: 84, Rating: 4.7, PeopleViewed: 467,
			BasePrice: decimal.NewFromInt(16), DiscountPercent: decimal.NewFromInt(25), Stock: 300,
		},
		{
			ID: 18, Store: "Mobile Mania", Category: "electronics", Offer: "Trade-In Bonus",
			Description: "Extra $100 trade-in value on your old phone. Upgrade today!",
			Address: "999 Mobile Plaza, Phone Market", Lat: 27.5104, Lng: 77.6737, Validity: "Valid until Feb 21, 2026",
			FullDescription: "Latest smartphones from Apple, Samsung, and Google Pixel. Free premium screen protector and case with every purchase. Extended 3-year warranty available. Certified technicians handle the entire trade-in and activation process on-site for you.",
			Badge: "trending", Savings: "$100+", Popularity: 93, Rating: 4.6, PeopleViewed: 612,
			BasePrice: decimal.NewFromInt(800), DiscountPercent: decimal.NewFromInt(12), Stock: 15,
		},
		{
			ID: 19, Store: "Kids Fashion", Category: "clothing", Offer: "50% OFF Clearance",
			Description: "End of season clearance - 50% off on all kids clothing.",
			Address: "444 Children Lane, Family Mall", Lat: 27.4784, Lng: 77.6917, Validity: "Valid until Feb 23, 2026",
			FullDescription: "Quality children's clothing including vibrant shirts, pants, playful dresses, and warm jackets. Hypoallergenic fabrics safe for sensitive skin. Sizes newborn to 14 years. New season arrivals also 20% off when you buy clearance items.",
			Savings: "$20-40", Popularity: 72, Rating: 4.4, PeopleViewed: 223,
			BasePrice: decimal.NewFromInt(65), DiscountPercent: decimal.NewFromInt(50), Stock: 110,
		},
		{
			ID: 20, Store: "Auto Care Plus", Category: "services", Offer: "Free Oil Change",
			Description: "Free oil change with any service package. Keep your car running smooth.",
			Address: "123 Auto Street, Service Center", Lat: 27.5124, Lng: 77.6677, Validity: "Valid until Feb 27, 2026",
			FullDescription: "Professional car maintenance by ASE-certified mechanics. Quality OEM and aftermarket parts with full warranty. Quick turnaround - most services completed same day. Complete 150-point vehicle inspection included with every visit.",
			Savings: "$35-50", Popularity: 76, Rating: 4.5, PeopleViewed: 287,
			BasePrice: decimal.NewFromInt(90), DiscountPercent: decimal.NewFromInt(40), Stock: 35,
		},
	}
}
