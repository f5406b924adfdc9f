package catalog

import (
	"context"
	"fmt"

	"freshvegies/internal/model"
)

// SeedSource serves the built-in demo catalogue.
type SeedSource struct{}

// Load returns a fresh copy of the built-in catalogue.
func (SeedSource) Load(ctx context.Context) ([]model.Shop, error) {
	return DefaultShops(), nil
}

// DefaultShops returns the three demo partner shops.
func DefaultShops() []model.Shop {
	return []model.Shop{
		{
			ID:        "s1",
			Name:      "Gupta Fresh Veggies",
			OwnerName: "Rajesh Gupta",
			Phone:     "+91 98765 43210",
			Location:  "Sector 14, Gurgaon",
			Rating:    4.8,
			Image:     "https://picsum.photos/seed/shop1/600/400",
			IsOpen:    true,
			Offers: []model.ShopOffer{
				{ID: "o1", Title: "Monsoon Special", Description: "20% off on all Leafy Greens", Code: "RAIN20", DiscountPercentage: 20},
				{ID: "o2", Title: "Bulk Buy", Description: "Flat ₹50 off on orders above ₹500", Code: "BULK50", DiscountPercentage: 10},
			},
			Products: shopProducts("s1"),
		},
		{
			ID:        "s2",
			Name:      "Green Farm Organics",
			OwnerName: "Sunita Sharma",
			Phone:     "+91 99887 76655",
			Location:  "Indiranagar, Bangalore",
			Rating:    4.5,
			Image:     "https://picsum.photos/seed/shop2/600/400",
			IsOpen:    true,
			Offers: []model.ShopOffer{
				{ID: "o3", Title: "First Order", Description: "10% off for new customers", Code: "NEW10", DiscountPercentage: 10},
			},
			Products: shopProducts("s2"),
		},
		{
			ID:        "s3",
			Name:      "Daily Mart",
			OwnerName: "Vikram Singh",
			Phone:     "+91 88776 65544",
			Location:  "Andheri West, Mumbai",
			Rating:    4.2,
			Image:     "https://picsum.photos/seed/shop3/600/400",
			IsOpen:    false,
			Offers:    []model.ShopOffer{},
			Products:  shopProducts("s3"),
		},
	}
}

func shopProducts(shopID string) []model.Product {
	id := func(n int) string { return fmt.Sprintf("p%d-%s", n, shopID) }
	image := func(seed string) string { return fmt.Sprintf("https://picsum.photos/seed/%s/300/300", seed) }

	return []model.Product{
		{ID: id(1), Name: "Red Tomatoes", Price: 40, Unit: "kg", IsFresh: true, Category: model.CategoryVegetables, Image: image("tomato"), DiscountPrice: model.Float64(35)},
		{ID: id(2), Name: "Fresh Spinach", Price: 20, Unit: "bunch", IsFresh: true, Category: model.CategoryLeafy, Image: image("spinach")},
		{ID: id(3), Name: "Alphonso Mango", Price: 600, Unit: "doz", IsFresh: true, Category: model.CategoryFruits, Image: image("mango"), Description: model.String("Ratnagiri special")},
		{ID: id(4), Name: "Potatoes (New Harvest)", Price: 30, Unit: "kg", IsFresh: false, Category: model.CategoryRoots, Image: image("potato")},
		{ID: id(5), Name: "Broccoli", Price: 120, Unit: "kg", IsFresh: true, Category: model.CategoryExotic, Image: image("broccoli"), DiscountPrice: model.Float64(90)},
		{ID: id(6), Name: "Carrots", Price: 45, Unit: "kg", IsFresh: true, Category: model.CategoryRoots, Image: image("carrot")},
	}
}
