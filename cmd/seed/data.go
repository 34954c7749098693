package main

import (
	"github.com/kevinlim605/TechShop/logger"
	"github.com/kevinlim605/TechShop/models"
)

func mustHash(password string) string {
	hash, err := models.HashPassword(password)
	if err != nil {
		logger.L().Fatal("failed to hash seed password")
	}
	return hash
}

func sampleUsers() []models.User {
	return []models.User{
		{Name: "Admin User", Email: "admin@example.com", Password: mustHash("123456"), IsAdmin: true},
		{Name: "John Doe", Email: "john@example.com", Password: mustHash("123456")},
		{Name: "Jane Doe", Email: "jane@example.com", Password: mustHash("123456")},
	}
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			Name:         "Airpods Wireless Bluetooth Headphones",
			Image:        "/images/airpods.jpg",
			Brand:        "Apple",
			Category:     "Electronics",
			Description:  "Bluetooth technology lets you connect it with compatible devices wirelessly.",
			Price:        89.99,
			CountInStock: 10,
		},
		{
			Name:         "iPhone 11 Pro 256GB Memory",
			Image:        "/images/phone.jpg",
			Brand:        "Apple",
			Category:     "Electronics",
			Description:  "Introducing the iPhone 11 Pro. A transformative triple-camera system.",
			Price:        599.99,
			CountInStock: 7,
		},
		{
			Name:         "Cannon EOS 80D DSLR Camera",
			Image:        "/images/camera.jpg",
			Brand:        "Cannon",
			Category:     "Electronics",
			Description:  "Characterized by versatile imaging specs and robust focus.",
			Price:        929.99,
			CountInStock: 5,
		},
		{
			Name:         "Sony Playstation 4 Pro White Version",
			Image:        "/images/playstation.jpg",
			Brand:        "Sony",
			Category:     "Electronics",
			Description:  "The ultimate home entertainment center starts with PlayStation.",
			Price:        399.99,
			CountInStock: 11,
		},
		{
			Name:         "Logitech G-Series Gaming Mouse",
			Image:        "/images/mouse.jpg",
			Brand:        "Logitech",
			Category:     "Electronics",
			Description:  "Get a better handle on your games with this Logitech gaming mouse.",
			Price:        49.99,
			CountInStock: 7,
		},
		{
			Name:         "Amazon Echo Dot 3rd Generation",
			Image:        "/images/alexa.jpg",
			Brand:        "Amazon",
			Category:     "Electronics",
			Description:  "Meet Echo Dot, our most popular smart speaker with a fabric design.",
			Price:        29.99,
			CountInStock: 0,
		},
	}
}
