package repository

import "github.com/mistore/storefront/internal/models"

// SeedNotifications returns a fresh copy of the notification panel contents.
// Every session gets its own copy so read flags do not leak between visitors.
func SeedNotifications() []models.Notification {
	return []models.Notification{
		{ID: "1", Type: models.NotificationDelivery, Message: "Ваш заказ #12345 отправлен", Time: "5 мин назад", Read: false},
		{ID: "2", Type: models.NotificationOrder, Message: "Заказ #12344 доставлен", Time: "2 часа назад", Read: false},
		{ID: "3", Type: models.NotificationOrder, Message: "Новая акция: скидка 20%", Time: "Вчера", Read: true},
	}
}

// SeedProfile returns the demo account
func SeedProfile() models.Profile {
	return models.Profile{
		Name:     "Иван Петров",
		Email:    "ivan.petrov@example.com",
		Phone:    "+7 (999) 123-45-67",
		Address:  "г. Москва, ул. Примерная, д. 10, кв. 25",
		Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=user",
		Initials: "ИП",
	}
}
