package main

import (
	"log"
	"time"

	"eats-backend/config"
	httpapi "eats-backend/internal/api/http"
	"eats-backend/internal/auth"
	"eats-backend/internal/mail"
	"eats-backend/internal/service"
	"eats-backend/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	redisClient := config.MustInitRedis()
	defer redisClient.Close()
	cache := storage.NewListingCache(redisClient, 30*time.Second)

	kafkaWriter := config.NewKafkaWriter(config.Getenv("KAFKA_ORDERS_TOPIC", "order-events"))
	defer kafkaWriter.Close()
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	tokens := auth.NewJWTIssuer(config.Getenv("JWT_SECRET", "dev-secret"), 24*time.Hour)
	baseURL := config.Getenv("BASE_URL", "http://localhost:8080")

	accounts := service.NewAccountService(repo, mail.LogMailSender{}, tokens)
	restaurants := service.NewRestaurantService(repo, repo, repo, repo, cache)
	dishes := service.NewDishService(repo, repo)
	orders := service.NewOrderService(repo, repo, repo, publisher, service.DefaultQRGenerator{BaseURL: baseURL})

	authMiddleware := httpapi.NewAuthMiddleware(tokens, repo)
	handler := httpapi.NewHandler(accounts, restaurants, dishes, orders, authMiddleware)
	router := httpapi.NewRouter(handler)

	addr := ":" + config.Getenv("PORT", "8080")
	httpapi.StartServer(addr, router)
}
