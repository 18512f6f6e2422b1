package main

import (
	"context"
	"time"

	"student-exchange/internal/arbitration"
	"student-exchange/internal/cart"
	"student-exchange/internal/config"
	"student-exchange/internal/listing"
	model "student-exchange/internal/models"
	"student-exchange/internal/repository"
	"student-exchange/internal/request"
	"student-exchange/internal/server"
	"student-exchange/utils"
)

func main() {
	cfg := config.Load()

	repo, cleanup := buildRepo(cfg)
	defer cleanup()

	listingSvc := listing.NewListingService(repo)
	cartSvc := cart.NewCartService(repo)
	requestSvc := request.NewRequestService(repo)
	arbitrationSvc := arbitration.NewArbitrationService(repo)

	router := server.SetupRouter(cfg, listingSvc, cartSvc, requestSvc, arbitrationSvc)

	utils.Info("Starting exchange server", map[string]any{"address": cfg.ServerAddress})
	if err := router.Run(cfg.ServerAddress); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}

// buildRepo selects the storage backend: MongoDB when MONGO_URI is set,
// otherwise the in-memory store seeded with a few demo listings.
func buildRepo(cfg *config.Config) (repository.ExchangeDB, func()) {
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		repo, err := repository.NewMongoRepo(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			utils.Fatal("Failed to connect to MongoDB", map[string]any{"error": err.Error()})
		}
		return repo, func() {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer closeCancel()
			_ = repo.Close(closeCtx)
		}
	}

	repo := repository.NewMemoryRepo()
	prepopulateItems(repo)
	return repo, func() {}
}

// prepopulateItems adds sample listings to the in-memory repo
func prepopulateItems(repo *repository.MemoryRepo) {
	items := []model.Item{
		{ItemID: "item1", Seller: "seller1", Title: "Desk lamp", Description: "Adjustable LED desk lamp", Price: 15, Category: "Electronics", Status: model.ItemAvailable, CreatedAt: time.Now().UTC()},
		{ItemID: "item2", Seller: "seller1", Title: "Calculus textbook", Description: "Early transcendentals, 8th edition", Price: 40, Category: "Books", Status: model.ItemAvailable, CreatedAt: time.Now().UTC()},
		{ItemID: "item3", Seller: "seller2", Title: "Mini fridge", Description: "Fits under a dorm desk", Price: 60, Category: "Appliances", Status: model.ItemAvailable, CreatedAt: time.Now().UTC()},
	}

	for _, item := range items {
		repo.AddItem(item)
	}
}
