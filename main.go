package main

import (
	"auction-marketplace/internal/bidding"
	"auction-marketplace/internal/catalog"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/locks"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/notifier"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/settlement"
	"auction-marketplace/utils"
	"fmt"
	"net/http"
	"os"
)

func main() {
	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)

	repo := repository.NewMemoryRepo()
	prepopulateAccounts(repo)

	productLocks := locks.NewKeyed()

	mailer := notifier.NewWebhookNotifier(cfg.NotifyEndpoint, &http.Client{Timeout: cfg.NotifyTimeout})
	dispatcher := notifier.NewDispatcher(repo, mailer, cfg.NotifyMaxRetries, cfg.NotifyBackoff, cfg.NotifyTimeout)
	dispatcher.Start()
	defer dispatcher.Stop()

	biddingSvc := bidding.NewBiddingService(repo, productLocks)
	settlementSvc := settlement.NewSettlementService(repo, mailer, dispatcher, productLocks, cfg.NotifyTimeout)
	catalogSvc := catalog.NewCatalogService(repo, productLocks)

	router := server.SetupRouter(biddingSvc, settlementSvc, catalogSvc)

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateAccounts seeds the in-memory repo with the platform admin and a
// couple of sample accounts so the API is usable out of the box.
func prepopulateAccounts(repo *repository.MemoryRepo) {
	users := []model.User{
		{UserID: "admin1", Name: "Platform Admin", Email: "admin@example.com", Role: model.RoleAdmin},
		{UserID: "seller1", Name: "Sample Seller", Email: "seller@example.com", Role: model.RoleSeller},
		{UserID: "buyer1", Name: "Sample Buyer", Email: "buyer@example.com", Role: model.RoleBuyer},
		{UserID: "buyer2", Name: "Another Buyer", Email: "buyer2@example.com", Role: model.RoleBuyer},
	}

	for _, u := range users {
		if err := repo.AddUser(u); err != nil {
			utils.Fatal("failed to seed user", map[string]any{"user_id": u.UserID, "error": err.Error()})
		}
	}
}
