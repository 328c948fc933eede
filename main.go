package main

import (
	"fmt"
	"os"

	auction "car-auction/internal/auctionService"
	"car-auction/internal/config"
	"car-auction/internal/inventory"
	"car-auction/internal/registry"
	"car-auction/internal/server"
	user "car-auction/internal/userService"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	utils.SetLogLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	carStore := inventory.NewStore(utils.NewSequence(1))
	auctions := registry.NewRegistry()
	userService := user.NewUserService(utils.NewSequence(1))
	auctionService := auction.NewAuctionService(carStore, auctions, utils.NewSequence(1))

	router := server.SetupRouter(auctionService, carStore, userService)

	utils.Info("starting car auction server", map[string]any{"addr": cfg.Addr()})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
