package server

import (
	auction "car-auction/internal/auctionService"
	"car-auction/internal/inventory"
	user "car-auction/internal/userService"
	auctionhandler "car-auction/services/auction/handler"
	carhandler "car-auction/services/cars/handler"
	userhandler "car-auction/services/users/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, carStore *inventory.Store, userService *user.UserService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(auctionService, userService)
	carHandler := carhandler.NewCarHandler(carStore, userService)
	userHandler := userhandler.NewUserHandler(userService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.POST("/bid", auctionHandler.PlaceBidHandler)
		auctions.POST("/close", auctionHandler.CloseAuctionHandler)
		auctions.GET("/:car_id", auctionHandler.GetAuctionHandler)
	}

	cars := router.Group("/cars")
	{
		cars.POST("", carHandler.AddCarHandler)
		cars.GET("", carHandler.GetAllCarsHandler)
		cars.GET("/available", carHandler.GetAvailableCarsHandler)
		cars.GET("/search", carHandler.SearchCarsHandler)
	}

	users := router.Group("/users")
	{
		users.POST("", userHandler.AddUserHandler)
		users.GET("", userHandler.ListUsersHandler)
		users.GET("/:user_id", userHandler.GetUserHandler)
	}

	return router
}
