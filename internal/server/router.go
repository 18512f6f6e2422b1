package server

import (
	"student-exchange/internal/arbitration"
	"student-exchange/internal/cart"
	"student-exchange/internal/config"
	"student-exchange/internal/listing"
	"student-exchange/internal/request"
	carthandler "student-exchange/services/cart/handler"
	listinghandler "student-exchange/services/listing/handler"
	requesthandler "student-exchange/services/request/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	cfg *config.Config,
	listingService *listing.ListingService,
	cartService *cart.CartService,
	requestService *request.RequestService,
	arbitrationService *arbitration.ArbitrationService,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(cors.Default())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	listingHandler := listinghandler.NewListingHandler(listingService)
	cartHandler := carthandler.NewCartHandler(cartService)
	requestHandler := requesthandler.NewRequestHandler(requestService, arbitrationService)

	auth := AuthRequired(cfg.JWTSecret)

	items := router.Group("/items")
	{
		items.GET("", listingHandler.GetItemsHandler)
		items.POST("", auth, listingHandler.CreateItemHandler)
		items.PUT("/:item_id", auth, listingHandler.UpdateItemHandler)
		items.PUT("/:item_id/status", auth, listingHandler.OverrideStatusHandler)
		items.DELETE("/:item_id", auth, listingHandler.DeleteItemHandler)
	}

	cartRoutes := router.Group("/cart", auth)
	{
		cartRoutes.POST("/add", cartHandler.AddToCartHandler)
		cartRoutes.GET("", cartHandler.ViewCartHandler)
		cartRoutes.DELETE("/clear", cartHandler.ClearCartHandler)
		cartRoutes.DELETE("/:item_id", cartHandler.RemoveFromCartHandler)
		cartRoutes.POST("/checkout", cartHandler.CheckoutHandler)
	}

	buyRequests := router.Group("/buyrequests", auth)
	{
		buyRequests.POST("", requestHandler.SubmitHandler)
		buyRequests.GET("/seller", requestHandler.SellerRequestsHandler)
		buyRequests.GET("/buyer", requestHandler.BuyerRequestsHandler)
		buyRequests.PUT("/:request_id/accept", requestHandler.AcceptHandler)
		buyRequests.PUT("/:request_id/status", requestHandler.UpdateStatusHandler)
		buyRequests.DELETE("/:request_id", requestHandler.CancelHandler)
		buyRequests.PUT("/clear/:request_id", requestHandler.ClearBuyerHandler)
		buyRequests.PUT("/clear-seller/:request_id", requestHandler.ClearSellerHandler)
	}

	return router
}
