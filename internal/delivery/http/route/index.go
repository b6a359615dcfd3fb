package route

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/config"
	httpHandler "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/delivery/http/handler"
	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/delivery/http/middleware"
	entity "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/domain"
	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/logging"
	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/repository/mongodb"
	repo "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/repository/postgresql"
	service "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/service/postgresql"
)

func SetupRoute(app *gin.Engine, db *sql.DB, audit mongodb.AuditRepository, cfg *config.Config, logger logging.Logger) {
	repos := repo.PostgresFactory{}
	secret := []byte(cfg.JWTSecret)

	authService := service.NewAuthService(db, repos, secret, cfg.TokenTTL)
	listingService := service.NewListingService(db, repos)
	offerService := service.NewTradeOfferService(db, repos, audit, logger)

	authHandler := httpHandler.NewAuthHandler(authService)
	barterHandler := httpHandler.NewListingHandler(listingService, entity.KindBarter)
	requestHandler := httpHandler.NewListingHandler(listingService, entity.KindRequest)
	offerHandler := httpHandler.NewTradeOfferHandler(offerService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	barters := api.Group("/barters")
	barters.GET("", barterHandler.List)
	barters.POST("", middleware.AuthRequired(secret), barterHandler.Create)
	barters.PUT("/:id", middleware.AuthRequired(secret), barterHandler.Update)
	barters.DELETE("/:id", middleware.AuthRequired(secret), barterHandler.Delete)

	requests := api.Group("/requests")
	requests.GET("", requestHandler.List)
	requests.POST("", middleware.AuthRequired(secret), requestHandler.Create)
	requests.PUT("/:id", middleware.AuthRequired(secret), requestHandler.Update)
	requests.DELETE("/:id", middleware.AuthRequired(secret), requestHandler.Delete)

	offers := api.Group("/", middleware.AuthRequired(secret))
	offers.POST("/create_trade_offer/:barterId", offerHandler.CreateTradeOffer)
	offers.GET("/trade_offers", offerHandler.GetMyOffers)
	offers.GET("/received_offers", offerHandler.GetReceivedOffers)
	// Accept/reject mutates state, so POST rather than GET.
	offers.POST("/update_offer_status/:receivedOfferId/:status", offerHandler.UpdateOfferStatus)
}
