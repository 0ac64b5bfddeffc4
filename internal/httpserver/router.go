package httpserver

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"plantstore/internal/cart"
	"plantstore/internal/domain"
	"plantstore/internal/realtime"
	addresssvc "plantstore/internal/service/address"
	authsvc "plantstore/internal/service/auth"
	catalogsvc "plantstore/internal/service/catalog"
	checkoutsvc "plantstore/internal/service/checkout"
	inventorysvc "plantstore/internal/service/inventory"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Signup(ctx context.Context, in authsvc.SignupInput) (*domain.Profile, error)
	Login(ctx context.Context, email, password string) (*domain.Profile, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, token string)
	LookupByToken(ctx context.Context, token string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, in authsvc.UpdateProfileInput) (*domain.Profile, error)
	AccessTTLSeconds() int
}

type CatalogService interface {
	Browse(ctx context.Context, in catalogsvc.BrowseInput) (*catalogsvc.Page, error)
	Get(ctx context.Context, id string) (*domain.Plant, error)
}

type InventoryService interface {
	List(ctx context.Context, nurseryID string, page, pageSize int) ([]domain.Plant, int, error)
	Create(ctx context.Context, nurseryID string, in inventorysvc.PlantInput) (*domain.Plant, error)
	Update(ctx context.Context, nurseryID, plantID string, in inventorysvc.PlantInput) (*domain.Plant, error)
	Delete(ctx context.Context, nurseryID, plantID string) error
	SaveImage(filename string, r io.Reader) (string, error)
}

type OrderService interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListForNursery(ctx context.Context, nurseryID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, nurseryID, orderID string, status domain.OrderStatus) (*domain.Order, error)
	Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error)
}

type CheckoutService interface {
	Begin(ctx context.Context, profileID, addressID string) (checkoutsvc.Session, error)
	Confirm(ctx context.Context, profileID, sessionID, paymentRef string) (checkoutsvc.Session, error)
	Get(profileID, sessionID string) (checkoutsvc.Session, error)
}

type AddressService interface {
	List(ctx context.Context, userID string) ([]domain.Address, error)
	Create(ctx context.Context, userID string, in addresssvc.Input) (*domain.Address, error)
	Update(ctx context.Context, userID, id string, in addresssvc.Input) (*domain.Address, error)
	Delete(ctx context.Context, userID, id string) error
}

// EventSource hands out live order-change feeds.
type EventSource interface {
	SubscribeOrders(ctx context.Context) (<-chan realtime.OrderEvent, func())
}

// Deps collects everything buildRouter wires into handlers. Carts is the
// concrete in-memory store; everything else hides behind a small interface.
type Deps struct {
	AuthSvc      AuthService
	CatalogSvc   CatalogService
	InventorySvc InventoryService
	OrderSvc     OrderService
	CheckoutSvc  CheckoutService
	AddressSvc   AddressService
	Carts        *cart.Store
	Events       EventSource
}

func (d Deps) validate() error {
	if d.AuthSvc == nil || d.CatalogSvc == nil || d.InventorySvc == nil ||
		d.OrderSvc == nil || d.CheckoutSvc == nil || d.AddressSvc == nil || d.Carts == nil {
		return errors.New("httpserver: missing dependency")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, mediaDir string) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	if mediaDir != "" {
		router.Static("/media", mediaDir)
	}

	router.POST("/auth/signup", signupHandler(deps.AuthSvc))
	router.POST("/auth/login", loginHandler(deps.AuthSvc))
	router.POST("/auth/refresh", refreshHandler(deps.AuthSvc))

	router.GET("/plants", listPlantsHandler(deps.CatalogSvc))
	router.GET("/plants/:id", getPlantHandler(deps.CatalogSvc))

	authed := router.Group("/", authRequired(deps.AuthSvc))
	{
		authed.POST("/auth/logout", logoutHandler(deps.AuthSvc))
		authed.GET("/me", meHandler)
		authed.PUT("/me", updateMeHandler(deps.AuthSvc))

		authed.GET("/cart", getCartHandler(deps.Carts))
		authed.POST("/cart/items", addCartItemHandler(deps.Carts, deps.CatalogSvc))
		authed.PUT("/cart/items/:plantId", setCartQuantityHandler(deps.Carts))
		authed.DELETE("/cart/items/:plantId", removeCartItemHandler(deps.Carts))
		authed.DELETE("/cart", clearCartHandler(deps.Carts))

		authed.GET("/addresses", listAddressesHandler(deps.AddressSvc))
		authed.POST("/addresses", createAddressHandler(deps.AddressSvc))
		authed.PUT("/addresses/:id", updateAddressHandler(deps.AddressSvc))
		authed.DELETE("/addresses/:id", deleteAddressHandler(deps.AddressSvc))

		authed.POST("/checkout", beginCheckoutHandler(deps.CheckoutSvc))
		authed.GET("/checkout/:id", getCheckoutHandler(deps.CheckoutSvc))
		authed.POST("/checkout/:id/confirm", confirmCheckoutHandler(deps.CheckoutSvc))

		authed.GET("/orders", listOrdersHandler(deps.OrderSvc))
		authed.POST("/orders/:id/cancel", cancelOrderHandler(deps.OrderSvc))

		if deps.Events != nil {
			authed.GET("/events/orders", orderEventsHandler(deps.Events))
		}

		nursery := authed.Group("/nursery", nurseryOnly())
		{
			nursery.GET("/orders", listNurseryOrdersHandler(deps.OrderSvc))
			nursery.PUT("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))

			nursery.GET("/plants", listNurseryPlantsHandler(deps.InventorySvc))
			nursery.POST("/plants", createPlantHandler(deps.InventorySvc))
			nursery.PUT("/plants/:id", updatePlantHandler(deps.InventorySvc))
			nursery.DELETE("/plants/:id", deletePlantHandler(deps.InventorySvc))
			nursery.POST("/plants/images", uploadPlantImageHandler(deps.InventorySvc))
		}
	}

	return router, nil
}
