package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"villasol/internal/config"
	"villasol/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	slideHandler *handler.SlideHandler,
	menuHandler *handler.MenuHandler,
	packageHandler *handler.PackageHandler,
	promotionHandler *handler.PromotionHandler,
	settingHandler *handler.SettingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Public content reads
	api.GET("/slides", slideHandler.List)
	api.GET("/menu", menuHandler.List)
	api.GET("/packages", packageHandler.List)
	api.GET("/packages/:id", packageHandler.Get)
	api.GET("/promotions/active", promotionHandler.ListActive)
	api.GET("/settings", settingHandler.List)
	api.GET("/settings/:key", settingHandler.Get)

	// Admin routes (require JWT authentication with the access secret)
	admin := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.AccessTokenSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	admin.POST("/slides", slideHandler.Create)
	admin.PUT("/slides/:id", slideHandler.Update)
	admin.DELETE("/slides/:id", slideHandler.Delete)

	admin.POST("/menu", menuHandler.Create)
	admin.PUT("/menu/:id", menuHandler.Update)
	admin.DELETE("/menu/:id", menuHandler.Delete)

	admin.POST("/packages", packageHandler.Create)
	admin.PUT("/packages/:id", packageHandler.Update)
	admin.DELETE("/packages/:id", packageHandler.Delete)

	admin.GET("/promotions", promotionHandler.List)
	admin.GET("/promotions/:id", promotionHandler.Get)
	admin.POST("/promotions", promotionHandler.Create)
	admin.PUT("/promotions/:id", promotionHandler.Update)
	admin.DELETE("/promotions/:id", promotionHandler.Delete)
	admin.POST("/promotions/:id/packages", promotionHandler.AttachPackage)
	admin.DELETE("/promotions/:id/packages/:packageID", promotionHandler.DetachPackage)

	admin.PUT("/settings/:key", settingHandler.Set)
	admin.DELETE("/settings/:key", settingHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
