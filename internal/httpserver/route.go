package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ShopcartHandler *ShopcartHTTP
	ItemHandler     *ItemHTTP
	CheckoutHandler *CheckoutHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "OK"})
	})

	carts := e.Group("/shopcarts")

	carts.POST("", d.ShopcartHandler.Create)
	carts.GET("", d.ShopcartHandler.List)
	carts.GET("/:id", d.ShopcartHandler.Get)
	carts.PUT("/:id", d.ShopcartHandler.Update)
	carts.DELETE("/:id", d.ShopcartHandler.Delete)
	carts.PUT("/:id/reset", d.ShopcartHandler.Reset)

	carts.GET("/:id/items", d.ItemHandler.List)
	carts.POST("/:id/items", d.ItemHandler.Add)
	carts.GET("/:id/items/:item_id", d.ItemHandler.Get)
	carts.PUT("/:id/items/:item_id", d.ItemHandler.Update)
	carts.DELETE("/:id/items/:item_id", d.ItemHandler.Delete)

	carts.POST("/:id/checkout", d.CheckoutHandler.Checkout)
}
