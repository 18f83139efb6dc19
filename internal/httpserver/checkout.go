package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopcarts/internal/events"
	"shopcarts/internal/logging"
	"shopcarts/internal/service"
	"shopcarts/internal/transport"
)

type CheckoutHTTP struct {
	Svc      *service.ShopcartService
	Producer *events.Producer
}

// Checkout removes the posted items from the cart and echoes the request
// payload back on success. The operation is all-or-nothing, so replaying
// the same payload fails with 404 once the items are gone.
func (h *CheckoutHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.shopcart")

	id, err := pathID(c, "id")
	if err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if !isJSONRequest(c) {
		l.Warn("checkout_error", "status", 415)
		return respondError(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	}

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	itemIDs := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		itemIDs = append(itemIDs, it.ID)
	}

	if err := h.Svc.Checkout(ctx, id, itemIDs); err != nil {
		return fail(c, l, "checkout_error", err)
	}

	publish(c, h.Producer, strconv.Itoa(int(id)), map[string]any{
		"type":        "shopcart_checked_out",
		"shopcart_id": id,
		"item_ids":    itemIDs,
	})

	l.Info("shopcart checked out", "shopcart_id", id, "items", len(itemIDs))
	return c.JSON(http.StatusOK, req)
}
