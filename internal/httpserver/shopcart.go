package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopcarts/internal/events"
	"shopcarts/internal/logging"
	"shopcarts/internal/repo"
	"shopcarts/internal/service"
	"shopcarts/internal/transport"
)

type ShopcartHTTP struct {
	Svc      *service.ShopcartService
	Producer *events.Producer
}

func (h *ShopcartHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create.shopcart")

	if !isJSONRequest(c) {
		l.Warn("create_shopcart_error", "status", 415)
		return respondError(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	}

	var req transport.CreateShopcartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_shopcart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	cart, err := h.Svc.Create(ctx, req.CustomerID, transport.ToItems(req.Items))
	if err != nil {
		return fail(c, l, "create_shopcart_error", err)
	}

	publish(c, h.Producer, strconv.Itoa(int(cart.ID)), map[string]any{
		"type":        "shopcart_created",
		"shopcart_id": cart.ID,
		"customer_id": cart.CustomerID,
	})

	l.Info("shopcart created", "shopcart_id", cart.ID)
	c.Response().Header().Set(echo.HeaderLocation, shopcartLocation(cart.ID))
	return c.JSON(http.StatusCreated, cart)
}

func (h *ShopcartHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "list.shopcarts")

	var filter repo.ShopcartFilter
	if v := c.QueryParam("id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			l.Warn("list_shopcarts_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, "invalid id filter")
		}
		id := uint(n)
		filter.ID = &id
	}
	if v := c.QueryParam("customer_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			l.Warn("list_shopcarts_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, "invalid customer_id filter")
		}
		customerID := uint(n)
		filter.CustomerID = &customerID
	}

	carts, err := h.Svc.List(ctx, filter)
	if err != nil {
		return fail(c, l, "list_shopcarts_error", err)
	}
	return c.JSON(http.StatusOK, carts)
}

func (h *ShopcartHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.shopcart")

	id, err := pathID(c, "id")
	if err != nil {
		l.Warn("get_shopcart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	cart, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(c, l, "get_shopcart_error", err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *ShopcartHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "update.shopcart")

	id, err := pathID(c, "id")
	if err != nil {
		l.Warn("update_shopcart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if !isJSONRequest(c) {
		l.Warn("update_shopcart_error", "status", 415)
		return respondError(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	}

	var req transport.UpdateShopcartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_shopcart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	cart, err := h.Svc.Update(ctx, id, req.ID, req.CustomerID, transport.ToItems(req.Items))
	if err != nil {
		return fail(c, l, "update_shopcart_error", err)
	}

	publish(c, h.Producer, strconv.Itoa(int(id)), map[string]any{
		"type":        "shopcart_updated",
		"shopcart_id": id,
		"customer_id": cart.CustomerID,
	})

	l.Info("shopcart updated", "shopcart_id", id)
	return c.JSON(http.StatusOK, cart)
}

func (h *ShopcartHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.shopcart")

	id, err := pathID(c, "id")
	if err != nil {
		l.Warn("delete_shopcart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, l, "delete_shopcart_error", err)
	}

	publish(c, h.Producer, strconv.Itoa(int(id)), map[string]any{
		"type":        "shopcart_deleted",
		"shopcart_id": id,
	})

	l.Info("shopcart deleted", "shopcart_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *ShopcartHTTP) Reset(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reset.shopcart")

	id, err := pathID(c, "id")
	if err != nil {
		l.Warn("reset_shopcart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	cart, err := h.Svc.Reset(ctx, id)
	if err != nil {
		return fail(c, l, "reset_shopcart_error", err)
	}

	publish(c, h.Producer, strconv.Itoa(int(id)), map[string]any{
		"type":        "shopcart_reset",
		"shopcart_id": id,
	})

	l.Info("shopcart reset", "shopcart_id", id)
	return c.JSON(http.StatusOK, cart)
}
