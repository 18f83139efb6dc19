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

type ItemHTTP struct {
	Svc      *service.ShopcartService
	Producer *events.Producer
}

func (h *ItemHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "list.items")

	id, err := pathID(c, "id")
	if err != nil {
		l.Warn("list_items_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	items, err := h.Svc.ListItems(ctx, id)
	if err != nil {
		return fail(c, l, "list_items_error", err)
	}
	return c.JSON(http.StatusOK, transport.ItemListResponse{Items: items})
}

func (h *ItemHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "add.item")

	id, err := pathID(c, "id")
	if err != nil {
		l.Warn("add_item_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if !isJSONRequest(c) {
		l.Warn("add_item_error", "status", 415)
		return respondError(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	}

	var req transport.ItemPayload
	if err := c.Bind(&req); err != nil {
		l.Warn("add_item_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddItem(ctx, id, req.ToModel())
	if err != nil {
		return fail(c, l, "add_item_error", err)
	}

	publish(c, h.Producer, strconv.Itoa(int(id)), map[string]any{
		"type":        "item_added",
		"shopcart_id": id,
		"item_id":     item.ID,
		"quantity":    item.Quantity,
	})

	l.Info("item added", "shopcart_id", id, "item_id", item.ID)
	c.Response().Header().Set(echo.HeaderLocation, itemLocation(id, item.ID))
	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.item")

	id, err := pathID(c, "id")
	if err != nil {
		l.Warn("get_item_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		l.Warn("get_item_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	item, err := h.Svc.GetItem(ctx, id, itemID)
	if err != nil {
		return fail(c, l, "get_item_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

// Update applies a partial quantity/price change and responds with the
// full parent shopcart.
func (h *ItemHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "update.item")

	id, err := pathID(c, "id")
	if err != nil {
		l.Warn("update_item_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		l.Warn("update_item_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if !isJSONRequest(c) {
		l.Warn("update_item_error", "status", 415)
		return respondError(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	}

	var req transport.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_item_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	cart, err := h.Svc.UpdateItem(ctx, id, itemID, req.Quantity, req.Price)
	if err != nil {
		return fail(c, l, "update_item_error", err)
	}

	publish(c, h.Producer, strconv.Itoa(int(id)), map[string]any{
		"type":        "item_updated",
		"shopcart_id": id,
		"item_id":     itemID,
	})

	l.Info("item updated", "shopcart_id", id, "item_id", itemID)
	return c.JSON(http.StatusOK, cart)
}

func (h *ItemHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.item")

	id, err := pathID(c, "id")
	if err != nil {
		l.Warn("delete_item_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		l.Warn("delete_item_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.DeleteItem(ctx, id, itemID); err != nil {
		return fail(c, l, "delete_item_error", err)
	}

	publish(c, h.Producer, strconv.Itoa(int(id)), map[string]any{
		"type":        "item_deleted",
		"shopcart_id": id,
		"item_id":     itemID,
	})

	l.Info("item deleted", "shopcart_id", id, "item_id", itemID)
	return c.NoContent(http.StatusNoContent)
}
