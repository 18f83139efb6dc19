package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"shopcarts/internal/events"
	"shopcarts/internal/logging"
	"shopcarts/internal/service"
)

// isJSONRequest gates every write endpoint: anything but the JSON media
// type is rejected with 415 before the body is read.
func isJSONRequest(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	mt, _, err := mime.ParseMediaType(ct)
	return err == nil && mt == echo.MIMEApplicationJSON
}

func pathID(c echo.Context, name string) (uint, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(v), nil
}

func respondError(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"error": msg})
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func fail(c echo.Context, l *slog.Logger, event string, err error) error {
	status := errStatus(err)
	if status >= 500 {
		l.Error(event, "status", status, "error", err)
		return respondError(c, status, "internal error")
	}
	l.Warn(event, "status", status, "error", err)
	return respondError(c, status, err.Error())
}

func publish(c echo.Context, p *events.Producer, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event publish failed", "error", err)
	}
}

func shopcartLocation(id uint) string {
	return fmt.Sprintf("/shopcarts/%d", id)
}

func itemLocation(shopcartID, itemID uint) string {
	return fmt.Sprintf("/shopcarts/%d/items/%d", shopcartID, itemID)
}
