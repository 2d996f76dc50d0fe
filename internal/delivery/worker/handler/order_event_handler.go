// Package handler contains the push handlers of the order event worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"furnishop/config"
	deliverycontext "furnishop/internal/delivery/context"
	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushMessage is the body Pub/Sub (or the local publisher) posts to a push endpoint.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a Google-signed OIDC token for the given audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// OrderEventHandler receives order events and prepares the shopper-facing
// confirmation for every placed order.
type OrderEventHandler struct {
	verifyPushAuth bool
	validateToken  TokenValidator
	qrcode         service.QRCodeService
	logger         *slog.Logger
}

// OrderEventHandlerParams holds dependencies for OrderEventHandler, injected by Fx.
type OrderEventHandlerParams struct {
	fx.In

	Config *config.Config
	QRCode service.QRCodeService
	Logger *slog.Logger
}

func NewOrderEventHandler(params OrderEventHandlerParams) *OrderEventHandler {
	verify := params.Config.Worker != nil && params.Config.Worker.VerifyPushAuth

	return &OrderEventHandler{
		verifyPushAuth: verify,
		validateToken:  idtoken.Validate,
		qrcode:         params.QRCode,
		logger:         params.Logger,
	}
}

// HandlePush acknowledges (2xx) every message it has consumed or deliberately
// dropped. Malformed messages get 400.
func (h *OrderEventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid push token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var push PushMessage
	if err := c.Bind(&push); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	logger := h.logger.With(
		slog.String("request_id", requestIDOf(ctx, &push, &event)),
		slog.String("message_id", push.Message.MessageID),
		slog.String("type", event.Type),
		slog.Int64("order_id", event.OrderID),
	)

	switch event.Type {
	case service.OrderEventPlaced:
		if err := h.confirmOrder(&event); err != nil {
			logger.Error("[Worker] Failed to prepare order confirmation", slog.Any("error", err))

			return c.NoContent(http.StatusInternalServerError)
		}
		logger.Info("[Worker] Order confirmation prepared",
			slog.Int64("user_id", event.UserID),
			slog.Float64("total", event.Total),
		)
	case service.OrderEventStatusChanged:
		logger.Info("[Worker] Order status changed", slog.String("status", event.Status))
	default:
		logger.Warn("[Worker] Dropping unknown order event")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *OrderEventHandler) confirmOrder(event *service.OrderEvent) error {
	if event.OrderID <= 0 {
		return errors.Errorf("invalid order id %d", event.OrderID)
	}

	png, err := h.qrcode.GenerateOrderQR(&entity.Order{ID: event.OrderID, Total: event.Total})
	if err != nil {
		return err
	}
	if len(png) == 0 {
		return errors.New("empty confirmation qr code")
	}

	return nil
}

// requestIDOf prefers the id carried by the message so one checkout can be
// traced across the storefront and the worker.
func requestIDOf(ctx context.Context, push *PushMessage, event *service.OrderEvent) string {
	if id := push.Message.Attributes["request_id"]; id != "" {
		return id
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return uuid.NewString()
}

// verifyToken validates the bearer token Pub/Sub attaches to authenticated push requests.
func (h *OrderEventHandler) verifyToken(req *http.Request) error {
	const bearerPrefix = "Bearer "

	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), strings.TrimPrefix(authHeader, bearerPrefix), audience)
	if err != nil {
		return errors.Wrap(err, "validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	return nil
}
