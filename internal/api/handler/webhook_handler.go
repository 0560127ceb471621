package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nestera/savings-api/internal/core/domain"
)

// EventDispatcher is the interface the handler uses to enqueue verified
// gateway events.
type EventDispatcher interface {
	Enqueue(event domain.GatewayEvent)
}

// WebhookHandler handles gateway callbacks. It runs behind the signature
// verification middleware, so a request reaching it is already
// authenticated against the webhook secret.
type WebhookHandler struct {
	dispatcher EventDispatcher
}

func NewWebhookHandler(dispatcher EventDispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

// Receive handles POST /webhooks/gateway. The acknowledgment body is
// fixed; processing happens asynchronously on the dispatcher workers.
//
// @Summary      Ingest a gateway ledger event
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Gateway-Signature  header    string               true  "Hex HMAC-SHA256 of the raw body"
// @Param        body                 body      gatewayEventRequest  true  "Gateway event"
// @Success      200   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /webhooks/gateway [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	var req gatewayEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toGatewayEvent(req))
	return c.JSON(http.StatusOK, acceptedResponse{Message: "event accepted"})
}

// toGatewayEvent maps the HTTP request to the domain event.
func toGatewayEvent(r gatewayEventRequest) domain.GatewayEvent {
	return domain.GatewayEvent{
		EventID:    r.EventID,
		Type:       domain.GatewayEventType(r.Type),
		PlanID:     r.PlanID,
		TxHash:     r.TxHash,
		Ledger:     r.Ledger,
		OccurredAt: r.OccurredAt,
	}
}
