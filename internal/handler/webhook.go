package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bigcommerce-carecloud-sync/internal/apperr"
	"bigcommerce-carecloud-sync/internal/dto"
	"bigcommerce-carecloud-sync/internal/repository"
	"bigcommerce-carecloud-sync/internal/service"

	"github.com/labstack/echo/v4"
)

type WebhookHandler struct {
	customerService service.CustomerService
	orderService    service.OrderService
	events          repository.SyncEventRepository
}

func NewWebhookHandler(
	customerService service.CustomerService,
	orderService service.OrderService,
	events repository.SyncEventRepository,
) *WebhookHandler {
	return &WebhookHandler{
		customerService: customerService,
		orderService:    orderService,
		events:          events,
	}
}

func (h *WebhookHandler) CustomerCreated(c echo.Context) error {
	id, err := entityID(c)
	if err != nil {
		return respondError(c, err)
	}

	data, err := h.customerService.Created(c.Request().Context(), id)
	h.record(c, "customer.created", id, err)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.Envelope{
		Data:    customerData(data),
		Message: "",
	})
}

func (h *WebhookHandler) CustomerUpdated(c echo.Context) error {
	id, err := entityID(c)
	if err != nil {
		return respondError(c, err)
	}

	data, err := h.customerService.Updated(c.Request().Context(), id)
	h.record(c, "customer.updated", id, err)
	if err != nil {
		return respondError(c, err)
	}
	if data == nil {
		// CRM answered 204; success with an empty body
		return c.JSON(http.StatusOK, dto.Envelope{Data: []any{}, Message: ""})
	}

	return c.JSON(http.StatusOK, dto.Envelope{
		Data:    customerData(data),
		Message: "",
	})
}

func (h *WebhookHandler) OrderCreated(c echo.Context) error {
	id, err := entityID(c)
	if err != nil {
		return respondError(c, err)
	}

	data, err := h.orderService.Created(c.Request().Context(), id)
	h.record(c, "order.created", id, err)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.Envelope{
		Data:    data,
		Message: "",
	})
}

// entityID binds the webhook body and validates its entity id. Anything
// that is not a well-formed positive integer is rejected before a
// single remote call is made.
func entityID(c echo.Context) (int, error) {
	var req dto.WebhookRequest
	if err := c.Bind(&req); err != nil {
		return 0, apperr.Validation("The data.id must be an integer")
	}
	if req.Data == nil || req.Data.ID == nil || *req.Data.ID <= 0 {
		return 0, apperr.Validation("The data.id must be an integer")
	}
	return *req.Data.ID, nil
}

func respondError(c echo.Context, err error) error {
	var reqErr *apperr.RequestError
	if errors.As(err, &reqErr) {
		return c.JSON(reqErr.Status, dto.Envelope{Data: []any{}, Message: reqErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, dto.Envelope{Data: []any{}, Message: "Internal server error"})
}

// record appends the outcome to the sync-event log. Best-effort: a
// failed insert never changes the webhook response.
func (h *WebhookHandler) record(c echo.Context, eventType string, id int, opErr error) {
	if h.events == nil {
		return
	}
	outcome := "synced"
	if opErr != nil {
		outcome = opErr.Error()
	}
	if err := h.events.Record(c.Request().Context(), eventType, id, outcome); err != nil {
		log.Printf("record sync event %s/%d: %v", eventType, id, err)
	}
}

func customerData(data json.RawMessage) map[string]json.RawMessage {
	return map[string]json.RawMessage{"customer": data}
}
