package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bigcommerce-carecloud-sync/internal/apperr"
	"bigcommerce-carecloud-sync/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCustomerService struct {
	createdData json.RawMessage
	createdErr  error
	updatedData json.RawMessage
	updatedErr  error
	calls       int
}

func (s *stubCustomerService) Created(ctx context.Context, id int) (json.RawMessage, error) {
	s.calls++
	return s.createdData, s.createdErr
}

func (s *stubCustomerService) Updated(ctx context.Context, id int) (json.RawMessage, error) {
	s.calls++
	return s.updatedData, s.updatedErr
}

type stubOrderService struct {
	data  json.RawMessage
	err   error
	calls int
}

func (s *stubOrderService) Created(ctx context.Context, id int) (json.RawMessage, error) {
	s.calls++
	return s.data, s.err
}

func invoke(t *testing.T, handlerFunc echo.HandlerFunc, body string) (*httptest.ResponseRecorder, dto.Envelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handlerFunc(e.NewContext(req, rec)))

	var envelope dto.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestCustomerCreatedValidation(t *testing.T) {
	customers := &stubCustomerService{}
	h := NewWebhookHandler(customers, &stubOrderService{}, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing data", body: `{}`},
		{name: "missing id", body: `{"data":{}}`},
		{name: "string id", body: `{"data":{"id":"42"}}`},
		{name: "zero id", body: `{"data":{"id":0}}`},
		{name: "not json", body: `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, envelope := invoke(t, h.CustomerCreated, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "The data.id must be an integer", envelope.Message)
		})
	}
	assert.Zero(t, customers.calls, "invalid input never reaches the service")
}

func TestCustomerCreatedSuccess(t *testing.T) {
	customers := &stubCustomerService{createdData: json.RawMessage(`{"customer_id":"crm-42"}`)}
	h := NewWebhookHandler(customers, &stubOrderService{}, nil)

	rec, _ := invoke(t, h.CustomerCreated, `{"data":{"id":42}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"customer":{"customer_id":"crm-42"}},"message":""}`, rec.Body.String())
}

func TestCustomerCreatedDuplicate(t *testing.T) {
	customers := &stubCustomerService{createdErr: apperr.Conflict("Customer already exists")}
	h := NewWebhookHandler(customers, &stubOrderService{}, nil)

	rec, envelope := invoke(t, h.CustomerCreated, `{"data":{"id":42}}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Customer already exists", envelope.Message)
}

func TestCustomerUpdatedNoContent(t *testing.T) {
	customers := &stubCustomerService{updatedData: nil}
	h := NewWebhookHandler(customers, &stubOrderService{}, nil)

	rec, _ := invoke(t, h.CustomerUpdated, `{"data":{"id":42}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"message":""}`, rec.Body.String())
}

func TestOrderCreatedSuccess(t *testing.T) {
	orders := &stubOrderService{data: json.RawMessage(`{"purchase_id":"p-1"}`)}
	h := NewWebhookHandler(&stubCustomerService{}, orders, nil)

	rec, _ := invoke(t, h.OrderCreated, `{"data":{"id":7}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"purchase_id":"p-1"},"message":""}`, rec.Body.String())
}

func TestOrderCreatedUnpaid(t *testing.T) {
	orders := &stubOrderService{err: apperr.Precondition("Order has not yet been paid")}
	h := NewWebhookHandler(&stubCustomerService{}, orders, nil)

	rec, envelope := invoke(t, h.OrderCreated, `{"data":{"id":7}}`)
	// rejection travels out as a 200 with an explanatory message
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Order has not yet been paid", envelope.Message)
	assert.JSONEq(t, `{"data":[],"message":"Order has not yet been paid"}`, rec.Body.String())
}

func TestOrderCreatedRemoteFailure(t *testing.T) {
	orders := &stubOrderService{err: apperr.Remote("Failed request on BigCommerce API")}
	h := NewWebhookHandler(&stubCustomerService{}, orders, nil)

	rec, envelope := invoke(t, h.OrderCreated, `{"data":{"id":7}}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed request on BigCommerce API", envelope.Message)
}

func TestUnclassifiedErrorBecomesGeneric500(t *testing.T) {
	orders := &stubOrderService{err: errors.New("disk exploded")}
	h := NewWebhookHandler(&stubCustomerService{}, orders, nil)

	rec, envelope := invoke(t, h.OrderCreated, `{"data":{"id":7}}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", envelope.Message)
}
