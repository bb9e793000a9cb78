package service

import (
	"context"
	"encoding/json"

	"bigcommerce-carecloud-sync/internal/model"
)

// stubBigCommerce serves canned records and counts calls.
type stubBigCommerce struct {
	customer *model.Customer
	order    *model.Order
	address  *model.Address
	products []model.Product

	customerErr error
	orderErr    error
	addressErr  error
	productsErr error

	calls []string
}

func (s *stubBigCommerce) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	s.calls = append(s.calls, "GetCustomer")
	return s.customer, s.customerErr
}

func (s *stubBigCommerce) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	s.calls = append(s.calls, "GetOrder")
	return s.order, s.orderErr
}

func (s *stubBigCommerce) GetAddress(ctx context.Context, link string) (*model.Address, error) {
	s.calls = append(s.calls, "GetAddress")
	return s.address, s.addressErr
}

func (s *stubBigCommerce) GetOrderProducts(ctx context.Context, link string) ([]model.Product, error) {
	s.calls = append(s.calls, "GetOrderProducts")
	return s.products, s.productsErr
}

// stubCareCloud records the payloads it receives so tests can assert on
// the mapped output and on which CRM calls happened.
type stubCareCloud struct {
	loginToken  string
	loginErr    error
	createData  json.RawMessage
	createErr   error
	updateData  json.RawMessage
	updateErr   error
	purchase    json.RawMessage
	purchaseErr error
	customerID  string
	findErr     error
	currencyID  string
	currencyErr error

	lastCustomerPayload *model.CustomerPayload
	lastPurchasePayload *model.PurchasePayload
	lastUpdateID        string

	calls []string
}

func (s *stubCareCloud) Login(ctx context.Context) (string, error) {
	s.calls = append(s.calls, "Login")
	return s.loginToken, s.loginErr
}

func (s *stubCareCloud) CreateCustomer(ctx context.Context, token string, payload *model.CustomerPayload) (json.RawMessage, error) {
	s.calls = append(s.calls, "CreateCustomer")
	s.lastCustomerPayload = payload
	return s.createData, s.createErr
}

func (s *stubCareCloud) UpdateCustomer(ctx context.Context, token string, customerID string, payload *model.CustomerPayload) (json.RawMessage, error) {
	s.calls = append(s.calls, "UpdateCustomer")
	s.lastCustomerPayload = payload
	s.lastUpdateID = customerID
	return s.updateData, s.updateErr
}

func (s *stubCareCloud) SendPurchase(ctx context.Context, token string, payload *model.PurchasePayload) (json.RawMessage, error) {
	s.calls = append(s.calls, "SendPurchase")
	s.lastPurchasePayload = payload
	return s.purchase, s.purchaseErr
}

func (s *stubCareCloud) FindCustomerID(ctx context.Context, token string, externalID int) (string, error) {
	s.calls = append(s.calls, "FindCustomerID")
	return s.customerID, s.findErr
}

func (s *stubCareCloud) GetCurrencyID(ctx context.Context, token string, currencyCode string) (string, error) {
	s.calls = append(s.calls, "GetCurrencyID")
	return s.currencyID, s.currencyErr
}

// fakeTokenStore keeps the token in memory.
type fakeTokenStore struct {
	token   model.Token
	loadErr error
	saveErr error
	saves   int
}

func (s *fakeTokenStore) Load() (*model.Token, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	loaded := s.token
	return &loaded, nil
}

func (s *fakeTokenStore) Save(token *model.Token) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = *token
	s.saves++
	return nil
}

// staticTokens satisfies TokenProvider without touching a store.
type staticTokens struct {
	token string
	err   error
}

func (s *staticTokens) GetToken(ctx context.Context) (string, error) {
	return s.token, s.err
}
