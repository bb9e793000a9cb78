package service

import (
	"context"
	"encoding/json"
	"log"

	"bigcommerce-carecloud-sync/internal/apperr"
	"bigcommerce-carecloud-sync/internal/client"
	"bigcommerce-carecloud-sync/internal/config"
	"bigcommerce-carecloud-sync/internal/mapper"
)

type OrderService interface {
	Created(ctx context.Context, id int) (json.RawMessage, error)
}

type orderServiceImpl struct {
	bigcommerce client.BigCommerceClient
	carecloud   client.CareCloudClient
	tokens      TokenProvider
	cfg         *config.CareCloud
}

func NewOrderService(
	bigcommerce client.BigCommerceClient,
	carecloud client.CareCloudClient,
	tokens TokenProvider,
	cfg *config.CareCloud,
) OrderService {
	return &orderServiceImpl{
		bigcommerce: bigcommerce,
		carecloud:   carecloud,
		tokens:      tokens,
		cfg:         cfg,
	}
}

// Created syncs a paid order as a CRM purchase. The fetch of the order
// already rejects unpaid orders, so no CRM call happens for those.
func (s *orderServiceImpl) Created(ctx context.Context, id int) (json.RawMessage, error) {
	order, err := s.bigcommerce.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.bigcommerce.GetOrderProducts(ctx, order.Products.Link)
	if err != nil {
		return nil, err
	}

	customer, err := s.bigcommerce.GetCustomer(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}
	// the customer record is only complete with its address resource
	if _, err := s.bigcommerce.GetAddress(ctx, customer.Addresses.Link); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	crmCustomerID, err := s.carecloud.FindCustomerID(ctx, token, customer.ID)
	if err != nil {
		return nil, err
	}

	currencyID, err := s.carecloud.GetCurrencyID(ctx, token, order.DefaultCurrencyCode)
	if err != nil {
		return nil, err
	}

	payload, err := mapper.PurchasePayload(order, products, crmCustomerID, currencyID, s.cfg)
	if err != nil {
		log.Printf("map order %d: %v", id, err)
		return nil, apperr.Remote("System exception")
	}

	return s.carecloud.SendPurchase(ctx, token, payload)
}
