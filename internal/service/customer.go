package service

import (
	"context"
	"encoding/json"

	"bigcommerce-carecloud-sync/internal/client"
	"bigcommerce-carecloud-sync/internal/mapper"
)

type CustomerService interface {
	Created(ctx context.Context, id int) (json.RawMessage, error)
	Updated(ctx context.Context, id int) (json.RawMessage, error)
}

type customerServiceImpl struct {
	bigcommerce      client.BigCommerceClient
	carecloud        client.CareCloudClient
	tokens           TokenProvider
	customerSourceID string
}

func NewCustomerService(
	bigcommerce client.BigCommerceClient,
	carecloud client.CareCloudClient,
	tokens TokenProvider,
	customerSourceID string,
) CustomerService {
	return &customerServiceImpl{
		bigcommerce:      bigcommerce,
		carecloud:        carecloud,
		tokens:           tokens,
		customerSourceID: customerSourceID,
	}
}

// Created pushes a new BigCommerce customer into the CRM: fetch the
// customer, merge in its address, map, submit.
func (s *customerServiceImpl) Created(ctx context.Context, id int) (json.RawMessage, error) {
	customer, err := s.bigcommerce.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	address, err := s.bigcommerce.GetAddress(ctx, customer.Addresses.Link)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := mapper.CustomerPayload(customer, address, s.customerSourceID)
	return s.carecloud.CreateCustomer(ctx, token, payload)
}

// Updated resolves the CRM-side id for the customer first, then runs
// the same fetch-merge-map sequence and puts the result onto the
// existing record. A nil body means the CRM answered 204.
func (s *customerServiceImpl) Updated(ctx context.Context, id int) (json.RawMessage, error) {
	token, err := s.tokens.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	crmCustomerID, err := s.carecloud.FindCustomerID(ctx, token, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.bigcommerce.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	address, err := s.bigcommerce.GetAddress(ctx, customer.Addresses.Link)
	if err != nil {
		return nil, err
	}

	payload := mapper.CustomerPayload(customer, address, s.customerSourceID)
	return s.carecloud.UpdateCustomer(ctx, token, crmCustomerID, payload)
}
