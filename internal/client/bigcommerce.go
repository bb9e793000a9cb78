package client

import (
	"context"
	"encoding/xml"
	"fmt"
	"log"
	"time"

	"bigcommerce-carecloud-sync/internal/apperr"
	"bigcommerce-carecloud-sync/internal/config"
	"bigcommerce-carecloud-sync/internal/model"

	"github.com/go-resty/resty/v2"
)

const bigCommerceErrMsg = "Failed request on BigCommerce API"

type BigCommerceClient interface {
	GetCustomer(ctx context.Context, id int) (*model.Customer, error)
	GetOrder(ctx context.Context, id int) (*model.Order, error)
	GetAddress(ctx context.Context, link string) (*model.Address, error)
	GetOrderProducts(ctx context.Context, link string) ([]model.Product, error)
}

type bigCommerceClientImpl struct {
	resty   *resty.Client
	baseURL string
	token   string
}

func NewBigCommerceClient(cfg *config.BigCommerce) BigCommerceClient {
	return &bigCommerceClientImpl{
		resty:   resty.New().SetTimeout(30 * time.Second),
		baseURL: cfg.BaseApiURL + "/stores/" + cfg.StoreHash + "/v2",
		token:   cfg.AccessToken,
	}
}

// get performs one authenticated read and decodes the XML body into out.
// Single attempt, no retries.
func (c *bigCommerceClientImpl) get(ctx context.Context, path string, out any) error {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetHeader("X-Auth-Token", c.token).
		SetHeader("Accept", "*/*").
		Get(c.baseURL + path)
	if err != nil {
		log.Printf("bigcommerce GET %s: %v", path, err)
		return apperr.Remote(bigCommerceErrMsg)
	}
	if resp.IsError() {
		log.Printf("bigcommerce GET %s: status %d", path, resp.StatusCode())
		return apperr.Remote(bigCommerceErrMsg)
	}
	if err := xml.Unmarshal(resp.Body(), out); err != nil {
		log.Printf("bigcommerce GET %s: decode: %v", path, err)
		return apperr.Remote(bigCommerceErrMsg)
	}
	return nil
}

func (c *bigCommerceClientImpl) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	var customer model.Customer
	if err := c.get(ctx, fmt.Sprintf("/customers/%d", id), &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *bigCommerceClientImpl) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	var order model.Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d", id), &order); err != nil {
		return nil, err
	}
	if order.PaymentStatus != "paid" {
		return nil, apperr.Precondition("Order has not yet been paid")
	}
	return &order, nil
}

// GetAddress fetches the address list behind a customer's addresses link
// and returns its first entry.
func (c *bigCommerceClientImpl) GetAddress(ctx context.Context, link string) (*model.Address, error) {
	var list model.AddressList
	if err := c.get(ctx, link, &list); err != nil {
		return nil, err
	}
	if len(list.Items) == 0 {
		log.Printf("bigcommerce GET %s: empty address list", link)
		return nil, apperr.Remote(bigCommerceErrMsg)
	}
	return &list.Items[0], nil
}

func (c *bigCommerceClientImpl) GetOrderProducts(ctx context.Context, link string) ([]model.Product, error) {
	var list model.ProductList
	if err := c.get(ctx, link, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}
