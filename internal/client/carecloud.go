package client

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"bigcommerce-carecloud-sync/internal/apperr"
	"bigcommerce-carecloud-sync/internal/config"
	"bigcommerce-carecloud-sync/internal/model"

	"github.com/go-resty/resty/v2"
)

const (
	careCloudBasePath = "/webservice/rest-api/enterprise-interface/v1.0"
	careCloudErrMsg   = "Failed on CareCloud API"
)

type CareCloudClient interface {
	Login(ctx context.Context) (string, error)
	CreateCustomer(ctx context.Context, token string, payload *model.CustomerPayload) (json.RawMessage, error)
	UpdateCustomer(ctx context.Context, token string, customerID string, payload *model.CustomerPayload) (json.RawMessage, error)
	SendPurchase(ctx context.Context, token string, payload *model.PurchasePayload) (json.RawMessage, error)
	FindCustomerID(ctx context.Context, token string, externalID int) (string, error)
	GetCurrencyID(ctx context.Context, token string, currencyCode string) (string, error)
}

type careCloudClientImpl struct {
	resty *resty.Client
	cfg   *config.CareCloud
}

type loginResponse struct {
	Data struct {
		BearerToken string `json:"bearer_token"`
	} `json:"data"`
}

type sourceRecordsResponse struct {
	Data struct {
		CustomerSourceRecords []struct {
			CustomerID string `json:"customer_id"`
		} `json:"customer_source_records"`
	} `json:"data"`
}

type currenciesResponse struct {
	Data struct {
		Currencies []struct {
			CurrencyID string `json:"currency_id"`
			Code       string `json:"code"`
		} `json:"currencies"`
	} `json:"data"`
}

type purchaseResponse struct {
	Data json.RawMessage `json:"data"`
}

// apiError is the CRM validation error body, inspected to detect a
// duplicate contact source.
type apiError struct {
	Error struct {
		ErrorData struct {
			InvalidParams []struct {
				Message string `json:"message"`
			} `json:"invalid_params"`
		} `json:"error_data"`
	} `json:"error"`
}

func NewCareCloudClient(cfg *config.CareCloud) CareCloudClient {
	return &careCloudClientImpl{
		resty: resty.New().SetTimeout(30 * time.Second),
		cfg:   cfg,
	}
}

func (c *careCloudClientImpl) url(path string) string {
	return c.cfg.BaseApiURL + careCloudBasePath + path
}

// Login obtains a fresh bearer token with the service-account
// credentials. The caller owns the lease bookkeeping.
func (c *careCloudClientImpl) Login(ctx context.Context) (string, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"user_external_application_id": c.cfg.ExternalApplicationID,
			"login":                        c.cfg.Login,
			"password":                     c.cfg.Password,
		}).
		Post(c.url("/users/actions/login"))
	if err != nil {
		log.Printf("carecloud login: %v", err)
		return "", apperr.Remote(careCloudErrMsg)
	}
	if resp.IsError() {
		log.Printf("carecloud login: status %d", resp.StatusCode())
		return "", apperr.Remote(careCloudErrMsg)
	}

	var body loginResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		log.Printf("carecloud login: decode: %v", err)
		return "", apperr.Remote(careCloudErrMsg)
	}
	return body.Data.BearerToken, nil
}

func (c *careCloudClientImpl) CreateCustomer(ctx context.Context, token string, payload *model.CustomerPayload) (json.RawMessage, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(c.url("/customers"))
	if err != nil {
		log.Printf("carecloud create customer: %v", err)
		return nil, apperr.Remote(careCloudErrMsg)
	}
	if resp.IsError() {
		var body apiError
		if err := json.Unmarshal(resp.Body(), &body); err == nil &&
			len(body.Error.ErrorData.InvalidParams) > 0 &&
			body.Error.ErrorData.InvalidParams[0].Message == "Contact source already exists" {
			return nil, apperr.Conflict("Customer already exists")
		}
		log.Printf("carecloud create customer: status %d", resp.StatusCode())
		return nil, apperr.Remote(careCloudErrMsg)
	}
	return json.RawMessage(resp.Body()), nil
}

// UpdateCustomer puts the mapped customer onto an existing CRM record.
// A 204 answer has no body; it is returned as (nil, nil) and rendered
// as an empty success downstream.
func (c *careCloudClientImpl) UpdateCustomer(ctx context.Context, token string, customerID string, payload *model.CustomerPayload) (json.RawMessage, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put(c.url("/customers/" + customerID))
	if err != nil {
		log.Printf("carecloud update customer: %v", err)
		return nil, apperr.Remote(careCloudErrMsg)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}
	if resp.IsError() {
		log.Printf("carecloud update customer: status %d", resp.StatusCode())
		return nil, apperr.Remote(careCloudErrMsg)
	}
	return json.RawMessage(resp.Body()), nil
}

func (c *careCloudClientImpl) SendPurchase(ctx context.Context, token string, payload *model.PurchasePayload) (json.RawMessage, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(c.url("/purchases/actions/send-purchase"))
	if err != nil {
		log.Printf("carecloud send purchase: %v", err)
		return nil, apperr.Remote("Failed request on CareCloud")
	}
	if resp.IsError() {
		log.Printf("carecloud send purchase: status %d", resp.StatusCode())
		return nil, apperr.Remote("Failed request on CareCloud")
	}

	var body purchaseResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		log.Printf("carecloud send purchase: decode: %v", err)
		return nil, apperr.Remote("Failed request on CareCloud")
	}
	return body.Data, nil
}

// FindCustomerID resolves the CRM customer behind an e-commerce entity
// through the customer-source-records mapping table.
func (c *careCloudClientImpl) FindCustomerID(ctx context.Context, token string, externalID int) (string, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetQueryParams(map[string]string{
			"customer_source_id": c.cfg.CustomerSourceID,
			"external_id":        strconv.Itoa(externalID),
		}).
		Get(c.url("/customer-source-records"))
	if err != nil {
		log.Printf("carecloud source records: %v", err)
		return "", apperr.Remote(careCloudErrMsg)
	}
	if resp.IsError() {
		log.Printf("carecloud source records: status %d", resp.StatusCode())
		return "", apperr.Remote(careCloudErrMsg)
	}

	var body sourceRecordsResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		log.Printf("carecloud source records: decode: %v", err)
		return "", apperr.Remote(careCloudErrMsg)
	}
	if len(body.Data.CustomerSourceRecords) == 0 {
		log.Printf("carecloud source records: no record for external id %d", externalID)
		return "", apperr.Remote(careCloudErrMsg)
	}
	return body.Data.CustomerSourceRecords[0].CustomerID, nil
}

// GetCurrencyID scans the full currency list for the given code. The
// list is re-fetched per call; no caching.
func (c *careCloudClientImpl) GetCurrencyID(ctx context.Context, token string, currencyCode string) (string, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		Get(c.url("/currencies"))
	if err != nil {
		log.Printf("carecloud currencies: %v", err)
		return "", apperr.Remote(careCloudErrMsg)
	}
	if resp.IsError() {
		log.Printf("carecloud currencies: status %d", resp.StatusCode())
		return "", apperr.Remote(careCloudErrMsg)
	}

	var body currenciesResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		log.Printf("carecloud currencies: decode: %v", err)
		return "", apperr.Remote(careCloudErrMsg)
	}
	for _, currency := range body.Data.Currencies {
		if currency.Code == currencyCode {
			return currency.CurrencyID, nil
		}
	}
	return "", apperr.Validation("Bad request")
}
