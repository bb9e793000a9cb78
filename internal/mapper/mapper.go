package mapper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bigcommerce-carecloud-sync/internal/config"
	"bigcommerce-carecloud-sync/internal/model"
)

// CRM-side constants required by the CareCloud purchase schema.
const (
	languageID     = "cs"
	cashdeskNumber = "1"
	paymentType    = "S"
	pluListCode    = "GLOBAL"
	pluCode        = "p2"
	categoryPluID  = 1
)

// CustomerPayload maps a BigCommerce customer and its address into the
// CareCloud customer request body. Pure; no I/O.
func CustomerPayload(customer *model.Customer, address *model.Address, customerSourceID string) *model.CustomerPayload {
	return &model.CustomerPayload{
		Customer: model.CustomerBody{
			PersonalInformation: model.PersonalInformation{
				FirstName:  customer.FirstName,
				LastName:   customer.LastName,
				Email:      customer.Email,
				Phone:      PhoneNumber(customer.Phone),
				LanguageID: languageID,
				Address: model.CareCloudAddress{
					Address1: address.Street1,
					Address2: address.Street2,
					Zip:      address.Zip,
					City:     address.City,
				},
			},
		},
		CustomerSource: model.CustomerSource{
			CustomerSourceID: customerSourceID,
			ExternalID:       customer.ID,
		},
		Autologin: false,
	}
}

// PurchasePayload maps a paid BigCommerce order into the CareCloud
// send-purchase request body. Fails only when the order's creation
// timestamp cannot be parsed.
func PurchasePayload(order *model.Order, products []model.Product, crmCustomerID, currencyID string, cfg *config.CareCloud) (*model.PurchasePayload, error) {
	paymentTime, err := PaymentTime(order.DateCreated)
	if err != nil {
		return nil, err
	}

	items := make([]model.BillItem, len(products))
	for i, product := range products {
		items[i] = model.BillItem{
			PluIDs: []model.PluID{
				{ListCode: pluListCode, Code: pluCode},
			},
			PluName:            product.Name,
			CategoryPluID:      categoryPluID,
			VatRate:            VatRate(product.PriceExTax, product.PriceIncTax),
			Quantity:           product.Quantity,
			PaidAmount:         product.TotalIncTax,
			Price:              product.PriceIncTax,
			BillItemID:         product.ID,
			LoyaltyOff:         false,
			PurchaseItemTypeID: cfg.PurchaseItemTypeID,
		}
	}

	return &model.PurchasePayload{
		StoreID:        cfg.StoreID,
		CashdeskNumber: cashdeskNumber,
		CustomerID:     crmCustomerID,
		Bill: model.Bill{
			Fiscal:         true,
			PurchaseTypeID: cfg.PurchaseTypeID,
			Canceled:       false,
			PaymentType:    paymentType,
			BillID:         order.ID,
			PaymentTime:    paymentTime,
			CurrencyID:     currencyID,
			TotalPrice:     order.TotalIncTax,
			BillItems:      items,
		},
	}, nil
}

// VatRate derives the tax rate from gross and net line prices. A zero
// net price yields 0 rather than dividing by zero.
func VatRate(priceExTax, priceIncTax float64) float64 {
	if priceExTax == 0 {
		return 0
	}
	return 100 * (priceIncTax - priceExTax) / priceExTax
}

// PhoneNumber strips the leading "+" and coerces the rest to an
// integer. Unparsable numbers become 0.
func PhoneNumber(phone string) int64 {
	number, err := strconv.ParseInt(strings.TrimPrefix(phone, "+"), 10, 64)
	if err != nil {
		return 0
	}
	return number
}

// PaymentTime reformats a BigCommerce v2 timestamp (RFC 1123 style)
// into RFC 3339 for the CRM.
func PaymentTime(dateCreated string) (string, error) {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC3339} {
		if t, err := time.Parse(layout, dateCreated); err == nil {
			return t.Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("parse order date %q", dateCreated)
}
