package model

// Request bodies for the CareCloud enterprise interface. Field names
// and nesting must match the CRM schema exactly.

type CareCloudAddress struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	Zip      string `json:"zip"`
	City     string `json:"city"`
}

type PersonalInformation struct {
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	Phone      int64            `json:"phone"`
	LanguageID string           `json:"language_id"`
	Address    CareCloudAddress `json:"address"`
}

type CustomerSource struct {
	CustomerSourceID string `json:"customer_source_id"`
	ExternalID       int    `json:"external_id"`
}

type CustomerBody struct {
	PersonalInformation PersonalInformation `json:"personal_information"`
}

type CustomerPayload struct {
	Customer       CustomerBody   `json:"customer"`
	CustomerSource CustomerSource `json:"customer_source"`
	Autologin      bool           `json:"autologin"`
}

type PluID struct {
	ListCode string `json:"list_code"`
	Code     string `json:"code"`
}

type BillItem struct {
	PluIDs             []PluID `json:"plu_ids"`
	PluName            string  `json:"plu_name"`
	CategoryPluID      int     `json:"category_plu_id"`
	VatRate            float64 `json:"vat_rate"`
	Quantity           float64 `json:"quantity"`
	PaidAmount         float64 `json:"paid_amount"`
	Price              float64 `json:"price"`
	BillItemID         int     `json:"bill_item_id"`
	LoyaltyOff         bool    `json:"loyalty_off"`
	PurchaseItemTypeID string  `json:"purchase_item_type_id"`
}

type Bill struct {
	Fiscal         bool       `json:"fiscal"`
	PurchaseTypeID string     `json:"purchase_type_id"`
	Canceled       bool       `json:"canceled"`
	PaymentType    string     `json:"payment_type"`
	BillID         int        `json:"bill_id"`
	PaymentTime    string     `json:"payment_time"`
	CurrencyID     string     `json:"currency_id"`
	TotalPrice     float64    `json:"total_price"`
	BillItems      []BillItem `json:"bill_items"`
}

type PurchasePayload struct {
	StoreID        string `json:"store_id"`
	CashdeskNumber string `json:"cashdesk_number"`
	CustomerID     string `json:"customer_id"`
	Bill           Bill   `json:"bill"`
}
