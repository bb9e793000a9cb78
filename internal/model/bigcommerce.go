package model

import "encoding/xml"

// Records decoded from the BigCommerce v2 API, which answers in XML.

// Resource is a sub-resource reference, e.g. a customer's address list.
type Resource struct {
	Link string `xml:"link"`
}

type Customer struct {
	XMLName   xml.Name `xml:"customer"`
	ID        int      `xml:"id"`
	FirstName string   `xml:"first_name"`
	LastName  string   `xml:"last_name"`
	Email     string   `xml:"email"`
	Phone     string   `xml:"phone"`
	Addresses Resource `xml:"addresses"`
}

type Address struct {
	Street1 string `xml:"street_1"`
	Street2 string `xml:"street_2"`
	Zip     string `xml:"zip"`
	City    string `xml:"city"`
}

type AddressList struct {
	XMLName xml.Name  `xml:"addresses"`
	Items   []Address `xml:"address"`
}

type Order struct {
	XMLName             xml.Name `xml:"order"`
	ID                  int      `xml:"id"`
	CustomerID          int      `xml:"customer_id"`
	DateCreated         string   `xml:"date_created"`
	PaymentStatus       string   `xml:"payment_status"`
	DefaultCurrencyCode string   `xml:"store_default_currency_code"`
	TotalIncTax         float64  `xml:"total_inc_tax"`
	Products            Resource `xml:"products"`
}

// Product is an order line item.
type Product struct {
	ID          int     `xml:"id"`
	Name        string  `xml:"name"`
	Quantity    float64 `xml:"quantity"`
	PriceExTax  float64 `xml:"price_ex_tax"`
	PriceIncTax float64 `xml:"price_inc_tax"`
	TotalIncTax float64 `xml:"total_inc_tax"`
}

type ProductList struct {
	XMLName xml.Name  `xml:"products"`
	Items   []Product `xml:"product"`
}
