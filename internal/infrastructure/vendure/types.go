package vendure

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Defaults used when the Shop API omits a field
const (
	DefaultUserID    = "vendure-user"
	DefaultOrderCode = "UNKNOWN"
)

// graphQLRequest is the body of a GraphQL-over-HTTP POST
type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// GraphQLError is one entry of a response's errors array
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// errorResult is the union member Vendure returns for expected failures
type errorResult struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func (e errorResult) err() error {
	if e.ErrorCode == "" {
		return nil
	}
	return fmt.Errorf("%s: %s", e.ErrorCode, e.Message)
}

type signInData struct {
	Login *struct {
		ID string `json:"id"`
		errorResult
	} `json:"login"`
}

type collectionsData struct {
	Collections struct {
		Items []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Slug string `json:"slug"`
		} `json:"items"`
	} `json:"collections"`
}

type productsData struct {
	Products struct {
		Items []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Variants []struct {
				ID           string          `json:"id"`
				PriceWithTax decimal.Decimal `json:"priceWithTax"`
			} `json:"variants"`
		} `json:"items"`
	} `json:"products"`
}

type orderFields struct {
	ID           string              `json:"id"`
	Code         string              `json:"code"`
	State        string              `json:"state"`
	TotalWithTax decimal.NullDecimal `json:"totalWithTax"`
}

type activeOrderData struct {
	ActiveOrder *orderFields `json:"activeOrder"`
}

type addItemData struct {
	AddItemToOrder *struct {
		orderFields
		errorResult
	} `json:"addItemToOrder"`
}

type placeOrderData struct {
	PlaceOrder *struct {
		orderFields
		errorResult
	} `json:"placeOrder"`
}

type orderByCodeData struct {
	OrderByCode *orderFields `json:"orderByCode"`
}

type activeCustomerData struct {
	ActiveCustomer *struct {
		ID           string  `json:"id"`
		EmailAddress string  `json:"emailAddress"`
		FirstName    *string `json:"firstName"`
		LastName     *string `json:"lastName"`
	} `json:"activeCustomer"`
}
