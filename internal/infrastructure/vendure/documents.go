package vendure

// Document is a named GraphQL operation. Name doubles as the operation name
// sent over the wire and must match the operation declared in Source.
type Document struct {
	Name   string
	Source string
}

// String returns the operation name
func (d Document) String() string {
	return d.Name
}

var SignInDocument = Document{
	Name: "SignInDocument",
	Source: `mutation SignInDocument($email: String!, $password: String!) {
  login(username: $email, password: $password) {
    ... on CurrentUser { id identifier }
    ... on ErrorResult { errorCode message }
  }
}`,
}

var CollectionsDocument = Document{
	Name: "CollectionsDocument",
	Source: `query CollectionsDocument {
  collections { items { id name slug } }
}`,
}

var ProductsDocument = Document{
	Name: "ProductsDocument",
	Source: `query ProductsDocument {
  products { items { id name variants { id priceWithTax } } }
}`,
}

var ActiveOrderDocument = Document{
	Name: "ActiveOrderDocument",
	Source: `query ActiveOrderDocument {
  activeOrder { id code totalWithTax }
}`,
}

var AddItemToOrderDocument = Document{
	Name: "AddItemToOrderDocument",
	Source: `mutation AddItemToOrderDocument($variantId: ID!, $quantity: Int!) {
  addItemToOrder(productVariantId: $variantId, quantity: $quantity) {
    ... on Order { id totalWithTax }
    ... on ErrorResult { errorCode message }
  }
}`,
}

var PlaceOrderDocument = Document{
	Name: "PlaceOrderDocument",
	Source: `mutation PlaceOrderDocument {
  placeOrder: transitionOrderToState(state: "ArrangingPayment") {
    ... on Order { id code state }
    ... on ErrorResult { errorCode message }
  }
}`,
}

var OrderByCodeDocument = Document{
	Name: "OrderByCodeDocument",
	Source: `query OrderByCodeDocument($code: String!) {
  orderByCode(code: $code) { id code state }
}`,
}

var ActiveCustomerDocument = Document{
	Name: "ActiveCustomerDocument",
	Source: `query ActiveCustomerDocument {
  activeCustomer { id emailAddress firstName lastName }
}`,
}
