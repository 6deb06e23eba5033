// Package apidoc holds the declarative API surface descriptor: every
// endpoint's path, verb, parameters and response-status vocabulary.
// It is pure data consumed by documentation tooling and carries no
// runtime behavior; it must be kept in sync with the registered routes
// by hand (a test asserts route coverage).
package apidoc

// Parameter describes a path parameter of an operation.
type Parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Operation describes one logical API operation.
type Operation struct {
	Method      string         `json:"method"`
	Path        string         `json:"path"`
	Tag         string         `json:"tag"`
	Summary     string         `json:"summary"`
	Parameters  []Parameter    `json:"parameters,omitempty"`
	RequestBody string         `json:"requestBody,omitempty"`
	Responses   map[int]string `json:"responses"`
}

// Descriptor is the full API surface document.
type Descriptor struct {
	Title      string      `json:"title"`
	Version    string      `json:"version"`
	Operations []Operation `json:"operations"`
}

func pathID(description string) []Parameter {
	return []Parameter{{Name: "id", In: "path", Type: "string", Required: true, Description: description}}
}

// Spec returns the API surface descriptor for this service.
func Spec() Descriptor {
	return Descriptor{
		Title:   "docshelf RESTful APIs",
		Version: "1.0.0",
		Operations: []Operation{
			{
				Method: "POST", Path: "/signup", Tag: "Accounts",
				Summary:     "Register a new account",
				RequestBody: "SignupRequest",
				Responses: map[int]string{
					201: "registered user",
					400: "invalid request body",
					409: "username already in use",
					500: "internal server error",
					502: "document store error",
				},
			},
			{
				Method: "POST", Path: "/login", Tag: "Accounts",
				Summary:     "Verify account credentials",
				RequestBody: "LoginRequest",
				Responses: map[int]string{
					200: "user logged in",
					400: "invalid request body",
					401: "invalid username and/or password",
					500: "internal server error",
					502: "document store error",
				},
			},
			{
				Method: "GET", Path: "/accounts", Tag: "Accounts",
				Summary:   "List all accounts",
				Responses: map[int]string{200: "account list", 502: "document store error"},
			},

			{
				Method: "GET", Path: "/composers", Tag: "Composers",
				Summary:   "List all composers",
				Responses: map[int]string{200: "composer list", 502: "document store error"},
			},
			{
				Method: "GET", Path: "/composers/:id", Tag: "Composers",
				Parameters: pathID("composer id"),
				Summary:    "Get a composer by id",
				Responses:  map[int]string{200: "composer document", 404: "composer not found", 502: "document store error"},
			},
			{
				Method: "POST", Path: "/composers", Tag: "Composers",
				Summary:     "Create a new composer",
				RequestBody: "CreateComposerRequest",
				Responses:   map[int]string{201: "created composer", 400: "invalid request body", 502: "document store error"},
			},
			{
				Method: "PUT", Path: "/composers/:id", Tag: "Composers",
				Parameters:  pathID("composer id"),
				Summary:     "Update a composer",
				RequestBody: "UpdateComposerRequest",
				Responses:   map[int]string{200: "updated composer", 400: "invalid request body", 404: "composer not found", 502: "document store error"},
			},
			{
				Method: "DELETE", Path: "/composers/:id", Tag: "Composers",
				Parameters: pathID("composer id"),
				Summary:    "Delete a composer",
				Responses:  map[int]string{200: "deleted composer", 404: "composer not found", 502: "document store error"},
			},

			{
				Method: "GET", Path: "/persons", Tag: "Persons",
				Summary:   "List all persons",
				Responses: map[int]string{200: "person list", 502: "document store error"},
			},
			{
				Method: "GET", Path: "/persons/:id", Tag: "Persons",
				Parameters: pathID("person id"),
				Summary:    "Get a person by id",
				Responses:  map[int]string{200: "person document", 404: "person not found", 502: "document store error"},
			},
			{
				Method: "POST", Path: "/persons", Tag: "Persons",
				Summary:     "Create a new person",
				RequestBody: "CreatePersonRequest",
				Responses:   map[int]string{201: "created person", 400: "invalid request body", 502: "document store error"},
			},
			{
				Method: "PUT", Path: "/persons/:id", Tag: "Persons",
				Parameters:  pathID("person id"),
				Summary:     "Update a person",
				RequestBody: "UpdatePersonRequest",
				Responses:   map[int]string{200: "updated person", 400: "invalid request body", 404: "person not found", 502: "document store error"},
			},
			{
				Method: "DELETE", Path: "/persons/:id", Tag: "Persons",
				Parameters: pathID("person id"),
				Summary:    "Delete a person",
				Responses:  map[int]string{200: "deleted person", 404: "person not found", 502: "document store error"},
			},

			{
				Method: "GET", Path: "/customers", Tag: "Customers",
				Summary:   "List all customers",
				Responses: map[int]string{200: "customer list", 502: "document store error"},
			},
			{
				Method: "GET", Path: "/customers/:id", Tag: "Customers",
				Parameters: pathID("customer id"),
				Summary:    "Get a customer by id",
				Responses:  map[int]string{200: "customer document", 404: "customer not found", 502: "document store error"},
			},
			{
				Method: "POST", Path: "/customers", Tag: "Customers",
				Summary:     "Create a new customer",
				RequestBody: "CreateCustomerRequest",
				Responses:   map[int]string{201: "created customer", 400: "invalid request body", 502: "document store error"},
			},
			{
				Method: "PUT", Path: "/customers/:id", Tag: "Customers",
				Parameters:  pathID("customer id"),
				Summary:     "Update a customer",
				RequestBody: "UpdateCustomerRequest",
				Responses:   map[int]string{200: "updated customer", 400: "invalid request body", 404: "customer not found", 502: "document store error"},
			},
			{
				Method: "DELETE", Path: "/customers/:id", Tag: "Customers",
				Parameters: pathID("customer id"),
				Summary:    "Delete a customer",
				Responses:  map[int]string{200: "deleted customer", 404: "customer not found", 502: "document store error"},
			},
			{
				Method: "POST", Path: "/customers/:id/invoices", Tag: "Customers",
				Parameters:  pathID("customer username"),
				Summary:     "Append an invoice to a customer addressed by username",
				RequestBody: "AddInvoiceRequest",
				Responses:   map[int]string{201: "updated customer", 400: "invalid request body", 404: "customer not found", 502: "document store error"},
			},
			{
				Method: "GET", Path: "/customers/:id/invoices", Tag: "Customers",
				Parameters: pathID("customer username"),
				Summary:    "List a customer's invoices, addressed by username",
				Responses:  map[int]string{200: "invoice list", 404: "customer not found", 502: "document store error"},
			},

			{
				Method: "GET", Path: "/teams", Tag: "Teams",
				Summary:   "List all teams",
				Responses: map[int]string{200: "team list", 502: "document store error"},
			},
			{
				Method: "GET", Path: "/teams/:id", Tag: "Teams",
				Parameters: pathID("team id"),
				Summary:    "Get a team by id",
				Responses:  map[int]string{200: "team document", 404: "team not found", 502: "document store error"},
			},
			{
				Method: "POST", Path: "/teams", Tag: "Teams",
				Summary:     "Create a new team",
				RequestBody: "CreateTeamRequest",
				Responses:   map[int]string{201: "created team", 400: "invalid request body", 502: "document store error"},
			},
			{
				Method: "PUT", Path: "/teams/:id", Tag: "Teams",
				Parameters:  pathID("team id"),
				Summary:     "Update a team",
				RequestBody: "UpdateTeamRequest",
				Responses:   map[int]string{200: "updated team", 400: "invalid request body", 404: "team not found", 502: "document store error"},
			},
			{
				Method: "DELETE", Path: "/teams/:id", Tag: "Teams",
				Parameters: pathID("team id"),
				Summary:    "Delete a team",
				Responses:  map[int]string{200: "deleted team", 404: "team not found", 502: "document store error"},
			},
			{
				Method: "POST", Path: "/teams/:id/players", Tag: "Teams",
				Parameters:  pathID("team id"),
				Summary:     "Append a player to a team's roster",
				RequestBody: "AssignPlayerRequest",
				Responses:   map[int]string{201: "updated team", 400: "invalid request body", 404: "team not found", 502: "document store error"},
			},
			{
				Method: "GET", Path: "/teams/:id/players", Tag: "Teams",
				Parameters: pathID("team id"),
				Summary:    "List a team's players",
				Responses:  map[int]string{200: "player list", 404: "team not found", 502: "document store error"},
			},

			{
				Method: "GET", Path: "/health", Tag: "System",
				Summary:   "Service health check",
				Responses: map[int]string{200: "healthy", 503: "unhealthy"},
			},
			{
				Method: "GET", Path: "/api-docs", Tag: "System",
				Summary:   "API surface descriptor",
				Responses: map[int]string{200: "descriptor document"},
			},
		},
	}
}
