// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "bearer": {"type": "apiKey", "name": "Authorization", "in": "header"},
        "orderPassword": {"type": "apiKey", "name": "X-Order-Password", "in": "header"}
    },
    "paths": {
        "/orders": {
            "get": {"summary": "List orders (staff)", "tags": ["orders"], "security": [{"bearer": []}],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "paymentStatus", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "trashed", "in": "query", "type": "boolean"},
                    {"name": "from", "in": "query", "type": "string", "format": "date"},
                    {"name": "to", "in": "query", "type": "string", "format": "date"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "page of orders"}}},
            "post": {"summary": "Place an order", "tags": ["orders"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OrderRequest"}}],
                "responses": {"201": {"description": "created"}, "400": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/orders/lookup": {
            "get": {"summary": "Find orders by phone or name", "tags": ["orders"],
                "parameters": [
                    {"name": "phone", "in": "query", "type": "string"},
                    {"name": "name", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "matching orders"}, "404": {"$ref": "#/responses/Error"}, "429": {"$ref": "#/responses/Error"}}}
        },
        "/orders/mine": {
            "get": {"summary": "Orders of the logged-in account", "tags": ["orders"], "security": [{"bearer": []}],
                "responses": {"200": {"description": "orders"}}}
        },
        "/orders/export": {
            "get": {"summary": "Export orders as xlsx or json (staff)", "tags": ["orders"], "security": [{"bearer": []}],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["xlsx", "json"]}],
                "responses": {"200": {"description": "file"}}}
        },
        "/orders/{id}": {
            "get": {"summary": "Get an order", "tags": ["orders"], "security": [{"bearer": []}, {"orderPassword": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "order"}, "403": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}},
            "patch": {"summary": "Edit an order while pending", "tags": ["orders"], "security": [{"bearer": []}, {"orderPassword": []}],
                "parameters": [{"$ref": "#/parameters/id"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OrderRequest"}}],
                "responses": {"200": {"description": "order"}, "409": {"$ref": "#/responses/Error"}}},
            "delete": {"summary": "Cancel an order", "tags": ["orders"], "security": [{"bearer": []}, {"orderPassword": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"204": {"description": "cancelled"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/orders/{id}/status": {
            "patch": {"summary": "Change the fulfillment status (staff)", "tags": ["orders"], "security": [{"bearer": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "transition result"}}}
        },
        "/orders/{id}/payment-status": {
            "patch": {"summary": "Change the payment status (staff)", "tags": ["orders"], "security": [{"bearer": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "transition result"}}}
        },
        "/orders/{id}/fulfillment": {
            "patch": {"summary": "Set, clear or keep fulfillment dates (staff)", "tags": ["orders"], "security": [{"bearer": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "order"}}}
        },
        "/orders/{id}/sms": {
            "get": {"summary": "SMS history of an order (staff)", "tags": ["sms"], "security": [{"bearer": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "log"}}},
            "post": {"summary": "Send an SMS (staff)", "tags": ["sms"], "security": [{"bearer": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"201": {"description": "logged attempt"}, "502": {"$ref": "#/responses/Error"}}}
        },
        "/customers": {
            "get": {"summary": "List customers (staff)", "tags": ["customers"], "security": [{"bearer": []}],
                "responses": {"200": {"description": "page of customers"}}},
            "post": {"summary": "Create a customer (staff)", "tags": ["customers"], "security": [{"bearer": []}],
                "responses": {"201": {"description": "created"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/customers/import": {
            "post": {"summary": "Import customers from xlsx (staff)", "tags": ["customers"], "security": [{"bearer": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [{"name": "file", "in": "formData", "type": "file", "required": true}],
                "responses": {"200": {"description": "import report"}}}
        },
        "/settings": {
            "get": {"summary": "Current prices", "tags": ["settings"], "responses": {"200": {"description": "pricing"}}},
            "post": {"summary": "Update prices (staff)", "tags": ["settings"], "security": [{"bearer": []}],
                "responses": {"200": {"description": "pricing"}}}
        },
        "/auth/login": {
            "post": {"summary": "Log in", "tags": ["auth"], "responses": {"200": {"description": "token"}, "401": {"$ref": "#/responses/Error"}}}
        },
        "/auth/register": {
            "post": {"summary": "Create an account", "tags": ["auth"], "responses": {"201": {"description": "created"}, "409": {"$ref": "#/responses/Error"}}}
        }
    },
    "parameters": {
        "id": {"name": "id", "in": "path", "required": true, "type": "integer", "format": "int64"}
    },
    "responses": {
        "Error": {"description": "error", "schema": {"$ref": "#/definitions/Error"}}
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {"code": {"type": "integer"}, "message": {"type": "string"}}
        },
        "OrderRequest": {
            "type": "object",
            "required": ["customerName", "phone", "address1"],
            "properties": {
                "customerName": {"type": "string"},
                "phone": {"type": "string"},
                "postalCode": {"type": "string"},
                "address1": {"type": "string"},
                "address2": {"type": "string"},
                "specialRequests": {"type": "string"},
                "recipientName": {"type": "string"},
                "recipientPhone": {"type": "string"},
                "recipientPostalCode": {"type": "string"},
                "recipientAddress1": {"type": "string"},
                "recipientAddress2": {"type": "string"},
                "depositorName": {"type": "string"},
                "depositorDiffers": {"type": "boolean"},
                "smallBoxQuantity": {"type": "integer"},
                "largeBoxQuantity": {"type": "integer"},
                "wrappingQuantity": {"type": "integer"},
                "orderPassword": {"type": "string"},
                "totalAmount": {"type": "integer", "format": "int64"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "snackshop API",
	Description:      "Orders, customers and settings of the snack shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
