// Package docs registers the swagger documents served at /swagger/*any.
// Keep in sync with the @-annotations on the handlers in cmd/.
package docs

import "github.com/swaggo/swag"

const productsTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "parameters": [
                    {"type": "string", "description": "category filter", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/product.Product"}}}
                }
            }
        },
        "/products/meta/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product",
                "parameters": [
                    {"type": "string", "description": "product id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/product.Product"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.HTTPError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "not found"},
                "details": {"type": "array", "items": {"type": "string"}}
            }
        },
        "product.Product": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "array", "items": {"type": "string"}},
                "price": {"type": "number", "example": 8.5},
                "category": {"type": "string"},
                "ingredients": {"type": "array", "items": {"type": "string"}},
                "available": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    }
}`

const ordersTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List all orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Create order",
                "parameters": [
                    {"description": "order", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/order.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/orders/user/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders of a user",
                "parameters": [
                    {"type": "string", "description": "user id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get order",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Order"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/orders/{id}/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get order items",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/order.Item"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.HTTPError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "order not found"},
                "details": {"type": "array", "items": {"type": "string"}}
            }
        },
        "order.Item": {
            "type": "object",
            "properties": {
                "product": {"type": "string", "example": "1"},
                "quantity": {"type": "integer", "example": 2},
                "price": {"type": "number", "example": 8.5}
            }
        },
        "order.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.Item"}},
                "customerName": {"type": "string", "example": "João Silva"},
                "customerPhone": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "order.Order": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "user": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.Item"}},
                "totalAmount": {"type": "number", "example": 24.5},
                "status": {"type": "string", "example": "pending"},
                "customerName": {"type": "string"},
                "customerPhone": {"type": "string"},
                "notes": {"type": "string"},
                "orderNumber": {"type": "string", "example": "#0001"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    }
}`

var ProductsInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "cafezinho product-service",
	Description:      "Read-only coffee shop catalog.",
	InfoInstanceName: "products",
	SwaggerTemplate:  productsTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var OrdersInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "cafezinho order-service",
	Description:      "Order creation and lookup.",
	InfoInstanceName: "orders",
	SwaggerTemplate:  ordersTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(ProductsInfo.InstanceName(), ProductsInfo)
	swag.Register(OrdersInfo.InstanceName(), OrdersInfo)
}
