// Package docs holds the generated OpenAPI document served at
// /swagger. Code generated by swag; edits belong in the handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List a catalog page",
                "description": "Filtered, sorted and paginated slice of the catalog. Changing query or sort implies page 1.",
                "parameters": [
                    {"type": "string", "description": "Name substring filter (case-insensitive)", "name": "query", "in": "query"},
                    {"type": "string", "enum": ["newest", "oldest", "priceLowToHigh", "priceHighToLow", "nameAtoZ", "nameZtoA"], "description": "Sort key", "name": "sort", "in": "query"},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "string", "enum": ["ar", "en"], "description": "Locale driving name collation", "name": "locale", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductPageResult"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get a product with related items",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "enum": ["ar", "en"], "description": "Locale for localized fields", "name": "locale", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductDetailResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "catalog.Pager": {
            "type": "object",
            "properties": {
                "pages": {"type": "array", "items": {"type": "integer"}},
                "ellipsis": {"type": "boolean"},
                "lastPage": {"type": "integer"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handlers.ImageResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "url": {"type": "string"},
                "width": {"type": "integer"},
                "height": {"type": "integer"}
            }
        },
        "handlers.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "start": {"type": "integer"},
                "end": {"type": "integer"}
            }
        },
        "handlers.ProductDetailResult": {
            "type": "object",
            "properties": {
                "product": {"$ref": "#/definitions/handlers.ProductResponse"},
                "related": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}}
            }
        },
        "handlers.ProductPageResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}},
                "meta": {"$ref": "#/definitions/handlers.Meta"},
                "pager": {"$ref": "#/definitions/catalog.Pager"}
            }
        },
        "handlers.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "url": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "sale": {"type": "number"},
                "effective_price": {"type": "number"},
                "images": {"type": "array", "items": {"$ref": "#/definitions/handlers.ImageResponse"}},
                "in_stock": {"type": "boolean"},
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "whatsapp_url": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Al-Andalus Library Catalog API",
	Description:      "Read-only catalog API behind the bilingual storefront.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
