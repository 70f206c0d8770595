// Package docs registers the OpenAPI document served at /v1/swagger.
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
    "paths": {
        "/api/contact": {
            "post": {
                "description": "Relay a contact form submission to the business by email. Public endpoint. With no relay credentials configured the submission is accepted and reported as simulated.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit Contact Form",
                "parameters": [
                    {
                        "description": "Contact Form Data",
                        "name": "contact",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.ContactSubmission"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.OKResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ClientError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ServerError"}}
                }
            }
        },
        "/v1/content/home": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Resolved front page content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.HomeContent"}}
                }
            }
        },
        "/v1/content/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Resolved services page content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ServicesContent"}}
                }
            }
        },
        "/v1/content/services/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "One service detail page by slug",
                "parameters": [
                    {"type": "string", "description": "Service page slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ServicePage"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ClientError"}}
                }
            }
        },
        "/v1/content/references": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Resolved reference portfolio page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ReferencesPage"}}
                }
            }
        },
        "/v1/content/references/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "One project reference by slug",
                "parameters": [
                    {"type": "string", "description": "Reference slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ReferenceItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ClientError"}}
                }
            }
        },
        "/v1/content/contact": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Resolved contact page content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ContactContent"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ContactSubmission": {
            "type": "object",
            "required": ["name", "email", "phone", "siteLocationText", "message"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "company": {"type": "string"},
                "siteLocationText": {"type": "string"},
                "siteLocation": {"type": "string", "description": "Deprecated alias of siteLocationText"},
                "squareMeters": {"type": "number", "minimum": 0},
                "message": {"type": "string"},
                "coords": {"$ref": "#/definitions/domain.GeoCoordinate"}
            }
        },
        "domain.GeoCoordinate": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lng": {"type": "number"}
            }
        },
        "domain.HomeContent": {"type": "object"},
        "domain.ServicesContent": {"type": "object"},
        "domain.ServicePage": {"type": "object"},
        "domain.ReferencesPage": {"type": "object"},
        "domain.ReferenceItem": {"type": "object"},
        "domain.ContactContent": {"type": "object"},
        "response.OKResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "simulated": {"type": "boolean"}
            }
        },
        "response.ClientError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "response.ServerError": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "error": {}
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
	Title:            "PSBL Site Backend API",
	Description:      "Content resolution and contact relay for the PSBL marketing site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
