// Package docs registers the OpenAPI description of the blog routes with swag.
// It is maintained by hand alongside the handler annotations.
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
        "/": {
            "get": {
                "produces": ["text/html"],
                "tags": ["blog"],
                "summary": "Home page",
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}},
                    "503": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        },
        "/about": {
            "get": {
                "produces": ["text/html"],
                "tags": ["blog"],
                "summary": "About page",
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}}
                }
            }
        },
        "/contact": {
            "get": {
                "produces": ["text/html"],
                "tags": ["contact"],
                "summary": "Contact form",
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["contact"],
                "summary": "Send a contact message",
                "parameters": [
                    {"type": "string", "description": "Sender name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Sender email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Sender phone", "name": "phone", "in": "formData", "required": true},
                    {"type": "string", "description": "Message body", "name": "message", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "HTML page with confirmation", "schema": {"type": "string"}},
                    "400": {"description": "HTML page with validation error", "schema": {"type": "string"}},
                    "409": {"description": "HTML page, phone or email already used", "schema": {"type": "string"}},
                    "503": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["text/html"],
                "tags": ["admin"],
                "summary": "Admin dashboard",
                "responses": {
                    "200": {"description": "Dashboard, or login form when anonymous", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["admin"],
                "summary": "Admin login",
                "parameters": [
                    {"type": "string", "description": "Admin username", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Admin password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "303": {"description": "Redirect to /dashboard", "schema": {"type": "string"}},
                    "401": {"description": "Login form with error", "schema": {"type": "string"}}
                }
            }
        },
        "/delete/{id}": {
            "get": {
                "tags": ["admin"],
                "summary": "Delete a post",
                "parameters": [
                    {"type": "string", "description": "Post id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "303": {"description": "Redirect to /dashboard", "schema": {"type": "string"}}
                }
            },
            "post": {
                "tags": ["admin"],
                "summary": "Delete a post",
                "parameters": [
                    {"type": "string", "description": "Post id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "303": {"description": "Redirect to /dashboard", "schema": {"type": "string"}}
                }
            }
        },
        "/edit/{id}": {
            "get": {
                "produces": ["text/html"],
                "tags": ["admin"],
                "summary": "Post editor",
                "parameters": [
                    {"type": "string", "description": "Post id, or 0 / new for a new post", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Editor page", "schema": {"type": "string"}},
                    "400": {"description": "Malformed id", "schema": {"type": "string"}},
                    "404": {"description": "No such post", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["admin"],
                "summary": "Create or update a post",
                "parameters": [
                    {"type": "string", "description": "Post id, or 0 / new for a new post", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Title", "name": "etitle", "in": "formData", "required": true},
                    {"type": "string", "description": "Subtitle", "name": "esubtitle", "in": "formData", "required": true},
                    {"type": "string", "description": "Slug", "name": "epostslug", "in": "formData", "required": true},
                    {"type": "string", "description": "Content", "name": "econtent", "in": "formData", "required": true}
                ],
                "responses": {
                    "303": {"description": "Redirect to /edit/{id} of the saved post", "schema": {"type": "string"}},
                    "400": {"description": "Editor with validation error", "schema": {"type": "string"}},
                    "404": {"description": "No such post", "schema": {"type": "string"}},
                    "409": {"description": "Editor with uniqueness error", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        },
        "/logout": {
            "get": {
                "tags": ["admin"],
                "summary": "Admin logout",
                "responses": {
                    "303": {"description": "Redirect to /dashboard", "schema": {"type": "string"}}
                }
            }
        },
        "/post/{slug}": {
            "get": {
                "produces": ["text/html"],
                "tags": ["blog"],
                "summary": "Read a post",
                "parameters": [
                    {"type": "string", "description": "Post slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}},
                    "404": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}
                },
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "blogcms",
	Description:      "Server-rendered blog with a single-admin dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
