// Package docs holds the generated OpenAPI document served at /swagger.
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
        "/health": {
            "get": {
                "summary": "Readiness check",
                "responses": {"200": {"description": "OK"}, "503": {"description": "dependency unavailable"}}
            }
        },
        "/posts": {
            "get": {
                "summary": "List published posts",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"},
                    {"name": "tag", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Create a post (admin)",
                "responses": {"201": {"description": "Created"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/posts/{id}": {
            "get": {
                "summary": "Get a post",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/posts/{id}/access": {
            "post": {
                "summary": "Exchange a password for a content access token",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "token, empty string on denial"}}
            }
        },
        "/posts/{id}/content": {
            "get": {
                "summary": "Read post body rendered to HTML, token-gated when protected",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "Authorization", "in": "header", "type": "string", "description": "Bearer content access token"}
                ],
                "responses": {"200": {"description": "content, empty string on denial or unknown id"}}
            }
        },
        "/posts/{id}/markdown": {
            "post": {
                "summary": "Upload post markdown (admin, multipart field: file)",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "content_path"}, "404": {"description": "Not Found"}}
            }
        },
        "/auth/login": {
            "post": {
                "summary": "Login",
                "responses": {"200": {"description": "session token"}, "401": {"description": "invalid credentials"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Blog API",
	Description:      "Content publishing backend with password-gated markdown bodies.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
