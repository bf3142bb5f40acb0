// Package api holds the OpenAPI document of the dashboard API served at /docs.
package api

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
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"},
        "Profile": {"type": "apiKey", "name": "X-Profile-ID", "in": "header"}
    },
    "paths": {
        "/": {
            "get": {"tags": ["General"], "summary": "API root", "responses": {"200": {"description": "OK"}}},
            "options": {"tags": ["General"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/healthz": {
            "get": {"tags": ["General"], "summary": "Get health", "responses": {"204": {"description": "No Content"}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}}},
            "options": {"tags": ["General"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/version": {
            "get": {"tags": ["General"], "summary": "API version", "responses": {"200": {"description": "OK"}}},
            "options": {"tags": ["General"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1": {
            "get": {"tags": ["v1"], "summary": "v1 API", "responses": {"200": {"description": "OK"}}},
            "options": {"tags": ["v1"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/overview": {
            "get": {"security": [{"Bearer": [], "Profile": []}], "tags": ["Overview"], "summary": "Get overview", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}, "502": {"description": "Bad Gateway"}}}
        },
        "/v1/incomes": {
            "get": {"security": [{"Bearer": [], "Profile": []}], "tags": ["Transactions"], "summary": "Get incomes", "produces": ["application/json"], "parameters": [{"type": "string", "description": "Glob the category name must match", "name": "category", "in": "query"}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}, "502": {"description": "Bad Gateway"}}}
        },
        "/v1/expenses": {
            "get": {"security": [{"Bearer": [], "Profile": []}], "tags": ["Transactions"], "summary": "Get expenses", "produces": ["application/json"], "parameters": [{"type": "string", "description": "Glob the category name must match", "name": "category", "in": "query"}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}, "502": {"description": "Bad Gateway"}}}
        },
        "/v1/wallets": {
            "get": {"security": [{"Bearer": [], "Profile": []}], "tags": ["Wallets"], "summary": "Get wallets", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}, "502": {"description": "Bad Gateway"}}}
        },
        "/v1/wallets/{id}/deposit": {
            "post": {"security": [{"Bearer": [], "Profile": []}], "tags": ["Wallets"], "summary": "Deposit", "produces": ["application/json"], "parameters": [{"type": "string", "description": "ID of the wallet", "name": "id", "in": "path", "required": true}, {"description": "Amount", "name": "mutation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.MutationEditable"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}, "404": {"description": "Not Found"}, "502": {"description": "Bad Gateway"}}}
        },
        "/v1/wallets/{id}/withdraw": {
            "post": {"security": [{"Bearer": [], "Profile": []}], "tags": ["Wallets"], "summary": "Withdraw", "produces": ["application/json"], "parameters": [{"type": "string", "description": "ID of the wallet", "name": "id", "in": "path", "required": true}, {"description": "Amount", "name": "mutation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.MutationEditable"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}, "404": {"description": "Not Found"}, "502": {"description": "Bad Gateway"}}}
        },
        "/v1/budgets": {
            "get": {"security": [{"Bearer": [], "Profile": []}], "tags": ["Budgets"], "summary": "Get budgets", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}, "502": {"description": "Bad Gateway"}}}
        },
        "/v1/activity": {
            "get": {"security": [{"Bearer": [], "Profile": []}], "tags": ["Activity"], "summary": "Get activity", "produces": ["application/json"], "parameters": [{"type": "integer", "description": "Maximum number of entries", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}, "502": {"description": "Bad Gateway"}}}
        }
    },
    "definitions": {
        "httputil.HTTPError": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "the amount must be greater than zero"}}
        },
        "v1.MutationEditable": {
            "type": "object",
            "properties": {"amount": {"type": "number", "example": 100.5}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
