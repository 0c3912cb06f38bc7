// Package docs registers the swagger document served at /swagger/index.html.
// Regenerate with `swag init` after changing handler annotations.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        },
        "AdminPassword": {
            "type": "apiKey",
            "name": "X-Admin-Password",
            "in": "header"
        }
    },
    "paths": {
        "/admin/login": {"post": {"tags": ["auth"], "summary": "Exchange the admin password for a token"}},
        "/teams": {"get": {"tags": ["teams"], "summary": "List the ten franchises"}},
        "/teams/{code}": {"get": {"tags": ["teams"], "summary": "Get one franchise"}},
        "/admin/players": {"get": {"tags": ["players"], "summary": "List a squad or all squads"}},
        "/admin/fixtures": {"get": {"tags": ["fixtures"], "summary": "List fixtures with computed status"}},
        "/admin/points": {"get": {"tags": ["points"], "summary": "Get the ranked points table"}},
        "/admin/live-match": {"get": {"tags": ["live"], "summary": "Get the live scoreboard"}},
        "/live/commentary": {"get": {"tags": ["live"], "summary": "List commentary newest first"}},
        "/live/moments": {"get": {"tags": ["live"], "summary": "List key moments newest first"}},
        "/live/sessions/{id}/dismiss": {"post": {"tags": ["live"], "summary": "Hide the new-commentary banner"}},
        "/users/sign-in": {"post": {"tags": ["community"], "summary": "Sign in a fan"}},
        "/comments": {"get": {"tags": ["community"], "summary": "List fan comments"}, "post": {"tags": ["community"], "summary": "Post a fan comment"}},
        "/chat": {"post": {"tags": ["chatbot"], "summary": "Ask the assistant"}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8088",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "IPL Cricket Hub API",
	Description:      "Teams, squads, fixtures, the points table, live commentary and the fan community.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
