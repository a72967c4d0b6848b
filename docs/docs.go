// Package docs registers the OpenAPI description of the board API with swag so
// http-swagger can serve it. Keep it in step with the controller annotations.
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
        "/board": {
            "get": {
                "description": "Returns the events passing the current search and category filters. page and page_size are optional; without page_size all visible events are returned.",
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "List visible events",
                "parameters": [
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Events per page (max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/board/category": {
            "put": {
                "description": "Shows only events tagged with the category. A non-numeric category yields an empty list; an empty one clears the filter.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Set the category filter",
                "parameters": [
                    {"description": "Category id", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CategoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/board/events": {
            "post": {
                "description": "Validates the form, creates the event on the backend and redirects to its detail view via the Location header.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Submit the new-event form",
                "parameters": [
                    {"description": "Form values; category and organizer ids may be strings or numbers", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.EventForm"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request or validation_failed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: conflict (form closed or submission in progress)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: bad_gateway", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/board/filters": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Clear all filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/board/form": {
            "get": {
                "description": "Opens the authoring surface and fixes the minimum start/end time to the current minute.",
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Open the new-event form",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "tags": ["form"],
                "summary": "Close the new-event form",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/board/location": {
            "get": {
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Current navigation target",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/board/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Drain pending notifications",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/board/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Reload events and reference data from the backend",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: bad_gateway", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/board/search": {
            "put": {
                "description": "Filters event titles by case-insensitive substring, combined with the active category filter.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Set the search query",
                "parameters": [
                    {"description": "Search query", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.CategoryRequest": {
            "type": "object",
            "properties": {"category": {"type": "string"}}
        },
        "controllers.SearchRequest": {
            "type": "object",
            "properties": {"query": {"type": "string"}}
        },
        "domain.EventForm": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "startTime": {"type": "string", "example": "2030-03-10T20:00"},
                "endTime": {"type": "string", "example": "2030-03-10T23:00"},
                "categoryIds": {"type": "array", "description": "Category ids, as strings or numbers", "items": {"type": "string"}, "example": ["1", "2"]},
                "createdBy": {"type": "string", "description": "Organizer user id, as a string or number", "example": "3"}
            }
        },
        "domain.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/domain.FieldError"}}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
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
	Title:            "Events board API",
	Description:      "Filter the events list and submit new events to the events backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
