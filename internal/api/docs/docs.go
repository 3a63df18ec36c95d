// Package docs registers the OpenAPI document for the records API
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "API status with the latest database check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/records": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Create a record",
                "parameters": [
                    {
                        "description": "Record fields",
                        "name": "record",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/records.CreateRecordRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "The created page", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/records.errorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/records.errorBody"}}
                }
            }
        },
        "/records/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Get a record",
                "parameters": [
                    {"type": "string", "description": "Record ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "The record page, or null when no record has the id", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/records.errorBody"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Update a record",
                "parameters": [
                    {"type": "string", "description": "Record ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to change",
                        "name": "record",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/records.UpdateRecordRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "The updated page, or an empty body when no record has the id", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/records.errorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/records.errorBody"}}
                }
            },
            "delete": {
                "tags": ["records"],
                "summary": "Delete a record",
                "parameters": [
                    {"type": "string", "description": "Record ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/records.errorBody"}}
                }
            }
        },
        "/records/{id}/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "List the operations performed on a record",
                "parameters": [
                    {"type": "string", "description": "Record ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/audit.Entry"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/records.errorBody"}}
                }
            }
        }
    },
    "definitions": {
        "audit.Entry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "operation": {"type": "string", "enum": ["create", "read", "update", "delete"]},
                "record_id": {"type": "string"},
                "page_id": {"type": "string"},
                "outcome": {"type": "string", "enum": ["succeeded", "not_found", "failed"]},
                "error": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "records.CreateRecordRequest": {
            "type": "object",
            "properties": {
                "company": {"type": "string"},
                "campaign": {"type": "string"},
                "description": {"type": "string"},
                "plannedDate": {"type": "string"},
                "where": {"type": "string"},
                "language": {"type": "string"},
                "languageColor": {"type": "string"},
                "content": {"type": "string"},
                "imageFile": {"$ref": "#/definitions/records.ImageFile"},
                "imageContent": {"type": "string"}
            }
        },
        "records.ImageFile": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "records.UpdateRecordRequest": {
            "type": "object",
            "properties": {
                "company": {"type": "string"},
                "campaign": {"type": "string"},
                "description": {"type": "string"},
                "plannedDate": {"type": "string"},
                "where": {"type": "string"},
                "language": {"type": "string"},
                "content": {"type": "string"},
                "imageFile": {"$ref": "#/definitions/records.ImageFile"},
                "imageContent": {"type": "string"}
            }
        },
        "records.errorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Notion Records API",
	Description:      "CRUD access to the records of a Notion database, addressed by their numeric ID column.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
