// Package swagger holds the hand-maintained OpenAPI document for the sync
// API, registered with swag so the fiber swagger handler can serve it. Keep
// it in step with the handler annotations when routes change.
package swagger

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
        "/sync/attributes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Get Attribute Map",
                "responses": {
                    "200": {
                        "description": "Attribute Map",
                        "schema": {"$ref": "#/definitions/models.AttributeMap"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Update Attribute Map",
                "parameters": [
                    {
                        "description": "Attribute Map",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.AttributeMap"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Saved",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "400": {
                        "description": "Invalid Attribute Map",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/sync/manual": {
            "post": {
                "description": "Consume one chunk of records; call repeatedly until added equals total_items. Set initial on the first call.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Run Manual Sync Chunk",
                "parameters": [
                    {
                        "description": "Chunk options",
                        "name": "request",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/models.ManualRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Chunk Report",
                        "schema": {"$ref": "#/definitions/models.ChunkReport"}
                    }
                }
            }
        },
        "/sync/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Get API Settings",
                "responses": {
                    "200": {
                        "description": "API Settings",
                        "schema": {"$ref": "#/definitions/models.ApiSettings"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Update API Settings",
                "parameters": [
                    {
                        "description": "API Settings",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ApiSettings"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Saved",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "400": {
                        "description": "Invalid Settings",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/sync/test-connection": {
            "post": {
                "description": "Call the configured API and report status and decoded payload without creating content.",
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Test API Connection",
                "responses": {
                    "200": {
                        "description": "Connection Report",
                        "schema": {"$ref": "#/definitions/models.ConnectionReport"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/sync/test-record": {
            "post": {
                "description": "Fetch, map, and commit exactly one record.",
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Test Single Record Sync",
                "responses": {
                    "200": {
                        "description": "Test Outcome",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        }
    },
    "definitions": {
        "models.ApiSettings": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "method": {"type": "string"},
                "timeout_seconds": {"type": "integer"},
                "params": {"type": "array", "items": {"$ref": "#/definitions/models.NameValue"}},
                "headers": {"type": "array", "items": {"$ref": "#/definitions/models.NameValue"}},
                "body": {"type": "array", "items": {"$ref": "#/definitions/models.NameValue"}},
                "body_encoding": {"type": "string"}
            }
        },
        "models.AttributeMap": {
            "type": "object",
            "properties": {
                "title_path": {"type": "string"},
                "content_path": {"type": "string"},
                "category_path": {"type": "string"},
                "tag_path": {"type": "string"},
                "custom_fields": {"type": "array", "items": {"$ref": "#/definitions/models.CustomFieldMap"}},
                "default_author_id": {"type": "integer"},
                "update_existing": {"type": "boolean"},
                "sync_interval_minutes": {"type": "integer"}
            }
        },
        "models.ChunkReport": {
            "type": "object",
            "properties": {
                "added": {"type": "integer"},
                "total_items": {"type": "integer"}
            }
        },
        "models.ConnectionReport": {
            "type": "object",
            "properties": {
                "configured": {"type": "boolean"},
                "success": {"type": "boolean"},
                "status_code": {"type": "integer"},
                "message": {"type": "string"},
                "payload": {}
            }
        },
        "models.CustomFieldMap": {
            "type": "object",
            "properties": {
                "field_name": {"type": "string"},
                "source_path": {"type": "string"}
            }
        },
        "models.ManualRequest": {
            "type": "object",
            "properties": {
                "initial": {"type": "boolean"}
            }
        },
        "models.NameValue": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "value": {"type": "string"}
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
	Title:            "Post Sync API",
	Description:      "API for syncing external records into the content store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
