package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable Optimizer API",
        "description": "Computes conflict-free timetables by assigning one exercise slot per requested course activity.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Timetables", "description": "Timetable optimization and export"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/timetables/{userId}/optimize": {
            "post": {
                "tags": ["Timetables"],
                "summary": "Compute an optimized timetable",
                "description": "Assigns one exercise slot per requested activity so that no slots overlap and all stated requirements hold. Infeasible instances return an empty schedule with feasible=false.",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OptimizeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetables/{userId}/export": {
            "post": {
                "tags": ["Timetables"],
                "summary": "Export an optimized timetable as CSV or PDF",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OptimizeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rendered file"},
                    "409": {"description": "No feasible timetable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "TimeOfDay": {
            "type": "string",
            "example": "08:00:00"
        },
        "Subject": {
            "type": "object",
            "properties": {
                "subjectId": {"type": "integer"},
                "code": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "Slot": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "start": {"$ref": "#/definitions/TimeOfDay"},
                "durationMinutes": {"type": "integer"},
                "day": {"type": "integer", "minimum": 0, "maximum": 6},
                "location": {"type": "string"},
                "kind": {"type": "string", "enum": ["P", "LV", "AV"]},
                "subject": {"$ref": "#/definitions/Subject"}
            }
        },
        "BreakWindow": {
            "type": "object",
            "properties": {
                "start": {"$ref": "#/definitions/TimeOfDay"},
                "durationMinutes": {"type": "integer"},
                "day": {"type": "integer"}
            }
        },
        "ActivityRequest": {
            "type": "object",
            "properties": {
                "subject": {"$ref": "#/definitions/Subject"},
                "start": {"$ref": "#/definitions/TimeOfDay"},
                "end": {"$ref": "#/definitions/TimeOfDay"},
                "day": {"type": "integer"}
            }
        },
        "Requirements": {
            "type": "object",
            "properties": {
                "excludedDays": {"type": "array", "items": {"type": "integer"}},
                "start": {"$ref": "#/definitions/TimeOfDay"},
                "end": {"$ref": "#/definitions/TimeOfDay"},
                "breaks": {"type": "array", "items": {"$ref": "#/definitions/BreakWindow"}},
                "requests": {"type": "array", "items": {"$ref": "#/definitions/ActivityRequest"}},
                "minimizeGaps": {"type": "boolean"}
            }
        },
        "OptimizeRequest": {
            "type": "object",
            "required": ["userId"],
            "properties": {
                "userId": {"type": "integer"},
                "schedule": {
                    "type": "object",
                    "properties": {
                        "userId": {"type": "integer"},
                        "slots": {"type": "array", "items": {"$ref": "#/definitions/Slot"}}
                    }
                },
                "requirements": {"$ref": "#/definitions/Requirements"},
                "candidates": {"type": "array", "items": {"$ref": "#/definitions/Slot"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
