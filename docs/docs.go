// Package docs holds the OpenAPI document served at /swagger/*any.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
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
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/taskflow.HealthResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "description": "Returns a bearer token valid for seven days",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/taskflow.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            }
        },
        "/api/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register",
                "parameters": [
                    {"description": "New account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/taskflow.RegisterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            }
        },
        "/api/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Ordered by due date (undated last), then priority alta > media > baja. Without a valid token the list is empty.",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "List my tasks",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Task"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Create task",
                "parameters": [
                    {"description": "Task", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.createTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/taskflow.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            }
        },
        "/api/tasks/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Only completada is mutable. Unknown or foreign ids succeed without effect.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Mark task completed or pending",
                "parameters": [
                    {"type": "integer", "description": "Task id", "name": "id", "in": "path", "required": true},
                    {"description": "Completion flag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.updateTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/taskflow.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Unknown or foreign ids succeed without effect.",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Delete task",
                "parameters": [
                    {"type": "integer", "description": "Task id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/taskflow.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            }
        },
        "/api/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List my categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create category",
                "parameters": [
                    {"description": "Category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.createCategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/taskflow.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            }
        },
        "/api/calendar/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Dated tasks of the caller as FullCalendar events. Without a valid token the list is empty.",
                "produces": ["application/json"],
                "tags": ["calendar"],
                "summary": "Calendar events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.CalendarEvent"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            }
        },
        "/api/admin/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Dashboard counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Stats"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            }
        },
        "/api/admin/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Newest registrations first",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "All users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            }
        },
        "/api/admin/all-tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Moderation view, newest first",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "All tasks with owner",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.TaskWithOwner"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            }
        },
        "/ws/tasks": {
            "get": {
                "description": "WebSocket stream of the caller's tasks. The token is taken from ?token= or the Authorization header.",
                "tags": ["tasks"],
                "summary": "Live task list",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "token", "in": "query"},
                    {"type": "string", "description": "Refresh period, e.g. 2s", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Refresh period in milliseconds", "name": "interval_ms", "in": "query"}
                ],
                "responses": {
                    "101": {"description": "switching protocols", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/taskflow.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "ana@x.com"},
                "password": {"type": "string", "example": "secret1"}
            }
        },
        "handlers.registerRequest": {
            "type": "object",
            "required": ["nombre", "email", "password"],
            "properties": {
                "nombre": {"type": "string", "example": "Ana"},
                "email": {"type": "string", "example": "ana@x.com"},
                "password": {"type": "string", "example": "secret1"}
            }
        },
        "handlers.createTaskRequest": {
            "type": "object",
            "required": ["titulo"],
            "properties": {
                "titulo": {"type": "string", "example": "Buy milk"},
                "descripcion": {"type": "string", "example": "two litres"},
                "categoria": {"type": "string", "example": "Casa"},
                "prioridad": {"type": "string", "example": "alta"},
                "fecha_limite": {"type": "string", "example": "2025-06-01"}
            }
        },
        "handlers.updateTaskRequest": {
            "type": "object",
            "required": ["completada"],
            "properties": {
                "completada": {"type": "boolean", "example": true}
            }
        },
        "handlers.createCategoryRequest": {
            "type": "object",
            "required": ["nombre"],
            "properties": {
                "nombre": {"type": "string", "example": "Casa"},
                "color": {"type": "string", "example": "#4361ee"}
            }
        },
        "models.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "titulo": {"type": "string"},
                "descripcion": {"type": "string"},
                "categoria": {"type": "string"},
                "prioridad": {"type": "string", "enum": ["baja", "media", "alta"]},
                "fecha_limite": {"type": "string", "example": "2025-06-01"},
                "completada": {"type": "boolean"},
                "fecha_creacion": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "models.TaskWithOwner": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "titulo": {"type": "string"},
                "descripcion": {"type": "string"},
                "categoria": {"type": "string"},
                "prioridad": {"type": "string", "enum": ["baja", "media", "alta"]},
                "fecha_limite": {"type": "string"},
                "completada": {"type": "boolean"},
                "fecha_creacion": {"type": "string"},
                "user_id": {"type": "integer"},
                "usuario_nombre": {"type": "string"},
                "usuario_email": {"type": "string"}
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "color": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "models.CalendarEvent": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "start": {"type": "string"},
                "allDay": {"type": "boolean"},
                "backgroundColor": {"type": "string"},
                "borderColor": {"type": "string"},
                "textColor": {"type": "string"},
                "description": {"type": "string"},
                "extendedProps": {
                    "type": "object",
                    "properties": {
                        "categoria": {"type": "string"},
                        "prioridad": {"type": "string"}
                    }
                }
            }
        },
        "models.Stats": {
            "type": "object",
            "properties": {
                "total_users": {"type": "integer"},
                "total_tasks": {"type": "integer"},
                "total_categories": {"type": "integer"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "email": {"type": "string"},
                "is_admin": {"type": "boolean"},
                "fecha_registro": {"type": "string"}
            }
        },
        "taskflow.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "unauthorized"}}
        },
        "taskflow.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Tarea actualizada"}}
        },
        "taskflow.CreatedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Tarea creada"},
                "id": {"type": "integer", "example": 1}
            }
        },
        "taskflow.RegisterResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Registrado"},
                "user_id": {"type": "integer", "example": 2}
            }
        },
        "taskflow.UserSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "email": {"type": "string"},
                "is_admin": {"type": "boolean"}
            }
        },
        "taskflow.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_at": {"type": "string"},
                "user": {"$ref": "#/definitions/taskflow.UserSummary"},
                "redirect": {"type": "string", "example": "/tasks"}
            }
        },
        "taskflow.HealthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string", "example": "ok"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TaskFlow API",
	Description:      "Personal task manager with calendar view and admin dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
