// Package docs holds the Swagger 2.0 document served at /api/swagger.
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
        "/users/test": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Route smoke test",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/RegisterInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RegisteredUser"}},
                    "400": {"description": "register_error"}
                }
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Sign in",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/LoginInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "400": {"description": "signin_error (wrong password)"},
                    "404": {"description": "signin_error (unknown email)"}
                }
            }
        },
        "/profile/all": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "List profiles",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Profile"}}},
                    "404": {"description": "no_profiles"}
                }
            }
        },
        "/profile/username/{username}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get a profile by username",
                "parameters": [{"in": "path", "name": "username", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Profile"}},
                    "404": {"description": "profile_not_found"}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get the caller's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Profile"}},
                    "404": {"description": "profile_not_found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Delete the caller's account, profile and posts",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Success"}}}
            }
        },
        "/profile/required": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Create or update the required profile fields",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/RequiredInfoInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Profile"}},
                    "400": {"description": "list of profile_required_error"}
                }
            }
        },
        "/profile/info": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Merge optional profile fields (omitted: unchanged, empty: cleared)",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/OptionalInfoInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Profile"}},
                    "400": {"description": "input_error"},
                    "404": {"description": "add_required_info"}
                }
            }
        },
        "/profile/info/learning_languages": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Add a learning language",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/LearningLanguageInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Profile"}},
                    "400": {"description": "input_error or language_already_added"},
                    "404": {"description": "add_required_info"}
                }
            }
        },
        "/profile/info/learning_languages/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Remove a learning language",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Profile"}},
                    "404": {"description": "language_not_found or add_required_info"}
                }
            }
        },
        "/profile/info/travel_plans": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Add a travel plan",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/TravelPlanInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Profile"}},
                    "400": {"description": "input_error"},
                    "404": {"description": "add_required_info"}
                }
            }
        },
        "/profile/info/travel_plans/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Edit a travel plan",
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/TravelPlanInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Profile"}},
                    "400": {"description": "input_error"},
                    "404": {"description": "travel_not_found or add_required_info"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Remove a travel plan",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Profile"}},
                    "404": {"description": "travel_not_found or add_required_info"}
                }
            }
        },
        "/post/all": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["post"],
                "summary": "List posts, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Post"}}},
                    "404": {"description": "no_posts"}
                }
            }
        },
        "/post": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["post"],
                "summary": "Create a post",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/TextInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Post"}},
                    "400": {"description": "input_error"},
                    "401": {"description": "no_profile"}
                }
            }
        },
        "/post/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["post"],
                "summary": "Delete an own post",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Success"}},
                    "400": {"description": "invalid_id"},
                    "401": {"description": "not_authorized"},
                    "404": {"description": "post_not_found"}
                }
            }
        },
        "/post/like/{post_id}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["post"],
                "summary": "Like a post",
                "parameters": [{"in": "path", "name": "post_id", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Post"}},
                    "401": {"description": "already_liked"},
                    "404": {"description": "post_not_found"}
                }
            }
        },
        "/post/unlike/{post_id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["post"],
                "summary": "Remove the caller's like",
                "parameters": [{"in": "path", "name": "post_id", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Post"}},
                    "400": {"description": "not_liked"},
                    "404": {"description": "post_not_found"}
                }
            }
        },
        "/post/comment/{post_id}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["post"],
                "summary": "Comment on a post",
                "parameters": [
                    {"in": "path", "name": "post_id", "required": true, "type": "integer"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/TextInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Post"}},
                    "400": {"description": "input_error"},
                    "404": {"description": "post_not_found or no_profile"}
                }
            }
        },
        "/post/comment/{post_id}/{comment_id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["post"],
                "summary": "Delete an own comment",
                "parameters": [
                    {"in": "path", "name": "post_id", "required": true, "type": "integer"},
                    {"in": "path", "name": "comment_id", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Post"}},
                    "401": {"description": "not_authorized"},
                    "404": {"description": "post_not_found or comment_not_found"}
                }
            }
        }
    },
    "definitions": {
        "RegisterInput": {
            "type": "object",
            "required": ["name", "email", "password", "confirmpw"],
            "properties": {
                "name": {"type": "string", "minLength": 3, "maxLength": 50},
                "email": {"type": "string", "minLength": 3, "maxLength": 50},
                "password": {"type": "string", "minLength": 5, "maxLength": 500},
                "confirmpw": {"type": "string", "minLength": 5, "maxLength": 500}
            }
        },
        "RegisteredUser": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "LoginInput": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "token": {"type": "string", "example": "Bearer eyJhbGciOiJIUzI1NiJ9..."}
            }
        },
        "Success": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "RequiredInfoInput": {
            "type": "object",
            "required": ["username", "birth_date", "current_location", "gender"],
            "properties": {
                "username": {"type": "string", "minLength": 3, "maxLength": 50},
                "birth_date": {"type": "string", "format": "date"},
                "current_location": {"type": "string", "minLength": 3, "maxLength": 50},
                "gender": {"type": "string", "enum": ["Male", "Female", "Other"]}
            }
        },
        "OptionalInfoInput": {
            "type": "object",
            "properties": {
                "country": {"type": "string"},
                "hometown": {"type": "string"},
                "occupation": {"type": "string"},
                "bio": {"type": "string"},
                "interests": {"type": "string", "description": "comma separated"},
                "fluent_languages": {"type": "string", "description": "comma separated"},
                "wishlist": {"type": "string", "description": "comma separated"},
                "countries_visited": {"type": "string", "description": "comma separated"},
                "website": {"type": "string"},
                "youtube": {"type": "string"},
                "twitter": {"type": "string"},
                "facebook": {"type": "string"},
                "instagram": {"type": "string"},
                "linkedin": {"type": "string"}
            }
        },
        "LearningLanguageInput": {
            "type": "object",
            "required": ["language"],
            "properties": {
                "language": {"type": "string", "minLength": 2, "maxLength": 50},
                "level": {"type": "string", "enum": ["Beginner", "Elementary", "Intermediate", "Upper Intermediate", "Advanced", "Expert"]}
            }
        },
        "TravelPlanInput": {
            "type": "object",
            "required": ["destination", "arrival_date", "departure_date", "number_of_travelers", "description"],
            "properties": {
                "destination": {"type": "string", "minLength": 2, "maxLength": 50},
                "arrival_date": {"type": "string", "format": "date"},
                "departure_date": {"type": "string", "format": "date"},
                "number_of_travelers": {"type": "integer", "minimum": 1, "maximum": 100},
                "description": {"type": "string", "minLength": 3, "maxLength": 300}
            }
        },
        "TextInput": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string"}}
        },
        "LearningLanguage": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "language": {"type": "string"},
                "level": {"type": "string"}
            }
        },
        "TravelPlan": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "destination": {"type": "string"},
                "arrival_date": {"type": "string", "format": "date-time"},
                "departure_date": {"type": "string", "format": "date-time"},
                "number_of_travelers": {"type": "integer"},
                "description": {"type": "string"}
            }
        },
        "Profile": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "date": {"type": "string", "format": "date-time"}}},
                "username": {"type": "string"},
                "birth_date": {"type": "string", "format": "date-time"},
                "current_location": {"type": "string"},
                "gender": {"type": "string"},
                "country": {"type": "string"},
                "hometown": {"type": "string"},
                "occupation": {"type": "string"},
                "bio": {"type": "string"},
                "interests": {"type": "array", "items": {"type": "string"}},
                "fluent_languages": {"type": "array", "items": {"type": "string"}},
                "learning_languages": {"type": "array", "items": {"$ref": "#/definitions/LearningLanguage"}},
                "travel_plans": {"type": "array", "items": {"$ref": "#/definitions/TravelPlan"}},
                "wishlist": {"type": "array", "items": {"type": "string"}},
                "countries_visited": {"type": "array", "items": {"type": "string"}},
                "social": {"type": "object", "additionalProperties": {"type": "string"}},
                "date": {"type": "string", "format": "date-time"}
            }
        },
        "Like": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "user": {"type": "integer"}}
        },
        "Comment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user": {"type": "integer"},
                "text": {"type": "string"},
                "name": {"type": "string"},
                "username": {"type": "string"},
                "date": {"type": "string", "format": "date-time"}
            }
        },
        "Post": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user": {"type": "integer"},
                "text": {"type": "string"},
                "name": {"type": "string"},
                "username": {"type": "string"},
                "gender": {"type": "string"},
                "likes": {"type": "array", "items": {"$ref": "#/definitions/Like"}},
                "comments": {"type": "array", "items": {"$ref": "#/definitions/Comment"}},
                "date": {"type": "string", "format": "date-time"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Wayfarer API",
	Description:      "Language-exchange travel network: profiles, learning languages, travel plans and posts",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
