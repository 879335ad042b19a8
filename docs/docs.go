// Package docs holds the OpenAPI document served under /swagger in local mode.
// It is kept by hand in swag's registration format and must describe every
// route the api package registers; api's route tests fail when it drifts.
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
				"summary": "Health check",
				"tags": [
					"meta"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					}
				}
			}
		},
		"/token": {
			"post": {
				"summary": "Issue an access token",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.TokenResponse"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.TokenRequest"
						}
					}
				]
			}
		},
		"/user": {
			"post": {
				"summary": "Register a user",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.UserCreateResponse"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.UserCreateRequest"
						}
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/users": {
			"get": {
				"summary": "List users",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.UserResponse"
							}
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "query",
						"name": "role"
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/user/{id}": {
			"delete": {
				"summary": "Delete a user",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/updateUserRole": {
			"put": {
				"summary": "Change the role of a user",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.UpdateRoleRequest"
						}
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/user/admin/{email}": {
			"get": {
				"summary": "Check whether an email belongs to an admin",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.AdminCheckResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "email",
						"required": true
					}
				]
			}
		},
		"/user/surveyor/{email}": {
			"get": {
				"summary": "Check whether an email belongs to a surveyor",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SurveyorCheckResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "email",
						"required": true
					}
				]
			}
		},
		"/user/proUser/{email}": {
			"get": {
				"summary": "Check whether an email belongs to a pro user",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.ProUserCheckResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "email",
						"required": true
					}
				]
			}
		},
		"/survey": {
			"get": {
				"summary": "List surveys with rankings",
				"tags": [
					"surveys"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SurveyListResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "query",
						"name": "email"
					}
				]
			},
			"post": {
				"summary": "Create a survey",
				"tags": [
					"surveys"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/storage.Survey"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.SurveyCreateRequest"
						}
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/survey/{id}": {
			"get": {
				"summary": "Get a survey",
				"tags": [
					"surveys"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/storage.Survey"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				]
			},
			"patch": {
				"summary": "Edit a survey",
				"tags": [
					"surveys"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/storage.Survey"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.SurveyUpdateRequest"
						}
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			},
			"delete": {
				"summary": "Delete a survey",
				"tags": [
					"surveys"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/statusUpdate/{id}": {
			"patch": {
				"summary": "Unpublish a survey",
				"tags": [
					"surveys"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/voting": {
			"post": {
				"summary": "Cast a vote",
				"tags": [
					"voting"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.CastVoteResponse"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CastVoteRequest"
						}
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			},
			"get": {
				"summary": "List votes with their surveys",
				"tags": [
					"voting"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.VotingListResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "query",
						"name": "survey_id"
					}
				]
			}
		},
		"/voting/{email}": {
			"get": {
				"summary": "List votes of a voter with their surveys",
				"tags": [
					"voting"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.VotingListResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "email",
						"required": true
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/report": {
			"post": {
				"summary": "Report a survey",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/storage.Report"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.ReportCreateRequest"
						}
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			},
			"get": {
				"summary": "List reports with their surveys",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.ReportListResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "query",
						"name": "email"
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/comment": {
			"post": {
				"summary": "Comment on a survey",
				"tags": [
					"comments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/storage.Comment"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CommentCreateRequest"
						}
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			},
			"get": {
				"summary": "List comments with their surveys",
				"tags": [
					"comments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.CommentListResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "query",
						"name": "email"
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/feedback": {
			"post": {
				"summary": "Send feedback to a survey author",
				"tags": [
					"feedback"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/storage.Feedback"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.FeedbackCreateRequest"
						}
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			},
			"get": {
				"summary": "List feedback with their surveys",
				"tags": [
					"feedback"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.FeedbackListResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"in": "query",
						"name": "email"
					}
				]
			}
		},
		"/create_payment_intent": {
			"post": {
				"summary": "Create a payment intent",
				"tags": [
					"payments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.PaymentIntentResponse"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.PaymentIntentRequest"
						}
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		},
		"/payment": {
			"post": {
				"summary": "Confirm a payment",
				"description": "Promotes the token holder to pro-user. A posted email must match the token.",
				"tags": [
					"payments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.PaymentConfirmRequest"
						}
					}
				],
				"security": [
					{
						"BearerToken": []
					}
				]
			}
		}
	},
	"definitions": {
		"models.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"models.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"models.TokenRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			}
		},
		"models.TokenResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				}
			}
		},
		"models.UserCreateRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"photo": {
					"type": "string"
				}
			}
		},
		"models.UserResponse": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"photo": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			}
		},
		"models.UserCreateResponse": {
			"type": "object",
			"properties": {
				"insertedId": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/models.UserResponse"
				}
			}
		},
		"models.UpdateRoleRequest": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			}
		},
		"models.AdminCheckResponse": {
			"type": "object",
			"properties": {
				"admin": {
					"type": "boolean"
				}
			}
		},
		"models.SurveyorCheckResponse": {
			"type": "object",
			"properties": {
				"surveyor": {
					"type": "boolean"
				}
			}
		},
		"models.ProUserCheckResponse": {
			"type": "object",
			"properties": {
				"proUser": {
					"type": "boolean"
				}
			}
		},
		"models.SurveyCreateRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"question": {
					"type": "string"
				},
				"desc": {
					"type": "string"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"models.SurveyUpdateRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"question": {
					"type": "string"
				},
				"desc": {
					"type": "string"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"models.SurveyListResponse": {
			"type": "object",
			"properties": {
				"result": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.Survey"
					}
				},
				"mostVoted": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.Survey"
					}
				},
				"recent": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.Survey"
					}
				}
			}
		},
		"models.CastVoteRequest": {
			"type": "object",
			"properties": {
				"survey_id": {
					"type": "string"
				},
				"voting": {
					"type": "boolean"
				}
			}
		},
		"models.SurveyUpdateResult": {
			"type": "object",
			"properties": {
				"matched": {
					"type": "boolean"
				},
				"survey": {
					"$ref": "#/definitions/storage.Survey"
				}
			}
		},
		"models.CastVoteResponse": {
			"type": "object",
			"properties": {
				"result": {
					"$ref": "#/definitions/storage.VoteRecord"
				},
				"surveyUpdate": {
					"$ref": "#/definitions/models.SurveyUpdateResult"
				}
			}
		},
		"models.VotingListResponse": {
			"type": "object",
			"properties": {
				"voting": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.VoteRecord"
					}
				},
				"survey": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.Survey"
					}
				}
			}
		},
		"models.ReportCreateRequest": {
			"type": "object",
			"properties": {
				"survey_id": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"models.CommentCreateRequest": {
			"type": "object",
			"properties": {
				"survey_id": {
					"type": "string"
				},
				"comment": {
					"type": "string"
				}
			}
		},
		"models.FeedbackCreateRequest": {
			"type": "object",
			"properties": {
				"survey_id": {
					"type": "string"
				},
				"surveyEmail": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"models.ReportListResponse": {
			"type": "object",
			"properties": {
				"report": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.Report"
					}
				},
				"survey": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.Survey"
					}
				}
			}
		},
		"models.CommentListResponse": {
			"type": "object",
			"properties": {
				"comment": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.Comment"
					}
				},
				"survey": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.Survey"
					}
				}
			}
		},
		"models.FeedbackListResponse": {
			"type": "object",
			"properties": {
				"feedback": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.Feedback"
					}
				},
				"survey": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/storage.Survey"
					}
				}
			}
		},
		"models.PaymentIntentRequest": {
			"type": "object",
			"properties": {
				"price": {
					"type": "number"
				}
			}
		},
		"models.PaymentIntentResponse": {
			"type": "object",
			"properties": {
				"clientSecret": {
					"type": "string"
				}
			}
		},
		"models.PaymentConfirmRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"transactionId": {
					"type": "string"
				},
				"price": {
					"type": "number"
				}
			}
		},
		"storage.VoteCounts": {
			"type": "object",
			"properties": {
				"yesVotes": {
					"type": "integer"
				},
				"noVotes": {
					"type": "integer"
				}
			}
		},
		"storage.Survey": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"surveyEmail": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"question": {
					"type": "string"
				},
				"desc": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"votes": {
					"$ref": "#/definitions/storage.VoteCounts"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"storage.VoteRecord": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"survey_id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"voting": {
					"type": "boolean"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"storage.Report": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"survey_id": {
					"type": "string"
				},
				"reporterEmail": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"storage.Comment": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"survey_id": {
					"type": "string"
				},
				"commentEmail": {
					"type": "string"
				},
				"comment": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"storage.Feedback": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"survey_id": {
					"type": "string"
				},
				"surveyEmail": {
					"type": "string"
				},
				"adminEmail": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerToken": {
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
	Title:            "Simple Survey System API",
	Description:      "Backend API for surveys, voting, moderation and pro-user payments",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
