// Package docs holds the OpenAPI 2.0 description of the FitConnect API
// served by the swagger UI at /swagger/index.html.
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
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Landing page",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/server.LandingResponse"
						}
					}
				}
			}
		},
		"/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.HealthResponse"
						}
					}
				}
			}
		},
		"/metrics": {
			"get": {
				"produces": [
					"text/plain"
				],
				"tags": [
					"system"
				],
				"summary": "Prometheus metrics",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "string"
						}
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Register new user",
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Registration data",
						"schema": {
							"$ref": "#/definitions/user.RegisterRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.LoginResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/auth/login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Login",
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Credentials",
						"schema": {
							"$ref": "#/definitions/user.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.LoginResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/auth/refresh": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Refresh access token",
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Refresh token",
						"schema": {
							"$ref": "#/definitions/user.RefreshRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.LoginResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/me": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Current user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.User"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/profile": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Update own profile",
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Profile fields",
						"schema": {
							"$ref": "#/definitions/user.UpdateProfileRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.User"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/goals": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Replace own fitness goals",
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Goals",
						"schema": {
							"$ref": "#/definitions/user.UpdateGoalsRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.User"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/trainers": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"trainers"
				],
				"summary": "Browse trainers",
				"parameters": [
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "Matches name, bio or expertise",
						"type": "string"
					},
					{
						"name": "expertise",
						"in": "query",
						"required": false,
						"description": "Exact area of expertise",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/trainers/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"trainers"
				],
				"summary": "Trainer detail",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Trainer ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.User"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/trainers/{id}/availability": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"availability"
				],
				"summary": "Get a trainer's weekly availability",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Trainer ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/availability.DaySchedule"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/trainers/{id}/slots": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"bookings"
				],
				"summary": "Bookable slots for a date",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Trainer ID",
						"type": "string"
					},
					{
						"name": "date",
						"in": "query",
						"required": true,
						"description": "Date (YYYY-MM-DD)",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/booking.BookableSlots"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/trainers/{id}/connect": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"trainers"
				],
				"summary": "Connect with a trainer",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Trainer ID",
						"type": "string"
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/connection.Connection"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/trainers/{id}/courses": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"courses"
				],
				"summary": "A trainer's courses",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Trainer ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/course.Course"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/clients": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "My clients",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/user.User"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/clients/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Client detail",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Client ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.User"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/connections": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"connections"
				],
				"summary": "My trainer connections",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/connection.ConnectionWithTrainer"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/availability": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"availability"
				],
				"summary": "Get my weekly availability",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/availability.DaySchedule"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/availability/slots": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"availability"
				],
				"summary": "Add an availability slot",
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Slot payload",
						"schema": {
							"$ref": "#/definitions/availability.AddSlotRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/availability.Availability"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/availability/slots/{day}/{index}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"availability"
				],
				"summary": "Remove an availability slot",
				"parameters": [
					{
						"name": "day",
						"in": "path",
						"required": true,
						"description": "Day of week",
						"type": "string"
					},
					{
						"name": "index",
						"in": "path",
						"required": true,
						"description": "Slot index within the day",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.MessageResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/bookings": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"bookings"
				],
				"summary": "Book a session",
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Booking payload",
						"schema": {
							"$ref": "#/definitions/booking.CreateBookingRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/booking.Booking"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/bookings/{id}/cancel": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"bookings"
				],
				"summary": "Cancel booking",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Booking ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/booking.Booking"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/bookings/{id}/confirm": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"bookings"
				],
				"summary": "Confirm a pending booking",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Booking ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/booking.Booking"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/bookings/{id}/reject": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"bookings"
				],
				"summary": "Reject a pending booking",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Booking ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/booking.Booking"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/bookings/{id}/complete": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"bookings"
				],
				"summary": "Mark a booking completed",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Booking ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/booking.Booking"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/my-bookings": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"bookings"
				],
				"summary": "My bookings",
				"parameters": [
					{
						"name": "view",
						"in": "query",
						"required": false,
						"description": "all, pending, upcoming, past, cancelled, rejected",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/booking.BookingList"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/courses": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"courses"
				],
				"summary": "Courses I teach",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/course.Course"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"courses"
				],
				"summary": "Create course",
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Course payload",
						"schema": {
							"$ref": "#/definitions/course.CreateCourseRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/course.Course"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/courses/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"courses"
				],
				"summary": "Course details",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Course ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/course.Course"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/courses/{id}/enroll": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"courses"
				],
				"summary": "Enroll in a course",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Course ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/course.Course"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/my-courses": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"courses"
				],
				"summary": "Courses I am enrolled in",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/course.Course"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/directory/members": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"directory"
				],
				"summary": "Member table",
				"parameters": [
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "Case-insensitive substring",
						"type": "string"
					},
					{
						"name": "sort",
						"in": "query",
						"required": false,
						"description": "Column",
						"type": "string"
					},
					{
						"name": "direction",
						"in": "query",
						"required": false,
						"description": "asc, desc or none",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page, 1-indexed",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "10, 20, 50 or 100",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/directory.MemberView"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"directory"
				],
				"summary": "Add member",
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Member",
						"schema": {
							"$ref": "#/definitions/directory.AddMemberRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/directory.Member"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/directory/members/page": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"directory"
				],
				"summary": "Raw member page",
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page, 1-indexed",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/directory.Page"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				}
			}
		},
		"/directory/members/{id}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"directory"
				],
				"summary": "Delete member",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Member ID",
						"type": "integer"
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				}
			}
		},
		"/directory/reset": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"directory"
				],
				"summary": "Regenerate members",
				"parameters": [
					{
						"name": "count",
						"in": "query",
						"required": false,
						"description": "Member count",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.MessageResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				}
			}
		},
		"/directory/clear": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"directory"
				],
				"summary": "Remove all members",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.MessageResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"api.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"api.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"api.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"storage": {
					"type": "string"
				}
			}
		},
		"api.ValidationError": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"api.ValidationErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"details": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.ValidationError"
					}
				}
			}
		},
		"schedule.TimeSlot": {
			"type": "object",
			"properties": {
				"start_time": {
					"type": "string"
				},
				"end_time": {
					"type": "string"
				}
			}
		},
		"user.RegisterRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 6
				},
				"role": {
					"type": "string",
					"enum": [
						"TRAINER",
						"CLIENT"
					]
				},
				"full_name": {
					"type": "string"
				},
				"bio": {
					"type": "string"
				},
				"areas_of_expertise": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"years_of_experience": {
					"type": "integer",
					"minimum": 0
				},
				"fitness_level": {
					"type": "string",
					"enum": [
						"BEGINNER",
						"INTERMEDIATE",
						"ADVANCED"
					]
				}
			},
			"required": [
				"email",
				"password",
				"role",
				"full_name"
			]
		},
		"user.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"user.RefreshRequest": {
			"type": "object",
			"properties": {
				"refresh_token": {
					"type": "string"
				}
			},
			"required": [
				"refresh_token"
			]
		},
		"user.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string",
					"enum": [
						"TRAINER",
						"CLIENT"
					]
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"user.LoginResponse": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				},
				"refresh_token": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/user.User"
				}
			}
		},
		"user.UpdateProfileRequest": {
			"type": "object",
			"properties": {
				"full_name": {
					"type": "string"
				},
				"age": {
					"type": "integer"
				},
				"phone_number": {
					"type": "string"
				},
				"profile_photo": {
					"type": "string"
				},
				"height": {
					"type": "number"
				},
				"weight": {
					"type": "number"
				}
			}
		},
		"user.UpdateGoalsRequest": {
			"type": "object",
			"properties": {
				"goals": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			},
			"required": [
				"goals"
			]
		},
		"availability.AddSlotRequest": {
			"type": "object",
			"properties": {
				"day_of_week": {
					"type": "string"
				},
				"start_time": {
					"type": "string"
				},
				"end_time": {
					"type": "string"
				}
			},
			"required": [
				"day_of_week",
				"start_time",
				"end_time"
			]
		},
		"availability.Availability": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"trainer_id": {
					"type": "string"
				},
				"day_of_week": {
					"type": "string"
				},
				"time_slots": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/schedule.TimeSlot"
					}
				},
				"is_recurring": {
					"type": "boolean"
				}
			}
		},
		"availability.DaySchedule": {
			"type": "object",
			"properties": {
				"day_of_week": {
					"type": "string"
				},
				"time_slots": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/schedule.TimeSlot"
					}
				}
			}
		},
		"booking.CreateBookingRequest": {
			"type": "object",
			"properties": {
				"trainer_id": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"start_time": {
					"type": "string"
				},
				"end_time": {
					"type": "string"
				},
				"notes": {
					"type": "string",
					"maxLength": 500
				}
			},
			"required": [
				"trainer_id",
				"date",
				"start_time",
				"end_time"
			]
		},
		"booking.Booking": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"trainer_id": {
					"type": "string"
				},
				"client_id": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"time_slot": {
					"$ref": "#/definitions/schedule.TimeSlot"
				},
				"status": {
					"type": "string",
					"enum": [
						"PENDING",
						"CONFIRMED",
						"CANCELLED",
						"COMPLETED",
						"REJECTED"
					]
				},
				"notes": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"booking.BookableSlots": {
			"type": "object",
			"properties": {
				"trainer_id": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"day_of_week": {
					"type": "string"
				},
				"slots": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/schedule.TimeSlot"
					}
				}
			}
		},
		"booking.Stats": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer"
				},
				"pending": {
					"type": "integer"
				},
				"upcoming": {
					"type": "integer"
				},
				"completed": {
					"type": "integer"
				},
				"cancelled": {
					"type": "integer"
				},
				"rejected": {
					"type": "integer"
				}
			}
		},
		"booking.BookingList": {
			"type": "object",
			"properties": {
				"view": {
					"type": "string"
				},
				"bookings": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/booking.Booking"
					}
				},
				"stats": {
					"$ref": "#/definitions/booking.Stats"
				}
			}
		},
		"connection.Connection": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"trainer_id": {
					"type": "string"
				},
				"client_id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"connection.ConnectionWithTrainer": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"trainer_id": {
					"type": "string"
				},
				"client_id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"trainer_name": {
					"type": "string"
				}
			}
		},
		"course.CreateCourseRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string",
					"maxLength": 120
				},
				"description": {
					"type": "string"
				},
				"difficulty": {
					"type": "string",
					"enum": [
						"BEGINNER",
						"INTERMEDIATE",
						"ADVANCED"
					]
				},
				"target_goals": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"duration": {
					"type": "string"
				}
			},
			"required": [
				"title",
				"difficulty",
				"duration"
			]
		},
		"course.Course": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"trainer_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"difficulty": {
					"type": "string"
				},
				"target_goals": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"duration": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"enrolled_clients": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"directory.Member": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"Active",
						"Inactive",
						"Pending"
					]
				},
				"age": {
					"type": "integer"
				},
				"salary": {
					"type": "integer"
				},
				"department": {
					"type": "string"
				}
			}
		},
		"directory.AddMemberRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"Active",
						"Inactive",
						"Pending"
					]
				},
				"age": {
					"type": "integer"
				},
				"salary": {
					"type": "integer"
				},
				"department": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"email",
				"role",
				"status",
				"department"
			]
		},
		"directory.Page": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/directory.Member"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"table.PageLink": {
			"type": "object",
			"properties": {
				"page": {
					"type": "integer"
				},
				"ellipsis": {
					"type": "boolean"
				},
				"current": {
					"type": "boolean"
				}
			}
		},
		"table.State": {
			"type": "object",
			"properties": {
				"sort_column": {
					"type": "string"
				},
				"direction": {
					"type": "string"
				},
				"search": {
					"type": "string"
				},
				"page": {
					"type": "integer"
				},
				"page_size": {
					"type": "integer"
				}
			}
		},
		"table.Pagination": {
			"type": "object",
			"properties": {
				"current_page": {
					"type": "integer"
				},
				"page_size": {
					"type": "integer"
				},
				"total_items": {
					"type": "integer"
				},
				"total_pages": {
					"type": "integer"
				},
				"start_item": {
					"type": "integer"
				},
				"end_item": {
					"type": "integer"
				},
				"has_previous": {
					"type": "boolean"
				},
				"has_next": {
					"type": "boolean"
				},
				"links": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/table.PageLink"
					}
				}
			}
		},
		"directory.MemberView": {
			"type": "object",
			"properties": {
				"state": {
					"$ref": "#/definitions/table.State"
				},
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/directory.Member"
					}
				},
				"pagination": {
					"$ref": "#/definitions/table.Pagination"
				}
			}
		},
		"server.LandingResponse": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"endpoints": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:8080",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"FitConnect API",
	Description:	  "Trainer and client marketplace with weekly availability, bookings, courses and a member directory table.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
