package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"amado/internal/service"
	"amado/internal/upstream"
)

type errorResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

type successResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type messageResponseType struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageResponseType{
		Status:  "success",
		Message: message,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context) {
	errorResponse(c, http.StatusUnauthorized, "autenticação necessária")
}

func forbiddenResponse(c *gin.Context, message ...string) {
	msg := "acesso negado"
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	errorResponse(c, http.StatusForbidden, msg)
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

// proxyErrorResponse devolve o erro da API do marketplace com o status
// original; erros locais de validação viram 400.
func proxyErrorResponse(c *gin.Context, err error) {
	var apiErr *upstream.Error
	if errors.As(err, &apiErr) {
		errorResponse(c, apiErr.StatusCode, apiErr.Error())
		return
	}
	if errors.Is(err, service.ErrSessionNotFound) || errors.Is(err, upstream.ErrCEPNotFound) {
		notFoundResponse(c, err.Error())
		return
	}
	badRequestResponse(c, err.Error())
}
