package server

import "github.com/gin-gonic/gin"

type responseBody struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

type envelope struct {
	Success  bool         `json:"success"`
	Response responseBody `json:"response"`
}

func respondOK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, envelope{
		Success:  true,
		Response: responseBody{Data: data, Message: message},
	})
}

func respondErr(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{
		Success:  false,
		Response: responseBody{Message: message},
	})
}
