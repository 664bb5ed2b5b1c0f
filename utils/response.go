package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidBody    = "Corpo da requisição inválido"
	MsgInternalServer = "Erro interno do servidor"
)

// JSONCreated writes 201 with a message and the created resource under key.
func JSONCreated(c *gin.Context, message, key string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"message": message, key: data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
