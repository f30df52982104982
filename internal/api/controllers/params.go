package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"legendscr/pkg/utils"
)

const msgInvalidInteger = "El identificador debe ser un número entero"

// intParam parses a path segment as an integer, answering 400 on failure.
func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidInteger)
		return 0, false
	}
	return id, true
}
