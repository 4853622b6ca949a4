package handlers

import (
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the Zap logger set by utils.RequestLogger, or the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}

func respondError(c *gin.Context, err error) {
	utils.JSONError(c, getLogger(c), err)
}

func bindError(err error) error {
	return utils.ValidationError("INVALID_INPUT", err.Error())
}
