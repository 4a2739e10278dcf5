package utils

import (
	"github.com/bytedance/gopkg/util/logger"
	"github.com/gin-gonic/gin"
)

// SendError writes a plain-text error body with the given status and logs it.
func SendError(ctx *gin.Context, status int, detail string) {
	ctx.String(status, detail)
	logger.Error("Error: ", detail)
}
