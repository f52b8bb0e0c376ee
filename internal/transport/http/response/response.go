package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Data 成功响应统一 {"data": ...} 信封
func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// Err 失败响应 {"error": msg}；msg 为空时用状态码的通用文案，
// 内部错误细节只进日志，不出网
func Err(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = GenericMsg(status)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
