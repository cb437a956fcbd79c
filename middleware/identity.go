package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// 上游网关完成认证后透传的用户标识
const UserIDHeader = "X-User-ID"

// Identity 从网关头里取出用户ID放进请求上下文
// 认证本身在引擎外部 没带头的请求按匿名处理
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v := c.GetHeader(UserIDHeader); v != "" {
			if uid, err := strconv.ParseInt(v, 10, 64); err == nil && uid > 0 {
				c.Set("user_id", uid)
			}
		}
		c.Next()
	}
}
