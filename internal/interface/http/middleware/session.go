package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie 会话Cookie名
	SessionCookie = "pos_session"

	// sessionKey Context中的会话ID键
	sessionKey = "session_id"

	// sessionMaxAge 会话Cookie有效期(秒)
	sessionMaxAge = 12 * 60 * 60
)

// Session 会话中间件
// 设计说明:
// 1. 购物车按会话隔离:每个活跃会话一个购物车,避免进程级单例状态
// 2. 首次请求签发UUID会话ID,通过Cookie携带
// 3. 购物车只存内存,会话ID只是内存里的Key,进程重启后购物车即为空
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}

		c.Set(sessionKey, sessionID)
		c.Next()
	}
}

// GetSessionID 从Context获取会话ID(Session中间件之后调用)
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
