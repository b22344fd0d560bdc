package middleware

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/rtaylor52242/logo-animator-studio/common/helper"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
)

func RequestId() func(c *gin.Context) {
	return func(c *gin.Context) {
		// Honor a caller-provided request id, otherwise generate one.
		id := c.GetHeader(logger.RequestIdKey)
		if id == "" {
			id = helper.GenRequestID()
		}
		c.Set(logger.RequestIdKey, id)
		ctx := context.WithValue(c.Request.Context(), logger.RequestIdKey, id)
		c.Request = c.Request.WithContext(ctx)
		// Also set it on the request header so downstream GetHeader sees it.
		c.Request.Header.Set(logger.RequestIdKey, id)
		c.Header(logger.RequestIdKey, id)
		c.Next()
	}
}
