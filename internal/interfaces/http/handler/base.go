// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"claims-ai-api/internal/interfaces/http/dto"
	"claims-ai-api/pkg/errors"
	"claims-ai-api/pkg/logger"
)

// respondError 按 AppError 映射响应，未知错误统一归为 500
func respondError(c *gin.Context, err error) {
	if errors.IsAppError(err) {
		appErr := errors.AsAppError(err)
		dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, &dto.ErrorDetail{
			ErrorCode: string(appErr.Code),
			Details:   appErr.Detail,
		})
		return
	}

	logger.Error(c.Request.Context(), "unhandled error", err, "path", c.Request.URL.Path)
	dto.InternalError(c, "internal server error")
}
