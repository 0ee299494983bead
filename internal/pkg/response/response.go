package response

import (
	"Hustings/internal/api/dto"
	"Hustings/internal/service"
	"errors"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回，data 原样作为响应体
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessEnvelope 带 code/message 包装的成功返回
func SuccessEnvelope(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string, details string) {
	c.JSON(status, dto.ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// Error 处理错误，details 为业务错误之下的原始信息
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error(), ve.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "Json错误", unmarshalTypeError.Error())
		return
	}

	target, status := service.Classify(err)
	if target == nil {
		log.ErrorContext(c.Request.Context(), "unexpected error", "err", err)
		Fail(c, status, service.UnExpectedError.Error(), err.Error())
		return
	}
	if status >= http.StatusInternalServerError {
		log.ErrorContext(c.Request.Context(), "request failed", "err", err)
	}
	Fail(c, status, target.Error(), details(err, target))
}

func details(err, target error) string {
	msg := err.Error()
	if msg == target.Error() {
		return ""
	}
	return strings.TrimPrefix(msg, target.Error()+": ")
}
