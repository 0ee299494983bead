package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid   = errors.New("参数错误")
	ErrCMSUnavailable = errors.New("failed to fetch candidate data")
	ErrCMSMalformed   = errors.New("unexpected candidate data from cms")
	ErrHookSecret     = errors.New("webhook secret mismatch")
	UnauthorizedError = errors.New("未登录或 Token 无效")
	ForbiddenError    = errors.New("权限不足")
	UnExpectedError   = errors.New("系统异常，请稍后重试")
)

// ErrorMap 业务错误到 HTTP 状态码，按 errors.Is 匹配
var ErrorMap = map[error]int{
	ErrParamInvalid:   http.StatusBadRequest,
	ErrCMSUnavailable: http.StatusInternalServerError,
	ErrCMSMalformed:   http.StatusInternalServerError,
	ErrHookSecret:     http.StatusUnauthorized,
	UnauthorizedError: http.StatusUnauthorized,
	ForbiddenError:    http.StatusForbidden,
	UnExpectedError:   http.StatusInternalServerError,
}

// Classify 找到 err 对应的业务错误与状态码，未登记的错误返回 nil 和 500
func Classify(err error) (error, int) {
	for target, status := range ErrorMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return nil, http.StatusInternalServerError
}
