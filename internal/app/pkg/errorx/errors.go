package errorx

import "ucenter/internal/app/pkg/statuscode"

// BusinessError 业务错误，消息可直接透出给调用方
type BusinessError struct {
	Code    int
	Message string
	Cause   error
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// Unwrap 暴露底层错误，支持 errors.Is/As
func (e *BusinessError) Unwrap() error {
	return e.Cause
}

// New 创建业务错误，message 为空时取状态码默认提示
func New(sc statuscode.StatusCode, message string) *BusinessError {
	if message == "" {
		message = sc.Message
	}
	return &BusinessError{
		Code:    sc.Code,
		Message: message,
	}
}

// Wrap 创建带底层错误的业务错误
func Wrap(sc statuscode.StatusCode, message string, cause error) *BusinessError {
	err := New(sc, message)
	err.Cause = cause
	return err
}
