package apperr

import "fmt"

// Error 对外暴露的业务错误：HTTP 状态码 + 机器可读 message + 可选 detail
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// New 创建业务错误
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// NewWithDetail 创建带 detail 的业务错误
func NewWithDetail(status int, message, detail string) *Error {
	return &Error{Status: status, Message: message, Detail: detail}
}

// From 从任意 error 提取业务错误；非业务错误统一映射为 500
func From(err error, fallbackMessage string) *Error {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*Error); ok {
		return ae
	}
	return &Error{Status: 500, Message: fallbackMessage, Detail: err.Error()}
}
