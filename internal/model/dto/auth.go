package dto

// WxLoginRequest 微信登录请求
type WxLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// EmailRegisterRequest 邮箱注册请求
type EmailRegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Nickname string `json:"nickname"`
}

// EmailLoginRequest 邮箱登录请求
type EmailLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse 登录/注册成功后的返回
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}
