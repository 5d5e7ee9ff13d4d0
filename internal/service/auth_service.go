package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/bmh201708/ResearchPilot/config"
	"github.com/bmh201708/ResearchPilot/internal/model"
	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
	"github.com/bmh201708/ResearchPilot/internal/pkg/jwt"
	"github.com/bmh201708/ResearchPilot/internal/pkg/password"
	"github.com/bmh201708/ResearchPilot/internal/pkg/wechat"
	"github.com/bmh201708/ResearchPilot/internal/repository"
)

// WechatSessionClient 微信登录凭证换取接口（便于测试替换）
type WechatSessionClient interface {
	JSCode2Session(ctx context.Context, code string) (*wechat.SessionResult, error)
}

type AuthService struct {
	userRepo     *repository.UserRepository
	wechatClient WechatSessionClient
	jwtCfg       config.JWTConfig
}

func NewAuthService(userRepo *repository.UserRepository, wechatClient WechatSessionClient, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		wechatClient: wechatClient,
		jwtCfg:       jwtCfg,
	}
}

// WxLogin 微信code登录，openid首次出现时自动注册
func (s *AuthService) WxLogin(ctx context.Context, code string) (string, *model.User, error) {
	session, err := s.wechatClient.JSCode2Session(ctx, code)
	if err != nil {
		return "", nil, apperr.NewWithDetail(http.StatusUnauthorized, "wx_login_failed", err.Error())
	}

	user, err := s.userRepo.GetByOpenID(session.OpenID)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		user = &model.User{
			ID:           uuid.NewString(),
			OpenID:       session.OpenID,
			Nickname:     "科研小助手",
			AuthProvider: model.AuthProviderWechat,
		}
		if err := s.userRepo.Create(user); err != nil {
			return "", nil, err
		}
	}

	return s.issueToken(user)
}

// EmailRegister 邮箱注册
func (s *AuthService) EmailRegister(ctx context.Context, email, plainPassword, nickname string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, apperr.New(http.StatusConflict, "email_already_registered")
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return "", nil, err
	}

	if nickname == "" {
		nickname = email[:strings.Index(email, "@")]
	}
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Nickname:     nickname,
		AuthProvider: model.AuthProviderEmail,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	return s.issueToken(user)
}

// EmailLogin 邮箱登录
func (s *AuthService) EmailLogin(ctx context.Context, email, plainPassword string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return "", nil, apperr.New(http.StatusUnauthorized, "invalid_credentials")
	}

	ok, err := password.Verify(plainPassword, user.PasswordHash)
	if err != nil || !ok {
		return "", nil, apperr.New(http.StatusUnauthorized, "invalid_credentials")
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *model.User) (string, *model.User, error) {
	token, err := jwt.GenerateToken(user.ID, s.jwtCfg.Secret, s.jwtCfg.ExpireHours)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
