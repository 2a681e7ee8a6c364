package auth

import (
	"rewardshq/internal/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// Session 一个账号的登录会话，创建后不再修改
type Session struct {
	ID       uuid.UUID
	Index    int
	Token    *oauth2.Token
	Username string
}

// Valid 会话是否持有可用的 access token
func (s *Session) Valid() bool {
	return s != nil && s.Token.Valid()
}

// AccessToken 返回 bearer token，会话无效时返回 nil
func (s *Session) AccessToken() *oauth2.Token {
	if !s.Valid() {
		return nil
	}
	return s.Token
}

// Log 返回带账号信息的日志条目
func (s *Session) Log() *logrus.Entry {
	if s == nil {
		return logger.WithFields(logger.Fields{})
	}
	return logger.WithFields(logger.Fields{
		"account": s.Index + 1,
		"session": s.ID.String()[:8],
	})
}
