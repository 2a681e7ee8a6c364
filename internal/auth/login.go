package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"rewardshq/internal/api"
	"rewardshq/internal/logger"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

var (
	// ErrIndexOutOfRange 账号索引越界
	ErrIndexOutOfRange = errors.New("账号索引超出范围")
	// ErrQueryExpired initData 已过期或无效
	ErrQueryExpired = errors.New("query 已过期")
	// ErrIncompleteToken 登录响应中缺少 accessToken 或 refreshToken
	ErrIncompleteToken = errors.New("登录响应中的 token 不完整")
)

// Authenticator 使用 initData 列表登录
type Authenticator struct {
	client  *api.Client
	queries []string
}

// NewAuthenticator 创建认证器
func NewAuthenticator(client *api.Client, queries []string) *Authenticator {
	return &Authenticator{
		client:  client,
		queries: queries,
	}
}

// Count 账号数量
func (a *Authenticator) Count() int {
	return len(a.queries)
}

// Login 登录第 index 个账号，成功后展示用户信息、转盘次数、积分和连续登录
func (a *Authenticator) Login(ctx context.Context, index int) (*Session, error) {
	if index < 0 || index >= len(a.queries) {
		logger.Errorf("账号索引 %d 超出范围", index)
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	resp, err := a.client.Login(ctx, a.queries[index])
	if err != nil {
		logger.Errorf("登录请求失败: %v", err)
		return nil, err
	}

	if resp.StatusCode != http.StatusCreated {
		logger.Errorf("Query 已过期，状态码: %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: 状态码 %d", ErrQueryExpired, resp.StatusCode)
	}

	data, _ := resp.Data()
	accessToken := api.String(data, "", "accessToken")
	refreshToken := api.String(data, "", "refreshToken")
	if accessToken == "" || refreshToken == "" {
		logger.Error("登录响应中的 token 不完整")
		return nil, ErrIncompleteToken
	}

	session := &Session{
		ID:    uuid.New(),
		Index: index,
		Token: &oauth2.Token{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "Bearer",
		},
	}
	session.Log().Info("登录成功，token 已保存")

	// 以下信息仅用于展示，失败不影响会话
	session.Username = a.fetchUsername(ctx, session)
	session.Log().Infof("用户名: %s", session.Username)
	a.showSpinBalance(ctx, session)
	a.showPoints(ctx, session)
	a.showStreak(ctx, session)

	return session, nil
}

// fetchUsername 获取用户名（firstName + lastName）
func (a *Authenticator) fetchUsername(ctx context.Context, session *Session) string {
	resp, err := a.client.Profile(ctx, session.Token)
	if err != nil {
		session.Log().Errorf("获取用户信息失败: %v", err)
		return ""
	}
	if !resp.OK() {
		session.Log().Errorf("获取用户信息失败，状态码: %d", resp.StatusCode)
		return ""
	}
	data, _ := resp.Data()
	return api.String(data, "", "firstName") + api.String(data, "", "lastName")
}

func (a *Authenticator) showSpinBalance(ctx context.Context, session *Session) {
	resp, err := a.client.SpinBalance(ctx, session.Token)
	if err != nil {
		session.Log().Errorf("获取转盘次数失败: %v", err)
		return
	}
	balance, _ := api.DecodeSpinBalance(resp)
	session.Log().Infof("转盘次数: %d", balance.NumberSpin)
}

func (a *Authenticator) showPoints(ctx context.Context, session *Session) {
	resp, err := a.client.Points(ctx, session.Token)
	if err != nil {
		session.Log().Errorf("获取积分失败: %v", err)
		return
	}
	if !resp.OK() {
		session.Log().Errorf("获取积分失败，状态码: %d", resp.StatusCode)
		return
	}
	data, _ := resp.Data()
	session.Log().Infof("积分: %d", api.Int(data, 0, "point"))
	session.Log().Infof("邀请积分: %d", api.Int(data, 0, "referralPoint"))
}

func (a *Authenticator) showStreak(ctx context.Context, session *Session) {
	resp, err := a.client.Streak(ctx, session.Token)
	if err != nil {
		session.Log().Errorf("获取连续登录信息失败: %v", err)
		return
	}
	if !resp.OK() {
		session.Log().Errorf("获取连续登录信息失败，状态码: %d", resp.StatusCode)
		return
	}
	data, _ := resp.Data()
	session.Log().Infof("连续登录: %d", api.Int(data, 0, "streak"))
	session.Log().Infof("连续登录奖励: %s", api.Scalar(data, "N/A", "pointBonus"))
}
