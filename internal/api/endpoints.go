package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"rewardshq/pkg/types"

	"golang.org/x/oauth2"
)

// emptyBody 部分写接口需要 {} 作为请求体
var emptyBody = map[string]interface{}{}

// taskPaths 每个任务分类的列表和领取地址
var taskPaths = map[types.TaskCategory]struct {
	list  string
	claim string
}{
	types.TaskCategoryPrimary: {list: "/tasks", claim: "/tasks/do-task/%s"},
	types.TaskCategoryBasic:   {list: "/tasks/basic-tasks", claim: "/tasks/basic-tasks/%s"},
	types.TaskCategoryPartner: {list: "/tasks/partner-tasks", claim: "/tasks/partner-tasks/%s"},
}

// Login 使用 Telegram initData 登录
func (c *Client) Login(ctx context.Context, initData string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{"telegramInitData": initData}, nil)
}

// Profile 获取用户信息
func (c *Client) Profile(ctx context.Context, token *oauth2.Token) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/users", nil, nil, token)
}

// Streak 获取连续登录信息
func (c *Client) Streak(ctx context.Context, token *oauth2.Token) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/users/streak-login", nil, nil, token)
}

// Points 获取积分
func (c *Client) Points(ctx context.Context, token *oauth2.Token) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/point-logs", nil, nil, token)
}

// SpinBalance 获取剩余转盘次数
func (c *Client) SpinBalance(ctx context.Context, token *oauth2.Token) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/user-spin-logs", nil, nil, token)
}

// Spin 转一次
func (c *Client) Spin(ctx context.Context, token *oauth2.Token) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/user-spin-logs", nil, nil, token)
}

// StartFarming 开启挖矿
func (c *Client) StartFarming(ctx context.Context, token *oauth2.Token) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/user-earn-hour", nil, nil, token)
}

// FarmingState 获取挖矿状态
func (c *Client) FarmingState(ctx context.Context, token *oauth2.Token) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/user-earn-hour", nil, nil, token)
}

// Tasks 获取某个分类的任务列表
func (c *Client) Tasks(ctx context.Context, token *oauth2.Token, category types.TaskCategory) (*Response, error) {
	paths, ok := taskPaths[category]
	if !ok {
		return nil, fmt.Errorf("未知的任务分类: %s", category)
	}
	return c.do(ctx, http.MethodGet, paths.list, nil, nil, token)
}

// ClaimTask 领取某个分类下的任务
func (c *Client) ClaimTask(ctx context.Context, token *oauth2.Token, category types.TaskCategory, id string) (*Response, error) {
	paths, ok := taskPaths[category]
	if !ok {
		return nil, fmt.Errorf("未知的任务分类: %s", category)
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf(paths.claim, url.PathEscape(id)), nil, nil, token)
}

// Campaigns 分页获取活动列表
func (c *Client) Campaigns(ctx context.Context, token *oauth2.Token, page, limit int) (*Response, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("keyword", "")
	return c.do(ctx, http.MethodGet, "/campaigns", query, nil, token)
}

// UserQuests 获取指定活动下的用户任务
func (c *Client) UserQuests(ctx context.Context, token *oauth2.Token, campaignIDs []string) (*Response, error) {
	query := url.Values{}
	for _, id := range campaignIDs {
		query.Add("campaignIds[]", id)
	}
	return c.do(ctx, http.MethodGet, "/user-quest/list", query, nil, token)
}

// ClaimQuest 完成用户任务
func (c *Client) ClaimQuest(ctx context.Context, token *oauth2.Token, id string) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/user-quest/"+url.PathEscape(id), nil, emptyBody, token)
}

// Referrals 分页获取邀请列表
func (c *Client) Referrals(ctx context.Context, token *oauth2.Token, page, limit int) (*Response, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	return c.do(ctx, http.MethodGet, "/user-referral/list", query, nil, token)
}

// BoostReferral 为邀请用户加速
func (c *Client) BoostReferral(ctx context.Context, token *oauth2.Token, id string) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/user-referral/boost/"+url.PathEscape(id), nil, emptyBody, token)
}

// Achievements 获取一次性成就
func (c *Client) Achievements(ctx context.Context, token *oauth2.Token) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/tasks/one-time", nil, nil, token)
}

// ClaimAchievement 领取成就的某个阶段
func (c *Client) ClaimAchievement(ctx context.Context, token *oauth2.Token, id, target string) (*Response, error) {
	path := fmt.Sprintf("/tasks/one-time/%s/%s", url.PathEscape(id), url.PathEscape(target))
	return c.do(ctx, http.MethodPost, path, nil, nil, token)
}
