package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rewardshq/internal/logger"

	"golang.org/x/oauth2"
)

// defaultHeaders 与网页端保持一致的请求头
var defaultHeaders = map[string]string{
	"Accept":          "application/json, text/plain, */*",
	"Content-Type":    "application/json",
	"User-Agent":      "Mozilla/5.0",
	"Accept-Language": "en-US,en;q=0.9",
	"Origin":          "https://rewardshq.shards.tech",
	"Referer":         "https://rewardshq.shards.tech/",
}

// Response 原始响应
type Response struct {
	StatusCode int
	Body       []byte
}

// Client RewardsHQ REST 客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建客户端，proxyDSN 为空时直连
func NewClient(baseURL string, proxyDSN string, timeout time.Duration) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxyDSN != "" {
		proxyURL, err := url.Parse(proxyDSN)
		if err != nil {
			return nil, fmt.Errorf("解析代理地址失败: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

// do 发送请求，token 为 nil 时不带认证头；只有网络错误才返回 error
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, token *oauth2.Token) (*Response, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	for key, value := range defaultHeaders {
		req.Header.Set(key, value)
	}
	if token != nil {
		token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求 %s %s 失败: %w", method, path, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应体失败: %w", err)
	}

	logger.Debugf("%s %s -> %d", method, path, resp.StatusCode)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       bodyBytes,
	}, nil
}
