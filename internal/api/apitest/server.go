// Package apitest 提供测试用的 RewardsHQ 假服务端
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"rewardshq/internal/api"
)

// Server 按 "METHOD path" 路由的假服务端，记录所有请求
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []string
}

// NewServer 创建假服务端，测试结束时自动关闭
func NewServer(t *testing.T) *Server {
	s := &Server{routes: make(map[string]http.HandlerFunc)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	s.mu.Lock()
	s.calls = append(s.calls, key)
	handler := s.routes[key]
	s.mu.Unlock()

	if handler == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
		return
	}
	handler(w, r)
}

// Handle 注册处理函数
func (s *Server) Handle(method, path string, fn http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = fn
}

// JSON 注册固定响应
func (s *Server) JSON(method, path string, status int, body string) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		Write(w, status, body)
	})
}

// Calls 返回所有请求，格式为 "METHOD path"
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// Count 返回某个路由被请求的次数
func (s *Server) Count(method, path string) int {
	key := method + " " + path
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, call := range s.calls {
		if call == key {
			n++
		}
	}
	return n
}

// Client 返回指向假服务端的客户端
func (s *Server) Client(t *testing.T) *api.Client {
	client, err := api.NewClient(s.URL, "", 5*time.Second)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}

// Write 写 JSON 响应
func Write(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// LoginOK 注册一个成功的登录和用户信息接口
func (s *Server) LoginOK() {
	s.JSON(http.MethodPost, "/auth/login", http.StatusCreated, `{"data":{"accessToken":"access","refreshToken":"refresh"}}`)
	s.JSON(http.MethodGet, "/users", http.StatusOK, `{"data":{"firstName":"Ann","lastName":"Lee"}}`)
	s.JSON(http.MethodGet, "/user-spin-logs", http.StatusOK, `{"data":{"numberSpin":0}}`)
	s.JSON(http.MethodGet, "/point-logs", http.StatusOK, `{"data":{"point":120,"referralPoint":8}}`)
	s.JSON(http.MethodGet, "/users/streak-login", http.StatusOK, `{"data":{"streak":3,"pointBonus":50}}`)
}
