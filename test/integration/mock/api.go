//go:build integration

package mock

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

type mockResponse struct {
	status      int
	body        string
	contentType string
}

// ApiMock serves canned bodies per method and path and records what it received.
type ApiMock struct {
	mu               sync.Mutex
	responses        map[string]map[int]mockResponse
	defaultResponses map[string]mockResponse
	requestsReceived map[string]int
	headersReceived  map[string]map[int]http.Header
	server           *httptest.Server
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		responses:        map[string]map[int]mockResponse{},
		defaultResponses: map[string]mockResponse{},
		requestsReceived: map[string]int{},
		headersReceived:  map[string]map[int]http.Header{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				key := r.Method + r.URL.Path

				a.mu.Lock()
				index := a.requestsReceived[key]
				a.requestsReceived[key] = index + 1
				if a.headersReceived[key] == nil {
					a.headersReceived[key] = map[int]http.Header{}
				}
				a.headersReceived[key][index] = r.Header.Clone()
				resp := a.responseFor(key, index)
				a.mu.Unlock()

				if resp.contentType != "" {
					w.Header().Set("Content-Type", resp.contentType)
				}
				w.WriteHeader(resp.status)
				_, _ = w.Write([]byte(resp.body))
			},
		),
	)
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// SetResponse sets the reply for the index-th call; index -1 sets the default.
func (a *ApiMock) SetResponse(index int, method, path string, status int, contentType, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	resp := mockResponse{status: status, body: body, contentType: contentType}
	key := method + path
	if index == -1 {
		a.defaultResponses[key] = resp
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]mockResponse{}
	}
	a.responses[key][index] = resp
}

func (a *ApiMock) GetRequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.requestsReceived[method+path]
}

func (a *ApiMock) GetRequestHeaders(method, path string, index int) http.Header {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.headersReceived[method+path][index]
}

// Clear forgets responses and recorded requests.
func (a *ApiMock) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses = map[string]map[int]mockResponse{}
	a.defaultResponses = map[string]mockResponse{}
	a.requestsReceived = map[string]int{}
	a.headersReceived = map[string]map[int]http.Header{}
}

func (a *ApiMock) responseFor(key string, index int) mockResponse {
	if byIndex, ok := a.responses[key]; ok {
		if resp, ok := byIndex[index]; ok {
			return resp
		}
	}
	if resp, ok := a.defaultResponses[key]; ok {
		return resp
	}
	return mockResponse{status: http.StatusNotFound}
}
