//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lifetracker/backend/config"
	"github.com/lifetracker/backend/internal/infra/dependency"
	"github.com/lifetracker/backend/internal/integration/persistence/model"
	"github.com/lifetracker/backend/test/integration/mock"
)

const (
	testJWTSecret     = "test-jwt-secret-key-for-testing-purposes"
	testAdminUsername = "admin"
	testAdminPassword = "correct-horse-battery"
	feedPath          = "/stats/eurofxref/eurofxref-daily.xml"
)

type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db
	timeMock *mock.Time
	feed     *mock.ApiMock

	accessToken string
	ids         map[string]string
}

type response struct {
	status  int
	headers http.Header
	body    any
}

// engineSwitch lets every scenario serve a freshly wired engine on one port.
type engineSwitch struct {
	mu     sync.RWMutex
	engine *gin.Engine
}

func (s *engineSwitch) set(engine *gin.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine = engine
}

func (s *engineSwitch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	engine := s.engine
	s.mu.RUnlock()
	if engine == nil {
		http.Error(w, "server not ready", http.StatusServiceUnavailable)
		return
	}
	engine.ServeHTTP(w, r)
}

var (
	serverInit     sync.Once
	testServerPort int
	handler        = &engineSwitch{}
	feedMock       *mock.ApiMock
	feedInit       sync.Once
	adminHash      string
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if feedMock != nil {
			feedMock.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializeServer()

	test := &testContext{
		uri:      fmt.Sprintf("http://localhost:%d", testServerPort),
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
		feed:     feedMock,
		db:       mock.NewDb("lifetracker", model.AllModels()),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Session steps
	ctx.Given(`^I am logged in$`, test.iAmLoggedIn)
	ctx.Given(`^I am logged in with an expired session$`, test.iAmLoggedInWithAnExpiredSession)

	// Data setup steps
	ctx.Step(`^the following "([^"]*)" rows exist:$`, test.theFollowingRowsExist)
	ctx.Step(`^the "([^"]*)" table is missing$`, test.theTableIsMissing)

	// Rate feed steps
	ctx.Step(`^the rate feed responds with:$`, test.theRateFeedRespondsWith)
	ctx.Step(`^the rate feed fails with status (\d+)$`, test.theRateFeedFailsWithStatus)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, test.iSendRequestsToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)
	ctx.Then(`^the response should set the cookie "([^"]*)"$`, test.theResponseShouldSetTheCookie)
	ctx.Then(`^the response should clear the cookie "([^"]*)"$`, test.theResponseShouldClearTheCookie)
	ctx.Then(`^the rate feed should have received (\d+) requests?$`, test.theRateFeedShouldHaveReceivedRequests)
	ctx.Then(`^the last rate feed request should have the header "([^"]*)" with "([^"]*)"$`, test.theLastRateFeedRequestShouldHaveHeader)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func initializeServer() {
	serverInit.Do(func() {
		feedInit.Do(func() {
			feedMock = mock.NewApiServer()
			feedMock.Start()
		})

		hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
		if err != nil {
			panic(fmt.Sprintf("failed to hash password: %v", err))
		}
		adminHash = string(hash)

		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("DATABASE_DRIVER", "sqlite")
		_ = os.Setenv("DATABASE_URL", "file:lifetracker?mode=memory&cache=shared")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("ADMIN_USERNAME", testAdminUsername)
		_ = os.Setenv("ADMIN_PASSWORD_HASH", adminHash)
		_ = os.Setenv("EXCHANGE_RATE_FEED_URL", feedMock.GetUrl()+feedPath)
		_ = os.Setenv("EXCHANGE_RATE_TIMEOUT", "2s")

		go func() {
			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: handler,
			}
			_ = server.ListenAndServe()
		}()
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil
	t.ids = make(map[string]string)
	t.timeMock.Reset()
	t.feed.Clear()

	if err := t.db.Migrate(); err != nil {
		return err
	}
	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}

	// A fresh injector per scenario resets the in-memory rate table
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	injector := dependency.NewInjector(cfg, t.db.DbConn, mock.NewRedis(), t.timeMock)
	handler.set(injector.Router.Setup(cfg.Server.Environment))
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.New("api server did not become ready")
}

func (t *testContext) theCurrentTimeIs(value string) error {
	current, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(current)
	return nil
}

func (t *testContext) iAmLoggedIn() error {
	token, err := t.signSession(t.timeMock.Now().UTC().Add(7 * 24 * time.Hour))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmLoggedInWithAnExpiredSession() error {
	token, err := t.signSession(t.timeMock.Now().UTC().Add(-time.Hour))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) signSession(expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"username": testAdminUsername,
		"sub":      testAdminUsername,
		"iss":      "lifetracker",
		"iat":      jwt.NewNumericDate(expiresAt.Add(-7 * 24 * time.Hour)),
		"exp":      jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return signed, nil
}

// theFollowingRowsExist inserts a JSON array of rows into table. Keys are the
// model field names; missing IDs are generated.
func (t *testContext) theFollowingRowsExist(table string, content *godog.DocString) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	rowsPtr := reflect.New(reflect.SliceOf(entityType))
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), rowsPtr.Interface()); err != nil {
		return fmt.Errorf("failed to parse rows: %w", err)
	}

	rows := rowsPtr.Elem()
	for i := 0; i < rows.Len(); i++ {
		idField := rows.Index(i).FieldByName("ID")
		if idField.IsValid() && idField.Interface() == uuid.Nil {
			idField.Set(reflect.ValueOf(uuid.New()))
		}
	}

	return t.db.DbConn.Create(rowsPtr.Interface()).Error
}

func (t *testContext) theTableIsMissing(table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}
	return t.db.DbConn.Migrator().DropTable(entity)
}

func (t *testContext) theRateFeedRespondsWith(body *godog.DocString) error {
	t.feed.SetResponse(-1, http.MethodGet, feedPath, http.StatusOK, "application/xml", body.Content)
	return nil
}

func (t *testContext) theRateFeedFailsWithStatus(status int) error {
	t.feed.SetResponse(-1, http.MethodGet, feedPath, status, "text/plain", "unavailable")
	return nil
}

func (t *testContext) theRateFeedShouldHaveReceivedRequests(count int) error {
	if got := t.feed.GetRequestCount(http.MethodGet, feedPath); got != count {
		return fmt.Errorf("expected %d feed requests, got %d", count, got)
	}
	return nil
}

func (t *testContext) theLastRateFeedRequestShouldHaveHeader(key, value string) error {
	count := t.feed.GetRequestCount(http.MethodGet, feedPath)
	if count == 0 {
		return fmt.Errorf("the rate feed received no requests")
	}
	if got := t.feed.GetRequestHeaders(http.MethodGet, feedPath, count-1).Get(key); got != value {
		return fmt.Errorf("expected feed header %s to be '%s', got '%s'", key, value, got)
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iSendRequestsToWithBody(count int, method, path string, body *godog.DocString) error {
	for i := 0; i < count; i++ {
		if err := t.iSendARequestToWithBody(method, path, body); err != nil {
			return err
		}
	}
	return nil
}

// replacePlaceholders swaps {{<key>_id}} for the last id seen under key.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	for key, id := range t.ids {
		content = strings.ReplaceAll(content, "{{"+key+"_id}}", id)
	}
	content = strings.ReplaceAll(content, "{{unknown_id}}", uuid.Nil.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture ids of wrapped resources, e.g. {"task": {"id": ...}}
	for key, value := range responseBody {
		if resource, ok := value.(map[string]any); ok {
			if id, ok := resource["id"].(string); ok {
				if _, err := uuid.Parse(id); err == nil {
					t.ids[key] = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field '%s' expected null, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		if count == 0 && getFieldValue(body, field) == nil {
			return nil
		}
		return fmt.Errorf("field '%s' is not an array: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldBe(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.headers.Get(header); actual != expected {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseShouldSetTheCookie(name string) error {
	cookie, err := t.responseCookie(name)
	if err != nil {
		return err
	}
	if cookie.Value == "" || !cookie.HttpOnly {
		return fmt.Errorf("cookie '%s' expected an httpOnly value, got %+v", name, cookie)
	}
	return nil
}

func (t *testContext) theResponseShouldClearTheCookie(name string) error {
	cookie, err := t.responseCookie(name)
	if err != nil {
		return err
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		return fmt.Errorf("cookie '%s' expected to be cleared, got %+v", name, cookie)
	}
	return nil
}

func (t *testContext) responseCookie(name string) (*http.Cookie, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	resp := http.Response{Header: t.response.headers}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie, nil
		}
	}
	return nil, fmt.Errorf("cookie '%s' not set", name)
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	query := t.db.DbConn.Model(entity)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if int(count) != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	field := object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
