//go:build integration

package integration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	jsoniter "github.com/json-iterator/go"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	client       *http.Client
	response     *http.Response
	responseBody []byte
	remembered   map[string]string
	err          error
}

// newTestContext targets BASE_URL, a running `quotestudio serve`.
func newTestContext() *testContext {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &testContext{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 30 * time.Second},
		remembered: make(map[string]string),
	}
}

// reset clears response state between scenarios.
func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		tc.response.Body.Close()
	}

	tc.response = nil
	tc.responseBody = nil
	tc.remembered = make(map[string]string)
	tc.err = nil
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := newTestContext()

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
	ctx.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
	ctx.Step(`^I request DELETE "([^"]*)"$`, tc.iRequestDELETE)
	ctx.Step(`^I POST to "([^"]*)" with:$`, tc.iPOSTWith)
	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	ctx.Step(`^the response header "([^"]*)" should start with "([^"]*)"$`, tc.theResponseHeaderShouldStartWith)
	ctx.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, tc.theJSONFieldShouldBe)
	ctx.Step(`^the JSON field "([^"]*)" should not be empty$`, tc.theJSONFieldShouldNotBeEmpty)
	ctx.Step(`^I remember the JSON field "([^"]*)" as "([^"]*)"$`, tc.iRememberTheJSONField)
}

// theServiceIsRunning verifies the service is reachable.
func (tc *testContext) theServiceIsRunning() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.baseURL+"/-/live", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("service not reachable at %s: %w", tc.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service not healthy: status %d", resp.StatusCode)
	}

	return nil
}

func (tc *testContext) iRequestGET(path string) error {
	return tc.do(http.MethodGet, path, nil)
}

func (tc *testContext) iRequestDELETE(path string) error {
	return tc.do(http.MethodDelete, path, nil)
}

func (tc *testContext) iPOSTWith(path string, body *godog.DocString) error {
	return tc.do(http.MethodPost, path, strings.NewReader(tc.expand(body.Content)))
}

// do sends a request, expanding {name} placeholders in path.
func (tc *testContext) do(method, path string, body io.Reader) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+tc.expand(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	tc.response, tc.err = tc.client.Do(req)
	if tc.err != nil {
		return fmt.Errorf("request failed: %w", tc.err)
	}
	defer tc.response.Body.Close()

	tc.responseBody, tc.err = io.ReadAll(tc.response.Body)
	if tc.err != nil {
		return fmt.Errorf("failed to read response body: %w", tc.err)
	}

	return nil
}

func (tc *testContext) expand(s string) string {
	for name, value := range tc.remembered {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}

	return s
}

// theResponseStatusShouldBe asserts the response status code.
func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

// theResponseShouldContain asserts the response body contains the given text.
func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return fmt.Errorf("no response body")
	}

	if !bytes.Contains(tc.responseBody, []byte(text)) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theResponseHeaderShouldStartWith(name, prefix string) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if got := tc.response.Header.Get(name); !strings.HasPrefix(got, prefix) {
		return fmt.Errorf("header %s is %q, want prefix %q", name, got, prefix)
	}

	return nil
}

func (tc *testContext) theJSONFieldShouldBe(path, want string) error {
	got, err := tc.jsonField(path)
	if err != nil {
		return err
	}

	if got != want {
		return fmt.Errorf("JSON field %s is %q, want %q", path, got, want)
	}

	return nil
}

func (tc *testContext) theJSONFieldShouldNotBeEmpty(path string) error {
	got, err := tc.jsonField(path)
	if err != nil {
		return err
	}

	if got == "" {
		return fmt.Errorf("JSON field %s is empty", path)
	}

	return nil
}

func (tc *testContext) iRememberTheJSONField(path, name string) error {
	got, err := tc.jsonField(path)
	if err != nil {
		return err
	}

	tc.remembered[name] = got

	return nil
}

// jsonField reads a dotted path such as "items.0.id" from the response body.
func (tc *testContext) jsonField(path string) (string, error) {
	if tc.responseBody == nil {
		return "", fmt.Errorf("no response body")
	}

	var keys []any

	for _, part := range strings.Split(path, ".") {
		if i, err := strconv.Atoi(part); err == nil {
			keys = append(keys, i)
			continue
		}

		keys = append(keys, part)
	}

	field := jsoniter.Get(tc.responseBody, keys...)
	if err := field.LastError(); err != nil {
		return "", fmt.Errorf("JSON field %s: %w\nBody: %s", path, err, tc.responseBody)
	}

	return field.ToString(), nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
