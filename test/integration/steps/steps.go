package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// registerAuthSteps registers authentication helper steps.
func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am authenticated as an admin$`, iAmAuthenticatedAsAnAdmin)
	ctx.Step(`^I am authenticated as an investor$`, iAmAuthenticatedAsAnInvestor)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list should have (\d+) items$`, theResponseListShouldHaveItems)
}

// Step implementations

func iAmAuthenticatedAsAnAdmin(ctx context.Context) (context.Context, error) {
	return registerAndAuthenticate(ctx, "Admin Teste", "admin@teste.com", "admin")
}

func iAmAuthenticatedAsAnInvestor(ctx context.Context) (context.Context, error) {
	return registerAndAuthenticate(ctx, "Investidor Teste", "investidor@teste.com", "investidor")
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return SetTestContext(ctx, tc), nil
}

// registerAndAuthenticate creates a user through the registration endpoint
// and keeps its access token for subsequent requests.
func registerAndAuthenticate(ctx context.Context, name, email, role string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	payload := map[string]string{
		"nome":  name,
		"email": email,
		"senha": "Senha@2025",
		"tipo":  role,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ctx, err
	}

	resp, err := http.Post(tc.server.URL+"/api/v1/auth/registro", "application/json", bytes.NewReader(body))
	if err != nil {
		return ctx, fmt.Errorf("failed to register %s: %w", email, err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ctx, err
	}
	if resp.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration of %s failed with status %d: %s", email, resp.StatusCode, string(responseBody))
	}

	var registered struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID string `json:"id"`
		} `json:"usuario"`
	}
	if err := json.Unmarshal(responseBody, &registered); err != nil {
		return ctx, fmt.Errorf("failed to parse registration response: %w", err)
	}

	tc.accessToken = registered.AccessToken
	tc.savedValues[role+"_id"] = registered.User.ID
	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, []byte(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body []byte) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	endpoint = tc.substitute(endpoint)

	var reader io.Reader
	if body != nil {
		reader = strings.NewReader(tc.substitute(string(body)))
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

// substitute replaces {alias} placeholders with values captured by earlier
// steps.
func (tc *TestContext) substitute(s string) string {
	for alias, value := range tc.savedValues {
		s = strings.ReplaceAll(s, "{"+alias+"}", value)
	}
	return s
}

func iSaveTheResponseFieldAs(ctx context.Context, field, alias string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}
	tc.savedValues[alias] = fmt.Sprintf("%v", value)
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	expected = tc.substitute(expected)
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	expected = tc.substitute(expected)
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if _, err := tc.lookupField(field); err != nil {
		return err
	}
	return nil
}

func theResponseListShouldHaveItems(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var list []any
	if err := json.Unmarshal(tc.responseBody, &list); err != nil {
		return fmt.Errorf("response is not a JSON list: %w. Body: %s", err, string(tc.responseBody))
	}
	if len(list) != expected {
		return fmt.Errorf("expected %d items, got %d. Body: %s", expected, len(list), string(tc.responseBody))
	}
	return nil
}

// lookupField resolves a dotted path like "despesa.valor_total" or
// "despesas.0.status" in the last response body.
func (tc *TestContext) lookupField(path string) (any, error) {
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w. Body: %s", err, string(tc.responseBody))
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(tc.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid list index %q in field path %q", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(tc.responseBody))
		}
	}
	return current, nil
}
