package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// TokenProvider выдает действующий bearer-токен для запросов к API.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client клиент Google Sheets API v4, работает с одной таблицей.
type Client struct {
	sheetID    string
	auth       TokenProvider
	apiURL     string
	httpClient *http.Client
}

// NewClient создает клиент для таблицы sheetID с данной аутентификацией.
func NewClient(sheetID string, auth TokenProvider) *Client {
	return &Client{
		sheetID:    sheetID,
		auth:       auth,
		apiURL:     "https://sheets.googleapis.com/v4",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.apiURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return nil, err
	}
	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Append дописывает строки в конец диапазона, не перезаписывая существующие
// данные (insertDataOption=INSERT_ROWS). Один вызов — одна batch-операция,
// частичных повторов нет.
func (c *Client) Append(ctx context.Context, valueRange string, values [][]string) error {
	const op = "sheets.Append"

	query := url.Values{}
	query.Set("valueInputOption", "USER_ENTERED")
	query.Set("insertDataOption", "INSERT_ROWS")

	path := fmt.Sprintf("/spreadsheets/%s/values/%s:append",
		url.PathEscape(c.sheetID), url.PathEscape(valueRange))
	req, err := c.newRequest(ctx, http.MethodPost, path, query, map[string]any{
		"values": values,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}
	return nil
}

// Values читает диапазон таблицы и возвращает строки как матрицу значений.
func (c *Client) Values(ctx context.Context, valueRange string) ([][]string, error) {
	const op = "sheets.Values"

	path := fmt.Sprintf("/spreadsheets/%s/values/%s",
		url.PathEscape(c.sheetID), url.PathEscape(valueRange))
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}

	var valuesResp struct {
		Values [][]string `json:"values"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&valuesResp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return valuesResp.Values, nil
}
