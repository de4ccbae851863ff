// Package sheets реализует клиент Google Sheets API для сервисного аккаунта.
//
// Аутентификация идет по стандартному OAuth2 JWT-bearer потоку: подписанный
// RS256 assertion обменивается на bearer-токен у token-эндпоинта Google.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	googleTokenURL = "https://oauth2.googleapis.com/token"
	grantTypeJWT   = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	scopeSheets    = "https://www.googleapis.com/auth/spreadsheets"
)

// NormalizePrivateKey приводит PEM-ключ из переменной окружения к рабочему виду:
// разворачивает экранированные переводы строк и срезает обрамляющие кавычки.
func NormalizePrivateKey(key string) string {
	key = strings.ReplaceAll(key, `\n`, "\n")
	if strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) && len(key) >= 2 {
		key = key[1 : len(key)-1]
	}
	return key
}

// assertionClaims описывает claims сервисного аккаунта для JWT-bearer обмена.
type assertionClaims struct {
	Scope                string `json:"scope"`
	jwt.RegisteredClaims        // Iss, Aud, IssuedAt, ExpiresAt
}

// TokenSource выпускает и кеширует bearer-токены сервисного аккаунта.
type TokenSource struct {
	email      string
	privateKey any // *rsa.PrivateKey
	tokenURL   string
	httpClient *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewTokenSource разбирает PEM-ключ сервисного аккаунта и возвращает источник токенов.
func NewTokenSource(serviceAccountEmail, privateKeyPEM string) (*TokenSource, error) {
	const op = "sheets.NewTokenSource"

	if serviceAccountEmail == "" {
		return nil, fmt.Errorf("%s: service account email is missing", op)
	}
	if privateKeyPEM == "" {
		return nil, fmt.Errorf("%s: private key is missing", op)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(NormalizePrivateKey(privateKeyPEM)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &TokenSource{
		email:      serviceAccountEmail,
		privateKey: key,
		tokenURL:   googleTokenURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Token возвращает действующий bearer-токен, при необходимости обменивая
// новый подписанный assertion. Токен кешируется до истечения срока жизни.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	const op = "sheets.Token"

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && time.Now().Add(time.Minute).Before(ts.expiry) {
		return ts.token, nil
	}

	now := time.Now()
	claims := assertionClaims{
		Scope: scopeSheets,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.email,
			Audience:  jwt.ClaimStrings{ts.tokenURL},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.privateKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	form := url.Values{}
	form.Set("grant_type", grantTypeJWT)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%s: empty access token in response", op)
	}

	ts.token = tokenResp.AccessToken
	ts.expiry = now.Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	return ts.token, nil
}
