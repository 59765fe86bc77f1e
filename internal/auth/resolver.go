// Package auth обращается к внешнему коллаборатору аутентификации.
// Ядро не разбирает и не проверяет учетные данные само: оно получает
// уже разрешенную личность (аккаунт и роль) или отказ.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	"github.com/shenikar/mealmatch_system/internal/config"
	"github.com/shenikar/mealmatch_system/internal/models"
)

// Resolver разрешает учетные данные запроса в аккаунт и роль
type Resolver interface {
	Resolve(ctx context.Context, credential string) (*models.Requester, error)
}

// HTTPResolver - реализация Resolver поверх HTTP API коллаборатора
type HTTPResolver struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPResolver создает новый HTTPResolver
func NewHTTPResolver(cfg *config.Config) *HTTPResolver {
	return &HTTPResolver{
		baseURL: cfg.AuthServiceURL,
		httpClient: &http.Client{
			Timeout: cfg.AuthTimeout,
		},
	}
}

type resolveRequest struct {
	Credential string `json:"credential"`
}

type resolveResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	Role      string    `json:"role"`
}

// Resolve отправляет учетные данные коллаборатору.
// Отказ коллаборатора передается без изменений как Unauthenticated.
func (r *HTTPResolver) Resolve(ctx context.Context, credential string) (*models.Requester, error) {
	if credential == "" {
		return nil, apperrors.New(apperrors.KindUnauthenticated, "credential is required")
	}

	payload, err := json.Marshal(resolveRequest{Credential: credential})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resolve request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/resolve", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create resolve request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorageUnavailable, "auth service unavailable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// разбор ниже
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperrors.New(apperrors.KindUnauthenticated, "identity could not be resolved")
	default:
		return nil, apperrors.Newf(apperrors.KindStorageUnavailable, "auth service returned status %d", resp.StatusCode)
	}

	var body resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorageUnavailable, "failed to decode auth service response", err)
	}

	requester := &models.Requester{
		AccountID: body.AccountID,
		Role:      models.Role(body.Role),
	}
	if requester.AccountID == uuid.Nil || !requester.Role.IsValid() {
		return nil, apperrors.New(apperrors.KindUnauthenticated, "identity could not be resolved")
	}
	return requester, nil
}
