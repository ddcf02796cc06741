package clients

import (
	// Go Internal Packages
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	// Local Packages
	errors "pos-engine/errors"
	models "pos-engine/models"

	// External Packages
	"go.uber.org/zap"
)

const maxResponseBody = 4 << 10

type ServiceConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// HTTPPaymentClient talks to the payment API over HTTP. It serves both as a
// data source for the catalog and as a submission backend.
type HTTPPaymentClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewHTTPPaymentClient(cfg ServiceConfig, logger *zap.Logger) *HTTPPaymentClient {
	return &HTTPPaymentClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type transactionDataResponse struct {
	Status  int                     `json:"status"`
	Message string                  `json:"message"`
	Data    *models.TransactionData `json:"data"`
}

// FetchTransactionData retrieves the organization, locations and readers.
func (c *HTTPPaymentClient) FetchTransactionData(ctx context.Context) (*models.TransactionData, error) {
	url := fmt.Sprintf("%s/api/v1/transaction-data", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(httpReq, "")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("transaction data request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment api returned status %d", resp.StatusCode)
	}

	var result transactionDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return nil, fmt.Errorf("payment api returned no transaction data")
	}
	return result.Data, nil
}

// PostTransaction posts a finalized payload. Any failure comes back as a
// submission error carrying the HTTP status and the response body.
func (c *HTTPPaymentClient) PostTransaction(ctx context.Context, payload *models.Payload) (*models.SubmissionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.SubmissionErr(http.StatusBadRequest, "Error encoding transaction", nil, err)
	}

	url := fmt.Sprintf("%s/api/v1/transactions", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.SubmissionErr(http.StatusInternalServerError, "Error posting transaction", nil, err)
	}
	c.setHeaders(httpReq, payload.ReferenceID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("transaction request failed",
			zap.String("reference_id", payload.ReferenceID),
			zap.Error(err),
		)
		return nil, errors.SubmissionErr(http.StatusServiceUnavailable, "Error posting transaction", nil, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		details, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		c.logger.Error("transaction request returned error",
			zap.String("reference_id", payload.ReferenceID),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, errors.SubmissionErr(resp.StatusCode,
			fmt.Sprintf("Error posting transaction: payment api returned status %d", resp.StatusCode),
			string(details), nil)
	}

	// Any 2xx means the backend took the transaction; the body is informational.
	result := models.SubmissionResult{Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return &result, nil
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		c.logger.Warn("payment api returned a non-JSON body",
			zap.String("reference_id", payload.ReferenceID),
			zap.Int("status_code", resp.StatusCode),
		)
		result = models.SubmissionResult{Status: resp.StatusCode, Message: string(raw)}
	}
	if result.Status == 0 {
		result.Status = resp.StatusCode
	}
	return &result, nil
}

func (c *HTTPPaymentClient) setHeaders(req *http.Request, referenceID string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if referenceID != "" {
		req.Header.Set("X-Reference-ID", referenceID)
	}
}
