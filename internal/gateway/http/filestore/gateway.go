package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	retrierconfig "yardbook/pkg/retrier"
	"yardbook/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "file-store"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// FileStoreGateway кладёт вложения в объектное хранилище по HTTP.
// Ключ объекта детерминирован, поэтому повтор PUT безопасен.
type FileStoreGateway struct {
	baseURL    string
	bucket     string
	httpClient *http.Client
	retrier    retrier
}

func New(baseURL, bucket string, timeout time.Duration) *FileStoreGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &FileStoreGateway{
		baseURL: baseURL,
		bucket:  bucket,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (f *FileStoreGateway) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	objectURL := f.objectURL(key)

	err := f.executeWithMetrics(ctx, "Upload", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, objectURL, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
		req.ContentLength = int64(len(data))

		return f.do(req, http.StatusOK, http.StatusCreated)
	})
	if err != nil {
		return "", fmt.Errorf("gateway file store, upload %s: %w", key, err)
	}

	return objectURL, nil
}

func (f *FileStoreGateway) Delete(ctx context.Context, key string) error {
	objectURL := f.objectURL(key)

	err := f.executeWithMetrics(ctx, "Delete", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, objectURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		return f.do(req, http.StatusOK, http.StatusNoContent, http.StatusNotFound)
	})
	if err != nil {
		return fmt.Errorf("gateway file store, delete %s: %w", key, err)
	}

	return nil
}

func (f *FileStoreGateway) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", f.baseURL, f.bucket, url.PathEscape(key))
}

func (f *FileStoreGateway) do(req *http.Request, okStatuses ...int) error {
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	for _, code := range okStatuses {
		if resp.StatusCode == code {
			return nil
		}
	}

	respBody, _ := io.ReadAll(resp.Body)
	return &statusError{code: resp.StatusCode, body: string(respBody)}
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.code, e.body)
}

func isRetryableStatus(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
	}
	// сетевые ошибки и таймауты ретраим
	return true
}

func (f *FileStoreGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := f.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := getStatusLabel(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func getStatusLabel(err error) string {
	if err == nil {
		return "OK"
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "ERROR"
}
