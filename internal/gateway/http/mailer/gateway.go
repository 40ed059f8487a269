package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"yardbook/internal/entities"
	retrierconfig "yardbook/pkg/retrier"
	"yardbook/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "mail-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type MailGateway struct {
	baseURL    string
	httpClient *http.Client
	retrier    retrier
}

func New(baseURL string, timeout time.Duration) *MailGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &MailGateway{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (m *MailGateway) SendReservationNotice(ctx context.Context, notice entities.ReservationNotice) error {
	req := sendMailRequest{
		To:       notice.Email,
		Subject:  fmt.Sprintf("Reservation for %s", notice.ReservationDate.Format(time.DateOnly)),
		Template: templateReservationNotice,
		Params: map[string]string{
			"supplier_name":      notice.SupplierName,
			"reservation_date":   notice.ReservationDate.Format(time.DateOnly),
			"day":                notice.Day.String(),
			"allocated_capacity": strconv.FormatInt(notice.AllocatedCapacity, 10),
			"reject_token":       notice.RejectToken,
		},
	}

	err := m.executeWithMetrics(ctx, "SendReservationNotice", req)
	if err != nil {
		return fmt.Errorf("gateway mailer, send reservation notice: %w", err)
	}
	return nil
}

func (m *MailGateway) SendBookingStatusMail(ctx context.Context, mail entities.BookingStatusMail) error {
	req := sendMailRequest{
		To:       mail.Email,
		Subject:  fmt.Sprintf("Booking %s %s", mail.Reference, mail.Status),
		Template: templateBookingStatusChange,
		Params: map[string]string{
			"supplier_name": mail.SupplierName,
			"reference":     mail.Reference,
			"booking_date":  mail.BookingDate.Format(time.DateOnly),
			"status":        mail.Status.String(),
		},
	}

	err := m.executeWithMetrics(ctx, "SendBookingStatusMail", req)
	if err != nil {
		return fmt.Errorf("gateway mailer, send booking status mail: %w", err)
	}
	return nil
}

func (m *MailGateway) send(ctx context.Context, mailReq sendMailRequest) error {
	body, err := json.Marshal(mailReq)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/v1/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return &statusError{code: resp.StatusCode, body: string(respBody)}
	}

	return nil
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

func (m *MailGateway) executeWithMetrics(ctx context.Context, method string, mailReq sendMailRequest) error {
	var attempt uint64
	start := time.Now()

	err := m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return m.send(ctx, mailReq)
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
