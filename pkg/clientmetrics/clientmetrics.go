// Package clientmetrics оборачивает http.RoundTripper для сбора метрик
// запросов к внешним сервисам
package clientmetrics

import (
	"net/http"
	"strconv"
	"time"
)

// Recorder интерфейс для записи метрик интеграционных запросов
type Recorder interface {
	RecordIntegrationRequest(target, method, status string, duration time.Duration)
}

// Transport http.RoundTripper с записью метрик для каждого запроса
type Transport struct {
	base     http.RoundTripper
	recorder Recorder
	target   string
}

// WrapTransport оборачивает base в Transport с метриками
// Если base == nil, используется http.DefaultTransport
func WrapTransport(base http.RoundTripper, recorder Recorder, target string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:     base,
		recorder: recorder,
		target:   target,
	}
}

// RoundTrip выполняет запрос и записывает метрики
// Сетевые ошибки записываются со статусом "error"
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.recorder.RecordIntegrationRequest(t.target, req.Method, status, time.Since(start))

	return resp, err
}
