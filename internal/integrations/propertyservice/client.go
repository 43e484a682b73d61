package propertyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ArtStay PropertyService
// Через него идут все обращения к внешнему backend'у: номера, тарифы,
// ценовые интервалы, заблокированные даты и создание бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PropertyService
// transport может быть nil - тогда используется транспорт по умолчанию
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// GetRoom получает номер по идентификатору
func (c *Client) GetRoom(ctx context.Context, roomID string) (*Room, error) {
	url := fmt.Sprintf("%s/api/v1/rooms/%s", c.baseURL, roomID)

	var room Room
	if err := c.getJSON(ctx, url, &room, ErrRoomNotFound); err != nil {
		return nil, err
	}

	return &room, nil
}

// GetRatePlans получает тарифные планы номера
func (c *Client) GetRatePlans(ctx context.Context, roomID string) ([]RatePlan, error) {
	url := fmt.Sprintf("%s/api/v1/rooms/%s/rateplans", c.baseURL, roomID)

	var plans []RatePlan
	if err := c.getJSON(ctx, url, &plans, ErrRoomNotFound); err != nil {
		return nil, err
	}

	return plans, nil
}

// GetPriceBands получает ценовые интервалы для экземпляра тарифа
// Порядок интервалов в ответе значим: при пересечении выигрывает первый
func (c *Client) GetPriceBands(ctx context.Context, ratePlanInstanceID string) ([]PriceBand, error) {
	url := fmt.Sprintf("%s/api/v1/rateplans/%s/pricebands", c.baseURL, ratePlanInstanceID)

	var bands []PriceBand
	if err := c.getJSON(ctx, url, &bands, ErrRatePlanNotFound); err != nil {
		return nil, err
	}

	return bands, nil
}

// GetBlockedRanges получает заблокированные интервалы дат для номера
// при запрошенном количестве единиц
func (c *Client) GetBlockedRanges(ctx context.Context, roomID string, quantity int) ([]BlockedRange, error) {
	url := fmt.Sprintf("%s/api/v1/rooms/blocked-ranges", c.baseURL)

	body, err := json.Marshal(BlockedRangesRequest{RoomID: roomID, Quantity: quantity})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrRoomNotFound
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var ranges []BlockedRange
	if err := json.NewDecoder(resp.Body).Decode(&ranges); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return ranges, nil
}

// CreateReservation создает бронирование в PropertyService
// Запрос выполняется ровно один раз: автоматический повтор при сетевой
// ошибке рискует создать дубликат бронирования
func (c *Client) CreateReservation(ctx context.Context, reservation *ReservationRequest) error {
	url := fmt.Sprintf("%s/api/v1/reservations", c.baseURL)

	body, err := json.Marshal(reservation)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		c.log.Info("Reservation created: room_id=%s, start=%s, end=%s",
			reservation.RoomID, reservation.StartDate, reservation.EndDate)
		return nil

	case http.StatusNotFound:
		return ErrRoomNotFound

	case http.StatusConflict, http.StatusUnprocessableEntity:
		// Backend отклонил бронирование - передаем его сообщение дословно
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return &ReservationRejectedError{Message: "reservation was rejected by the property service"}
		}
		c.log.Warn("Reservation rejected by PropertyService: room_id=%s, message=%s",
			reservation.RoomID, apiErr.Message)
		return &ReservationRejectedError{Message: apiErr.Message}

	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается при статусе 404
func (c *Client) getJSON(ctx context.Context, url string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
