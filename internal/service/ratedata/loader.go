package ratedata

import (
	"context"
	"fmt"
	"sync"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
)

// Loader загружает тарифные данные для ключа (номер, количество, тариф)
//
// Ценовые интервалы и заблокированные даты не зависят друг от друга,
// поэтому запрашиваются параллельно. Защита от устаревших ответов
// (last-key-wins) реализуется вызывающей стороной через номер поколения
// сессии - Loader только загружает
type Loader struct {
	client PropertyServiceClient
	logger Logger
}

// NewLoader создает новый загрузчик тарифных данных
func NewLoader(client PropertyServiceClient, logger Logger) *Loader {
	return &Loader{
		client: client,
		logger: logger,
	}
}

// Load загружает ценовые интервалы и заблокированные даты для ключа
// Если тариф не подобран (пустой RatePlanInstanceID), цены не запрашиваются
// и таблица цен остается пустой - ни одна ночь не будет бронируемой
func (l *Loader) Load(ctx context.Context, key Key) (*Result, error) {
	var (
		wg sync.WaitGroup

		prices    domain.PriceTable
		pricesErr error

		blocks    domain.BlockList
		blocksErr error
	)

	if key.RatePlanInstanceID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bands, err := l.client.GetPriceBands(ctx, key.RatePlanInstanceID)
			if err != nil {
				pricesErr = err
				return
			}
			prices = toDomainPriceTable(bands)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		ranges, err := l.client.GetBlockedRanges(ctx, key.RoomID, key.Quantity)
		if err != nil {
			blocksErr = err
			return
		}
		blocks = toDomainBlockList(ranges)
	}()

	wg.Wait()

	if pricesErr != nil {
		l.logger.Error("Load: failed to fetch price bands for rrp_id=%s: %v", key.RatePlanInstanceID, pricesErr)
		return nil, fmt.Errorf("%w: price bands: %v", ErrUpstream, pricesErr)
	}
	if blocksErr != nil {
		l.logger.Error("Load: failed to fetch blocked ranges for room_id=%s, quantity=%d: %v",
			key.RoomID, key.Quantity, blocksErr)
		return nil, fmt.Errorf("%w: blocked ranges: %v", ErrUpstream, blocksErr)
	}

	l.logger.Info("Load: loaded %d price bands and %d blocked ranges for room_id=%s, quantity=%d, rrp_id=%s",
		len(prices), len(blocks), key.RoomID, key.Quantity, key.RatePlanInstanceID)

	return &Result{Prices: prices, Blocks: blocks}, nil
}
