package ratedata

import (
	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	"github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
)

// Key ключ загрузки тарифных данных
// Ценовые интервалы зависят от экземпляра тарифа, заблокированные даты -
// от пары (номер, количество). Пустой RatePlanInstanceID означает, что
// тариф не подобран - цены не загружаются
type Key struct {
	RoomID             string
	Quantity           int
	RatePlanInstanceID string
}

// Result загруженные тарифные данные для одного ключа
type Result struct {
	Prices domain.PriceTable
	Blocks domain.BlockList
}

// toDomainPriceTable конвертирует ценовые интервалы в доменную модель
// Порядок исходного массива сохраняется
func toDomainPriceTable(bands []propertyservice.PriceBand) domain.PriceTable {
	table := make(domain.PriceTable, 0, len(bands))
	for _, band := range bands {
		table = append(table, domain.NightlyPriceBand{
			StartDate: band.StartDate,
			EndDate:   band.EndDate,
			Price:     band.Price,
			PlanCode:  band.PlanCode,
		})
	}
	return table
}

// toDomainBlockList конвертирует заблокированные интервалы в доменную модель
func toDomainBlockList(ranges []propertyservice.BlockedRange) domain.BlockList {
	list := make(domain.BlockList, 0, len(ranges))
	for _, r := range ranges {
		list = append(list, domain.BlockedDateRange{
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
		})
	}
	return list
}
