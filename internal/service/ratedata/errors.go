package ratedata

import "errors"

var (
	// ErrUpstream возвращается, когда PropertyService не отдал данные
	// Календарь в этом случае остается пустым - ни одна дата не выбирается,
	// что безопаснее, чем угадывать цены или доступность
	ErrUpstream = errors.New("ratedata: upstream fetch failed")
)
