package models

import (
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

// PNRStatusResponse статус PNR с признаком источника
type PNRStatusResponse struct {
	*domain.PNRStatus
	Confirmed bool `json:"confirmed"`
	Cached    bool `json:"cached"`
}

// RecentPNRResponse элемент списка недавних PNR
type RecentPNRResponse struct {
	PNR      string    `json:"pnr"`
	ViewedAt time.Time `json:"viewedAt"`
}

// RecentPNRListResponse список недавних PNR, самые свежие первыми
type RecentPNRListResponse struct {
	Items []RecentPNRResponse `json:"items"`
}

// FromDomainStatus конвертирует domain статус в ответ
func FromDomainStatus(status *domain.PNRStatus, cached bool) *PNRStatusResponse {
	return &PNRStatusResponse{
		PNRStatus: status,
		Confirmed: status.IsConfirmed(),
		Cached:    cached,
	}
}

// FromDomainRecent конвертирует список domain записей в ответ
func FromDomainRecent(recent []domain.RecentPNR) *RecentPNRListResponse {
	items := make([]RecentPNRResponse, len(recent))
	for i, r := range recent {
		items[i] = RecentPNRResponse{PNR: r.PNR, ViewedAt: r.ViewedAt}
	}
	return &RecentPNRListResponse{Items: items}
}
