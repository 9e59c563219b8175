package domain

import "time"

// PerformanceSnapshot é o desempenho de uma campanha congelado pelo job de
// sincronização. Guarda o agregado dos últimos 7 dias na data da coleta.
type PerformanceSnapshot struct {
	ID            int                  `json:"id"`
	ConnectionKey string               `json:"connection_key"`
	CustomerID    string               `json:"customer_id"`
	CampaignID    int64                `json:"campaign_id"`
	CampaignName  string               `json:"campaign_name"`
	SnapshotDate  string               `json:"snapshot_date"` // Formato yyyy-mm-dd
	Metrics       *CampaignPerformance `json:"metrics"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}
