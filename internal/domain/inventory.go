package domain

import "time"

type LowStockAlert struct {
	AlertID     int64      `json:"alertId"`
	ProductID   int64      `json:"productId"`
	ProductName string     `json:"productName"`
	Stock       int        `json:"stock"`
	Threshold   int        `json:"threshold"`
	RaisedAt    *time.Time `json:"raisedAt,omitempty"`
}

func (a LowStockAlert) EntityID() int64 { return a.AlertID }

func (a LowStockAlert) Validate() error {
	return requirePositiveID("low stock alert", "alertId", a.AlertID)
}
