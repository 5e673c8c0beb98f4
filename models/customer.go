package models

import "time"

type Customer struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	GstNumber     string     `json:"gst_number,omitempty"`
	IsWholesale   bool       `json:"is_wholesale"`
	LastOrderDate *time.Time `json:"last_order_date,omitempty"`
	RepeatCount   int        `json:"repeat_count"`
}
