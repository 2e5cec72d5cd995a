package models

// Order is an append-only record of a customer submission. It snapshots the
// items description and total at submission time and is never reconciled
// against later catalog changes.
type Order struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
	Governorate  string  `json:"gov"`
	Area         string  `json:"area"`
	Items        string  `json:"items"`
	Total        float64 `json:"total"`
	Time         string  `json:"time"`
}
