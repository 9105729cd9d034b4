package models

// Quote represents a motivational quote shown on the dashboard
type Quote struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}
