package models

// DashboardStats is the back-office landing page summary
type DashboardStats struct {
	Cars      CarStatsResponse     `json:"cars"`
	Messages  MessageStatsResponse `json:"messages"`
	TopViewed []TopViewedCar       `json:"top_viewed"`
}

type MessageStatsResponse struct {
	Total         int `json:"total"`
	New           int `json:"new"`
	Read          int `json:"read"`
	Replied       int `json:"replied"`
	Archived      int `json:"archived"`
	LastSevenDays int `json:"last_seven_days"`
}

type TopViewedCar struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Views int     `json:"views"`
}
