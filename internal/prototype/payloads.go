package prototype

type stats struct {
	TotalFeedbacks   int     `json:"totalFeedbacks"`
	AverageRating    float64 `json:"averageRating"`
	ActiveQRCodes    int     `json:"activeQRCodes"`
	PendingFeedbacks int     `json:"pendingFeedbacks"`
}

type trendPoint struct {
	Date string `json:"date"`
	NPS  int    `json:"nps"`
}

type mapPoint struct {
	ID  int     `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

var fixedStats = stats{
	TotalFeedbacks:   58,
	AverageRating:    8.2,
	ActiveQRCodes:    4,
	PendingFeedbacks: 1,
}

var fixedTrend = []trendPoint{
	{Date: "01/06", NPS: 40},
	{Date: "05/06", NPS: 55},
	{Date: "10/06", NPS: 50},
	{Date: "15/06", NPS: 65},
	{Date: "20/06", NPS: 75},
	{Date: "25/06", NPS: 70},
}

var fixedMapPoints = []mapPoint{
	{ID: 1, Lat: -28.2833, Lng: -52.7833},
	{ID: 2, Lat: -30.0346, Lng: -51.2177},
	{ID: 3, Lat: -23.5505, Lng: -46.6333},
	{ID: 4, Lat: -22.9068, Lng: -43.1729},
	{ID: 5, Lat: -28.2910, Lng: -52.7950},
}
