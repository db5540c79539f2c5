package dto

type EstimateRequest struct {
	HouseType string `json:"house_type"`
	Area      int    `json:"area"`
	Floors    int    `json:"floors"`
}

type EstimateResponse struct {
	HouseType  string  `json:"house_type,omitempty"`
	Area       int     `json:"area"`
	Floors     int     `json:"floors"`
	RatePerM2  int     `json:"rate_per_m2"`
	Multiplier float64 `json:"multiplier"`
	Total      int64   `json:"total"`
	Formatted  string  `json:"formatted"`
}
