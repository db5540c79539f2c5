package dto

type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type SeedResponse struct {
	Success      bool `json:"success"`
	Seeded       bool `json:"seeded"`
	Services     int  `json:"services"`
	Projects     int  `json:"projects"`
	Testimonials int  `json:"testimonials"`
	Pricing      int  `json:"pricing"`
}

type SettingRequest struct {
	Value string `json:"value"`
	Type  string `json:"type"` // string, bool, int, json
}
