package domain

// Crop is an entry of the crop catalog
type Crop struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Season      string `json:"season"`
	CycleDays   int    `json:"cycleDays"`
}
