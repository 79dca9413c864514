package models

// ApplicationStats represents per-status application counts for one user
type ApplicationStats struct {
	TotalApplications int `json:"total_applications"`
	Applied           int `json:"applied"`
	Interview         int `json:"interview"`
	Offer             int `json:"offer"`
	Rejected          int `json:"rejected"`
	Withdrawn         int `json:"withdrawn"`
}

// Page represents one page of a listing
type Page struct {
	Items []*JobApplication `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
	Pages int               `json:"pages"`
}
