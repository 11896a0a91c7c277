package domain

// DisplayRecord is a record annotated for listing.
type DisplayRecord struct {
	Record
	Thumbnail string `json:"thumbnail,omitempty"`
}

// DateGroup holds the records of one calendar day.
type DateGroup struct {
	Date     string          `json:"date"`
	DateText string          `json:"dateText"`
	Records  []DisplayRecord `json:"records"`
}

// Statistics summarises a user's journal.
type Statistics struct {
	TotalDays       int `json:"totalDays"`
	TotalPhotos     int `json:"totalPhotos"`
	TotalVideos     int `json:"totalVideos"`
	TotalRecords    int `json:"totalRecords"`
	ConsecutiveDays int `json:"consecutiveDays"`
}
