package entity

type UploadResult struct {
	Bucket   string `json:"bucket"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
}

// BatchResult is the outcome of a multi file upload into a collection.
type BatchResult struct {
	Uploaded []string
	Failed   int
	List     []string
}
