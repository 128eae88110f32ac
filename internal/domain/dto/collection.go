package dto

// CollectionResponse carries both lists on reads. After a mutation only the
// list that changed is set, and failures carry none.
type CollectionResponse struct {
	Notice     *Notice   `json:"notice,omitempty"`
	Images     *[]string `json:"images,omitempty"`
	Videos     *[]string `json:"videos,omitempty"`
	MaxFiles   int       `json:"max_files"`
	Uploaded   int       `json:"uploaded,omitempty"`
	Failed     int       `json:"failed,omitempty"`
	ResetInput bool      `json:"reset_input,omitempty"`
	Input      *string   `json:"input,omitempty"`
}

type AddURLRequest struct {
	URL string `json:"url"`
}
