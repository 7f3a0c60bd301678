package transfer

type MediaUpload struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	FileType string `json:"fileType"`
}
