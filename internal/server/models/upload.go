package models

type UploadRequest struct {
	FileName    string
	ContentType string
	Folder      string
}

type UploadURL struct {
	PreSignedURL string `json:"preSignedUrl"`
	FileURL      string `json:"fileUrl"`
}
