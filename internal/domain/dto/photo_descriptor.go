package dto

type PhotoDescriptor struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"type"`
	Size        int64  `json:"size"`
	PlaceID     string `json:"place_id"`
	VisitID     string `json:"visit_id"`
	Uploaded    int64  `json:"uploaded"`
}

type BatchUploadResponse struct {
	IDs []string `json:"ids"`
}

type PhotoIDsResponse struct {
	IDs []string `json:"ids"`
}

type ExistsRequest struct {
	IDs []string `json:"ids"`
}

type ExistsResponse struct {
	Existing []string `json:"existing"`
}
