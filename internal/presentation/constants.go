package presentation

const (
	IDParam      = "id"
	VisitIDParam = "visitId"
	SizeQuery    = "size"
	FileField    = "file"
	FilesField   = "files"
	PlaceIDField = "place_id"
	VisitIDField = "visit_id"
	ReasonTag    = "X-Reason"
)
