package request

// RegisterRequest is the request body for creating an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for signing in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RecordVisitRequest is the request body for recording a visit.
// Rating 0 means unrated; an empty note preserves any existing note.
type RecordVisitRequest struct {
	MuseumID string `json:"museum_id"`
	Rating   int    `json:"rating,omitempty"`
	Note     string `json:"note,omitempty"`
}
