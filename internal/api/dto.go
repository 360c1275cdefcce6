package api

// NoveltyRequest asks whether a candidate span repeats n-gram content
// already present in the accepted spans. N defaults to 3.
type NoveltyRequest struct {
	Candidate string   `json:"candidate"`
	Accepted  []string `json:"accepted,omitempty"`
	N         int      `json:"n,omitempty"`
}

// NoveltyResponse is the novelty check result.
type NoveltyResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Blocked bool   `json:"blocked"`
	N       int    `json:"n"`
}

// ResponseError is the error envelope returned by every endpoint.
type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
}

// HealthResponse reports liveness and the running build.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
