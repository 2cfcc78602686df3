package dto

type SavePostRequest struct {
	SolutionID string `json:"solution_id,omitempty"`
	Content    string `json:"content"`
}

type CommentRequest struct {
	Text string `json:"text"`
}
