package review

type DecisionRequest struct {
	ID int64 `json:"id" binding:"required"`
}

// MemberSummary is the member projection exposed for administrative
// comparison: identifiers and name, nothing else.
type MemberSummary struct {
	WCAID     *string `json:"wcaId"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
}
