package bulkselect

type SelectRequest struct {
	Type      string `json:"type" binding:"required"`
	DaysAhead int    `json:"days_ahead" binding:"required"`
}

type SelectResponse struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}
