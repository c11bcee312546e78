package models

// IncrementResponse is returned after a play has been counted.
type IncrementResponse struct {
	Success  bool  `json:"success" example:"true"`
	NewCount int64 `json:"new_count" example:"42"`
}

// CountResponse reports the current play count.
type CountResponse struct {
	Count int64 `json:"count" example:"42"`
}
