package api

// Envelope wraps a single row or object.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// ListEnvelope wraps a list. Total, Limit and Page are only present for
// paged resources.
type ListEnvelope[T any] struct {
	Success bool   `json:"success"`
	Data    []*T   `json:"data"`
	Message string `json:"message"`
	Total   *int   `json:"total,omitempty" doc:"Rows matching the filters"`
	Limit   *int   `json:"limit,omitempty" doc:"Fixed page size"`
	Page    *int   `json:"page,omitempty" doc:"Requested page"`
}

// MessageEnvelope carries no data.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ok[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Success: true, Data: data, Message: message}
}
