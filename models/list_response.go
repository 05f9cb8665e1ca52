package models

// ListResponse wraps a list endpoint's items with their count.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Length int `json:"length"`
}

// NewListResponse builds a ListResponse. A nil items slice is encoded as an
// empty JSON array.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Length: len(items)}
}
