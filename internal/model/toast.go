package model

type ToastType string

const (
	ToastTypeSuccess ToastType = "success"
	ToastTypeError   ToastType = "error"
	ToastTypeInfo    ToastType = "info"
)

// ToastItem is one transient notification. IDs are strictly
// increasing so display order follows append order.
type ToastItem struct {
	ID      int64     `json:"id"`
	Message string    `json:"message"`
	Type    ToastType `json:"type"`
}
