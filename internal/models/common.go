// internal/models/common.go
package models

// Order statuses recognized by the UI layer. Status is stored as free text;
// this set is not enforced by the model.
const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusFulfilled  = "fulfilled"
	OrderStatusCancelled  = "cancelled"
)

// Entity is the capability set shared by the persisted record types. Each
// record implements it independently; there is no shared base state.
type Entity interface {
	Validate() error
}
