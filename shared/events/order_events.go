package events

// Order lifecycle events published by the order service.
const (
	OrderPlacementRequestedEvent = "order.placement.requested"
	OrderReceivedEvent           = "order.received"
	OrderCompletedEvent          = "order.completed"
	OrderFailedEvent             = "order.failed"
)

// Notification events consumed by the email sender.
const (
	OrderReceivedEmailEvent = "notification.email.order_received"
	OrderSuccessEmailEvent  = "notification.email.order_success"
	OrderErrorEmailEvent    = "notification.email.order_error"
)
