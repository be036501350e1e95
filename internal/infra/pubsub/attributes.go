package pubsub

import "inventory/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.StockEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type,
		"stock_id":   event.StockID,
	}
	if event.RecordID != "" {
		attributes["record_id"] = event.RecordID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}
	if event.Actor != "" {
		attributes["actor"] = event.Actor
	}

	return attributes
}
