package pubsub

import (
	"encoding/json"

	"workhours/internal/domain/service"

	"github.com/pkg/errors"
)

// sessionMessage is a SessionEvent ready for any transport.
type sessionMessage struct {
	id         string // SessionID:Type, stable across retries of the same transition
	data       []byte
	attributes map[string]string
}

// encodeSessionEvent validates event and serialises it. Subscribers filter on the
// attributes without decoding the body.
func encodeSessionEvent(event *service.SessionEvent) (*sessionMessage, error) {
	if event == nil {
		return nil, errors.New("session event is nil")
	}
	if event.Type != service.EventSessionOpened && event.Type != service.EventSessionClosed {
		return nil, errors.Errorf("unsupported session event type %q", event.Type)
	}
	if event.SessionID == "" || event.OwnerID == "" {
		return nil, errors.New("session event needs a session and an owner")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode session event")
	}

	attributes := map[string]string{
		"type":       event.Type,
		"session_id": event.SessionID,
		"owner_id":   event.OwnerID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &sessionMessage{
		id:         event.SessionID + ":" + event.Type,
		data:       data,
		attributes: attributes,
	}, nil
}

func (m *sessionMessage) logAttrs() []any {
	return []any{
		"message_id", m.id,
		"owner_id", m.attributes["owner_id"],
	}
}
