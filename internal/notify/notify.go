// Package notify is the outbound push-notification port. The actual
// APNs/GCM transport lives outside this service; implementations of
// Dispatcher adapt a Notification to whatever carries it.
package notify

import "pokehub/backend/pkg/logger"

// Metadata keys attached to every pushed device message.
const (
	TypeFriendRequest = "friend_request"
	TypePoke          = "poke"
	TypeHabitSnooze   = "habit_snooze"
)

// Device addresses one installed app instance. Metadata rides along in
// the push payload so the client can route the tap.
type Device struct {
	Token    string
	Metadata map[string]string
}

// Notification is a single title/body message fanned out to a set of
// devices.
type Notification struct {
	Title   string
	Body    string
	Devices []Device
}

// Dispatcher delivers notifications. Delivery is best-effort and
// at-most-once; callers never observe the outcome.
type Dispatcher interface {
	Dispatch(n Notification)
}

// LogDispatcher writes notifications to the structured log instead of
// a push transport. It is the default wiring when no transport is
// configured.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(n Notification) {
	logger.Info("push notification",
		"title", n.Title,
		"body", n.Body,
		"devices", len(n.Devices),
	)
}
