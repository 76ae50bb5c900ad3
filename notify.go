package herald

import "github.com/gen2brain/beeep"

// Notifier is the desktop-notification sink. The default implementation
// posts through the platform notification service; tests substitute a
// recorder via Config.Notifier.
type Notifier interface {
	Notify(title, body string, urgency Urgency) error
}

// desktopNotifier posts desktop notifications with beeep.
type desktopNotifier struct{}

func (desktopNotifier) Notify(title, body string, urgency Urgency) error {
	if urgency == UrgencyCritical {
		return beeep.Alert(title, body, "")
	}
	return beeep.Notify(title, body, "")
}
