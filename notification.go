package engagespot

// Notification is the request body for [Client.Send]: one
// [NotificationItem], the recipients it is delivered to, and optional
// payload data and category. Build one with [NewNotificationBuilder];
// once built it is an immutable value and safe to reuse across calls.
type Notification struct {
	// Notification is the display content. Required.
	Notification NotificationItem `json:"notification"`
	// Recipients are email addresses or Engagespot user identifiers.
	// Required; must be non-empty for the call to be meaningful.
	Recipients []string `json:"recipients"`
	// Data is arbitrary JSON-marshalable payload data attached to the
	// notification, opaque to this library. Omitted when nil.
	Data any `json:"data,omitempty"`
	// Category scopes delivery to its subscribers. When empty the
	// notification is sent to everyone subscribed to the app.
	Category string `json:"category,omitempty"`
}

// NotificationBuilder assembles a [Notification] through a fluent chain
// terminated by [NotificationBuilder.Build]. It keeps a reference to the
// caller's recipients slice; the slice is copied only at Build, so the
// built value is unaffected by later changes to the caller's slice.
//
// A builder is not safe for concurrent use; build the notification first
// and share the built value instead.
type NotificationBuilder struct {
	item       NotificationItem
	recipients []string
	data       any
	category   string
}

// NewNotificationBuilder starts a builder with the required fields: the
// notification title and the recipients (emails or user identifiers).
//
//	notification := engagespot.NewNotificationBuilder("Title", []string{"email1", "email2"}).Build()
func NewNotificationBuilder(title string, recipients []string) *NotificationBuilder {
	return &NotificationBuilder{
		item:       NewNotificationItem(title),
		recipients: recipients,
	}
}

// NotificationItem replaces the whole notification item at once.
func (b *NotificationBuilder) NotificationItem(item NotificationItem) *NotificationBuilder {
	b.item = item
	return b
}

// Title sets the title of the notification item.
func (b *NotificationBuilder) Title(title string) *NotificationBuilder {
	b.item = b.item.WithTitle(title)
	return b
}

// Message sets the message of the notification item.
func (b *NotificationBuilder) Message(message string) *NotificationBuilder {
	b.item = b.item.WithMessage(message)
	return b
}

// URL sets the url of the notification item.
func (b *NotificationBuilder) URL(url string) *NotificationBuilder {
	b.item = b.item.WithURL(url)
	return b
}

// Icon sets the icon of the notification item.
func (b *NotificationBuilder) Icon(icon string) *NotificationBuilder {
	b.item = b.item.WithIcon(icon)
	return b
}

// Recipients replaces the recipients of the notification.
func (b *NotificationBuilder) Recipients(recipients []string) *NotificationBuilder {
	b.recipients = recipients
	return b
}

// Data attaches payload data to the notification. Any JSON-marshalable
// value is accepted.
func (b *NotificationBuilder) Data(data any) *NotificationBuilder {
	b.data = data
	return b
}

// Category sets the category of the notification.
func (b *NotificationBuilder) Category(category string) *NotificationBuilder {
	b.category = category
	return b
}

// Build returns the assembled [Notification]. The recipients slice is
// copied here.
func (b *NotificationBuilder) Build() *Notification {
	return &Notification{
		Notification: b.item,
		Recipients:   append([]string(nil), b.recipients...),
		Data:         b.data,
		Category:     b.category,
	}
}
