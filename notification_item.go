package engagespot

// NotificationItem is the display content of a single notification: the
// title shown to the recipient plus an optional message body, link and
// icon. Optional fields left empty are omitted from the request body.
type NotificationItem struct {
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
	Icon    string `json:"icon,omitempty"`
}

// NewNotificationItem creates an item with only the title set. Other
// fields can be filled by chaining the With* methods:
//
//	item := engagespot.NewNotificationItem("Title").
//	    WithMessage("Message").
//	    WithURL("https://example.com").
//	    WithIcon("favicon.png")
func NewNotificationItem(title string) NotificationItem {
	return NotificationItem{Title: title}
}

// NotificationItemWithArgs creates a fully populated item in one call.
func NotificationItemWithArgs(title, message, url, icon string) NotificationItem {
	return NotificationItem{
		Title:   title,
		Message: message,
		URL:     url,
		Icon:    icon,
	}
}

// WithTitle returns a copy of the item with the title replaced.
func (n NotificationItem) WithTitle(title string) NotificationItem {
	n.Title = title
	return n
}

// WithMessage returns a copy of the item with the message replaced.
func (n NotificationItem) WithMessage(message string) NotificationItem {
	n.Message = message
	return n
}

// WithURL returns a copy of the item with the url replaced.
func (n NotificationItem) WithURL(url string) NotificationItem {
	n.URL = url
	return n
}

// WithIcon returns a copy of the item with the icon replaced.
func (n NotificationItem) WithIcon(icon string) NotificationItem {
	n.Icon = icon
	return n
}
