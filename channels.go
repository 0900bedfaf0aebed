package engagespot

// Channel identifies an Engagespot delivery channel, as named by the
// vendor API. Channels are configured per app in the Engagespot console;
// the constants below are useful when composing channel-override payloads
// or inspecting delivery responses.
type Channel string

const (
	ChannelInApp      Channel = "inApp"
	ChannelWebPush    Channel = "webPush"
	ChannelMobilePush Channel = "mobilePush"
	ChannelEmail      Channel = "email"
	ChannelSMS        Channel = "sms"
	ChannelWhatsApp   Channel = "whatsapp"
)

func (c Channel) String() string {
	return string(c)
}
