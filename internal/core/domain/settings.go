package domain

import (
	"strconv"
	"time"
)

// Setting keys as accepted by `docanalyzer settings set`.
const (
	SettingUploadDelay   = "upload_delay_ms"
	SettingReplyDelay    = "reply_delay_ms"
	SettingNavigateDelay = "navigate_delay_ms"
	SettingAutoNavigate  = "auto_navigate"
	SettingConfidence    = "confidence"
	SettingMaxSources    = "max_sources"
	SettingResponder     = "responder"
)

// SettingKeys lists every setting key in display order.
func SettingKeys() []string {
	return []string{
		SettingUploadDelay,
		SettingReplyDelay,
		SettingNavigateDelay,
		SettingAutoNavigate,
		SettingConfidence,
		SettingMaxSources,
		SettingResponder,
	}
}

// Responder names accepted by Settings.Responder.
const (
	ResponderTemplate  = "template"
	ResponderCatalogue = "catalogue"
)

// Settings holds the tunable timings and constants of the simulation.
// The validate tags hold the accepted ranges.
type Settings struct {
	// UploadDelay is how long a batch stays processing.
	UploadDelay time.Duration `setting:"upload_delay_ms" validate:"gte=0"`

	// ReplyDelay is how long the assistant takes to answer.
	ReplyDelay time.Duration `setting:"reply_delay_ms" validate:"gte=0"`

	// NavigateDelay is the pause before switching to the library
	// once every upload has completed.
	NavigateDelay time.Duration `setting:"navigate_delay_ms" validate:"gte=0"`

	// AutoNavigate enables the switch to the library view after uploads.
	AutoNavigate bool `setting:"auto_navigate"`

	// Confidence is the constant confidence attached to replies.
	Confidence float64 `setting:"confidence" validate:"gte=0,lte=1"`

	// MaxSources caps the number of documents cited per reply.
	MaxSources int `setting:"max_sources" validate:"gte=0"`

	// Responder selects the response generator.
	Responder string `setting:"responder" validate:"oneof=template catalogue"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		UploadDelay:   2000 * time.Millisecond,
		ReplyDelay:    1500 * time.Millisecond,
		NavigateDelay: 1000 * time.Millisecond,
		AutoNavigate:  true,
		Confidence:    0.92,
		MaxSources:    2,
		Responder:     ResponderTemplate,
	}
}

// Values renders the settings keyed by setting key.
func (s Settings) Values() map[string]string {
	return map[string]string{
		SettingUploadDelay:   strconv.FormatInt(s.UploadDelay.Milliseconds(), 10),
		SettingReplyDelay:    strconv.FormatInt(s.ReplyDelay.Milliseconds(), 10),
		SettingNavigateDelay: strconv.FormatInt(s.NavigateDelay.Milliseconds(), 10),
		SettingAutoNavigate:  strconv.FormatBool(s.AutoNavigate),
		SettingConfidence:    strconv.FormatFloat(s.Confidence, 'f', -1, 64),
		SettingMaxSources:    strconv.Itoa(s.MaxSources),
		SettingResponder:     s.Responder,
	}
}
