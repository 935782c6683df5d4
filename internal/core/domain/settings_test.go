package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 2*time.Second, s.UploadDelay)
	assert.Equal(t, 1500*time.Millisecond, s.ReplyDelay)
	assert.Equal(t, time.Second, s.NavigateDelay)
	assert.True(t, s.AutoNavigate)
	assert.InDelta(t, 0.92, s.Confidence, 1e-9)
	assert.Equal(t, 2, s.MaxSources)
	assert.Equal(t, ResponderTemplate, s.Responder)
}

func TestSettings_Values(t *testing.T) {
	values := DefaultSettings().Values()

	assert.Len(t, values, len(SettingKeys()))
	assert.Equal(t, "2000", values[SettingUploadDelay])
	assert.Equal(t, "1500", values[SettingReplyDelay])
	assert.Equal(t, "1000", values[SettingNavigateDelay])
	assert.Equal(t, "true", values[SettingAutoNavigate])
	assert.Equal(t, "0.92", values[SettingConfidence])
	assert.Equal(t, "2", values[SettingMaxSources])
	assert.Equal(t, "template", values[SettingResponder])
}
