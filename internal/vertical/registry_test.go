package vertical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVerticalConfig(t *testing.T) {
	t.Run("Should return the requested vertical", func(t *testing.T) {
		cfg := GetVerticalConfig(1)
		assert.Equal(t, 1, cfg.ID)
		assert.Equal(t, "Plumbing", cfg.Name)
	})

	t.Run("Should fall back to generic for unknown ids", func(t *testing.T) {
		for _, id := range []int{-1, 21, 9999} {
			cfg := GetVerticalConfig(id)
			assert.Equal(t, GenericVerticalID, cfg.ID)
			assert.Equal(t, "Generic Local Business", cfg.Name)
		}
	})

	t.Run("Should register all 21 verticals with contiguous ids", func(t *testing.T) {
		ids := RegisteredVerticalIDs()
		require.Len(t, ids, 21)
		for id := 0; id <= 20; id++ {
			assert.Contains(t, ids, id)
		}
	})
}

func TestRegistryCompleteness(t *testing.T) {
	for _, id := range RegisteredVerticalIDs() {
		cfg := GetVerticalConfig(id)

		t.Run(cfg.Name, func(t *testing.T) {
			assert.NotEmpty(t, cfg.Name)
			assert.NotEmpty(t, cfg.Brain.ToneGuidance)
			assert.NotEmpty(t, cfg.Brain.AlwaysCollect)

			// every channel must be configured for every vertical
			require.Len(t, cfg.Channels, 4)
			for _, channel := range AllChannels() {
				behavior, ok := cfg.Channels[channel]
				require.True(t, ok, "missing channel %s", channel)
				assert.NotEmpty(t, behavior.PrimaryAction)
				assert.NotEmpty(t, behavior.GreetingStyle)
				assert.NotEmpty(t, behavior.ResponseLength)
			}

			// every flag must hold a valid tri-state value
			for _, key := range AllFeatureKeys() {
				state := cfg.Features.Get(key)
				assert.Contains(t, []FlagState{FlagOn, FlagOff, FlagOptional}, state,
					"feature %s", key)
			}
		})
	}
}

func TestFeatureConfigWithOverrides(t *testing.T) {
	base := GetVerticalConfig(1).Features

	t.Run("Should replace only overridden keys", func(t *testing.T) {
		merged := base.WithOverrides(FeatureOverrides{
			FeatureAppointmentBooking: FlagOff,
		})
		assert.Equal(t, FlagOff, merged.AppointmentBooking)
		assert.Equal(t, base.EmergencyEscalation, merged.EmergencyEscalation)
		assert.Equal(t, base.LeadCapture, merged.LeadCapture)
	})

	t.Run("Should not mutate the receiver", func(t *testing.T) {
		before := base
		base.WithOverrides(FeatureOverrides{FeatureLeadCapture: FlagOff})
		assert.Equal(t, before, base)
	})

	t.Run("Should keep defaults for absent keys", func(t *testing.T) {
		merged := base.WithOverrides(FeatureOverrides{})
		assert.Equal(t, base, merged)
	})
}

func TestParseChannel(t *testing.T) {
	t.Run("Should accept all known channels", func(t *testing.T) {
		for _, channel := range AllChannels() {
			parsed, ok := ParseChannel(string(channel))
			assert.True(t, ok)
			assert.Equal(t, channel, parsed)
		}
	})

	t.Run("Should default unknown input to phone", func(t *testing.T) {
		parsed, ok := ParseChannel("telegraph")
		assert.False(t, ok)
		assert.Equal(t, ChannelPhone, parsed)
	})
}
