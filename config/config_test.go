package config

import (
	"testing"

	"github.com/hearthbot/hearth/tracker/service/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:7233", cfg.TemporalHostPort)
	assert.Equal(t, "bills", cfg.BillsChannel)
	assert.Equal(t, "shopping-list", cfg.ShoppingChannel)
	assert.Equal(t, "announcements", cfg.AnnouncementsChannel)
	assert.Equal(t, "23:45", cfg.DueTimeOfDay)
	assert.Equal(t, -240, cfg.DueUTCOffsetMinutes)
	assert.Equal(t, string(domain.ReackReannounce), cfg.ReackPolicy)

	clock, err := cfg.DueClock()
	require.NoError(t, err)
	due, err := clock.Instant("2025-01-31")
	require.NoError(t, err)
	_, offset := due.Zone()
	assert.Equal(t, -4*60*60, offset)

	policy, err := cfg.Reack()
	require.NoError(t, err)
	assert.Equal(t, domain.ReackReannounce, policy)
}

func TestLoadRequiresToken(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("BILLS_CHANNEL", "household-bills")
	t.Setenv("DUE_UTC_OFFSET_MINUTES", "60")
	t.Setenv("REACK_POLICY", "once")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "household-bills", cfg.BillsChannel)
	assert.Equal(t, 60, cfg.DueUTCOffsetMinutes)
	assert.Equal(t, "household-bills", cfg.Channels()[domain.CategoryBills])

	policy, err := cfg.Reack()
	require.NoError(t, err)
	assert.Equal(t, domain.ReackOnce, policy)
}
