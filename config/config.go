package config

import (
	"fmt"

	"github.com/hearthbot/hearth/tracker/service/domain"
	"github.com/spf13/viper"
)

// Config holds all configuration for the bot and the reminder worker.
type Config struct {
	DiscordToken   string `mapstructure:"DISCORD_TOKEN"`
	DiscordAppID   string `mapstructure:"DISCORD_APP_ID"`
	DiscordGuildID string `mapstructure:"DISCORD_GUILD_ID"`

	TemporalHostPort string `mapstructure:"TEMPORAL_HOST_PORT"`

	ChoresChannel        string `mapstructure:"CHORES_CHANNEL"`
	ShoppingChannel      string `mapstructure:"SHOPPING_CHANNEL"`
	MaintenanceChannel   string `mapstructure:"MAINTENANCE_CHANNEL"`
	AppointmentsChannel  string `mapstructure:"APPOINTMENTS_CHANNEL"`
	BillsChannel         string `mapstructure:"BILLS_CHANNEL"`
	AnnouncementsChannel string `mapstructure:"ANNOUNCEMENTS_CHANNEL"`

	// Due instants combine a submitted calendar date with this fixed
	// time-of-day and UTC offset. The defaults reproduce the original
	// deployment's `T23:45:00-04:00` timing exactly.
	DueTimeOfDay        string `mapstructure:"DUE_TIME_OF_DAY"`
	DueUTCOffsetMinutes int    `mapstructure:"DUE_UTC_OFFSET_MINUTES"`

	// ReackPolicy: reannounce | once | reject (see domain.ReackPolicy).
	ReackPolicy string `mapstructure:"REACK_POLICY"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	viper.SetDefault("TEMPORAL_HOST_PORT", "localhost:7233")
	viper.SetDefault("CHORES_CHANNEL", "chores")
	viper.SetDefault("SHOPPING_CHANNEL", "shopping-list")
	viper.SetDefault("MAINTENANCE_CHANNEL", "maintenance")
	viper.SetDefault("APPOINTMENTS_CHANNEL", "appointments")
	viper.SetDefault("BILLS_CHANNEL", "bills")
	viper.SetDefault("ANNOUNCEMENTS_CHANNEL", "announcements")
	viper.SetDefault("DUE_TIME_OF_DAY", "23:45")
	viper.SetDefault("DUE_UTC_OFFSET_MINUTES", -240)
	viper.SetDefault("REACK_POLICY", string(domain.ReackReannounce))
	viper.AutomaticEnv()

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("DISCORD_TOKEN")
	_ = viper.BindEnv("DISCORD_APP_ID")
	_ = viper.BindEnv("DISCORD_GUILD_ID")
	_ = viper.BindEnv("TEMPORAL_HOST_PORT")
	_ = viper.BindEnv("CHORES_CHANNEL")
	_ = viper.BindEnv("SHOPPING_CHANNEL")
	_ = viper.BindEnv("MAINTENANCE_CHANNEL")
	_ = viper.BindEnv("APPOINTMENTS_CHANNEL")
	_ = viper.BindEnv("BILLS_CHANNEL")
	_ = viper.BindEnv("ANNOUNCEMENTS_CHANNEL")
	_ = viper.BindEnv("DUE_TIME_OF_DAY")
	_ = viper.BindEnv("DUE_UTC_OFFSET_MINUTES")
	_ = viper.BindEnv("REACK_POLICY")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}

	return &config, nil
}

// Channels maps each channel category to its configured channel name.
func (c *Config) Channels() map[domain.Category]string {
	return map[domain.Category]string{
		domain.CategoryChores:        c.ChoresChannel,
		domain.CategoryShopping:      c.ShoppingChannel,
		domain.CategoryMaintenance:   c.MaintenanceChannel,
		domain.CategoryAppointments:  c.AppointmentsChannel,
		domain.CategoryBills:         c.BillsChannel,
		domain.CategoryAnnouncements: c.AnnouncementsChannel,
	}
}

// DueClock builds the due-instant clock from the configured time-of-day and
// offset.
func (c *Config) DueClock() (domain.DueClock, error) {
	return domain.NewDueClock(c.DueTimeOfDay, c.DueUTCOffsetMinutes)
}

// Reack parses the configured re-acknowledgement policy.
func (c *Config) Reack() (domain.ReackPolicy, error) {
	return domain.ParseReackPolicy(c.ReackPolicy)
}
