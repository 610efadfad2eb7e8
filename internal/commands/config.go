package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the server would run with, after merging
defaults, the config file and CO_-prefixed environment variables.
Secrets are masked.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	view := map[string]interface{}{
		"server": map[string]interface{}{
			"host":             cfg.Server.Host,
			"port":             cfg.Server.Port,
			"read_timeout":     cfg.Server.ReadTimeout.String(),
			"write_timeout":    cfg.Server.WriteTimeout.String(),
			"shutdown_timeout": cfg.Server.ShutdownTimeout.String(),
			"debug":            cfg.Server.Debug,
			"tls_enabled":      cfg.Server.TLSEnabled,
		},
		"database": map[string]interface{}{
			"driver":         cfg.Database.Driver,
			"dsn":            maskSecret(cfg.Database.DSN),
			"debug":          cfg.Database.Debug,
			"max_open_conns": cfg.Database.MaxOpenConns,
			"max_idle_conns": cfg.Database.MaxIdleConns,
		},
		"security": map[string]interface{}{
			"rate_limit":               cfg.Security.RateLimit,
			"allowed_origins":          cfg.Security.AllowedOrigins,
			"auth_enabled":             cfg.Security.AuthEnabled,
			"jwt_secret":               maskSecret(cfg.Security.JWTSecret),
			"jwt_expiration":           cfg.Security.JWTExpiration.String(),
			"refresh_token_expiration": cfg.Security.RefreshTokenExpiration.String(),
			"default_tenant":           cfg.Security.DefaultTenant,
		},
		"payfast": map[string]interface{}{
			"merchant_id":  cfg.PayFast.MerchantID,
			"merchant_key": maskSecret(cfg.PayFast.MerchantKey),
			"passphrase":   maskSecret(cfg.PayFast.Passphrase),
			"sandbox":      cfg.PayFast.Sandbox,
			"return_url":   cfg.PayFast.ReturnURL,
			"cancel_url":   cfg.PayFast.CancelURL,
			"notify_url":   cfg.PayFast.NotifyURL,
		},
		"scheduler": map[string]interface{}{
			"enabled":             cfg.Scheduler.Enabled,
			"interval":            cfg.Scheduler.Interval.String(),
			"booking_hold_window": cfg.Scheduler.BookingHoldWindow.String(),
			"advert_lifetime":     cfg.Scheduler.AdvertLifetime.String(),
		},
		"logging": map[string]interface{}{
			"level":  cfg.Logging.Level,
			"format": cfg.Logging.Format,
			"output": cfg.Logging.Output,
		},
	}

	out, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + "****" + s[len(s)-2:]
}
