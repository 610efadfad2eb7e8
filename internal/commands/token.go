package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conectone/platform/internal/auth"
	"github.com/conectone/platform/internal/storage"
	"github.com/conectone/platform/models"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage authentication tokens",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue [username]",
	Short: "Issue a JWT for a user",
	Long: `Issue an access/refresh token pair for an existing user, signed with
the jwt_secret from the configuration. Useful for scripting against the API
without going through the login endpoint.

Examples:
  # Issue a token for alice in the default tenant
  conectone token issue alice

  # Issue a token in another tenant
  conectone token issue bob --tenant acme`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenIssue,
}

var tokenTenant string

func init() {
	tokenIssueCmd.Flags().StringVar(&tokenTenant, "tenant", "", "tenant ID (default: from config)")
	tokenCmd.AddCommand(tokenIssueCmd)
}

func runTokenIssue(cmd *cobra.Command, args []string) error {
	username := args[0]

	tenant := tokenTenant
	if tenant == "" {
		tenant = cfg.Security.DefaultTenant
	}

	store, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	user, err := store.GetUserByUsername(cmd.Context(), tenant, username)
	if err != nil {
		return fmt.Errorf("user %s not found in tenant %s: %w", username, tenant, err)
	}

	jwtService := auth.NewJWTService(cfg)
	pair, refreshToken, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	// Persist the hashed refresh token so the refresh endpoint accepts it
	hash, err := jwtService.HashRefreshToken(refreshToken)
	if err != nil {
		return fmt.Errorf("failed to hash refresh token: %w", err)
	}
	if err := store.SaveRefreshToken(cmd.Context(), &models.RefreshToken{
		ID:        models.GenerateID("refresh"),
		UserID:    user.ID,
		TenantID:  user.TenantID,
		Token:     hash,
		ExpiresAt: time.Now().Add(jwtService.RefreshTokenExpiration()),
		CreatedAt: time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	fmt.Printf("Token issued for %s (tenant %s)\n\n", user.Username, user.TenantID)
	fmt.Printf("Access token:\n%s\n\n", pair.AccessToken)
	fmt.Printf("Refresh token:\n%s\n\n", pair.RefreshToken)
	fmt.Printf("Expires: %s\n", pair.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
