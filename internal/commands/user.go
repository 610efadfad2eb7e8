package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/conectone/platform/internal/auth"
	"github.com/conectone/platform/internal/storage"
	"github.com/conectone/platform/models"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create [username]",
	Short: "Create a user account",
	Long: `Create a user account in a tenant. The password is read from the
--password flag or prompted for interactively.

Examples:
  # Create an admin in the default tenant
  conectone user create alice --email alice@example.com --admin

  # Create a regular user in another tenant
  conectone user create bob --email bob@acme.test --tenant acme`,
	Args: cobra.ExactArgs(1),
	RunE: runUserCreate,
}

var (
	userEmail    string
	userName     string
	userTenant   string
	userPassword string
	userAdmin    bool
)

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "email address (required)")
	userCreateCmd.Flags().StringVar(&userName, "name", "", "display name")
	userCreateCmd.Flags().StringVar(&userTenant, "tenant", "", "tenant ID (default: from config)")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "password (prompted when omitted)")
	userCreateCmd.Flags().BoolVar(&userAdmin, "admin", false, "grant the admin role")
	_ = userCreateCmd.MarkFlagRequired("email") //nolint:errcheck

	userCmd.AddCommand(userCreateCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	username := args[0]

	tenant := userTenant
	if tenant == "" {
		tenant = cfg.Security.DefaultTenant
	}

	password := userPassword
	if password == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(0)
		fmt.Println()
		if err != nil {
			return fmt.Errorf("cannot read password: %w", err)
		}
		password = strings.TrimSpace(string(raw))
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	roles := []models.Role{models.RoleUser}
	if userAdmin {
		roles = append(roles, models.RoleAdmin)
	}

	store, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           models.GenerateID("user"),
		TenantID:     tenant,
		Username:     username,
		Email:        userEmail,
		Name:         userName,
		PasswordHash: hash,
		Roles:        roles,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.CreateUser(cmd.Context(), user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("Created user %s (%s) in tenant %s with roles %s\n",
		user.Username, user.ID, user.TenantID, strings.Join(user.Roles, ", "))
	return nil
}
