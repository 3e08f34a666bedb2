package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/credentials"
)

// ErrNoServices indicates CLI services were not injected.
var ErrNoServices = errors.New("cli: services not configured")

var (
	credentialKind     string
	credentialUsername string
	credentialKeyName  string
	credentialKeyLoc   string
	credentialPrefix   string
)

// credentialCmd groups static credential store management.
var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage the static credential store",
}

// credentialSetCmd stores a credential, prompting for the secret.
var credentialSetCmd = &cobra.Command{
	Use:   "set <type>",
	Short: "Store a credential under a credential type name",
	Args:  cobra.ExactArgs(1),
	RunE:  runCredentialSet,
}

// credentialListCmd lists stored credentials.
var credentialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored credentials",
	Args:  cobra.NoArgs,
	RunE:  runCredentialList,
}

// credentialDeleteCmd removes a stored credential.
var credentialDeleteCmd = &cobra.Command{
	Use:   "delete <type>",
	Short: "Delete a stored credential",
	Args:  cobra.ExactArgs(1),
	RunE:  runCredentialDelete,
}

func init() {
	credentialSetCmd.Flags().StringVarP(&credentialKind, "kind", "k", string(domain.CredentialAPIKey),
		"credential kind: oauth2, apiKey, or basicAuth")
	credentialSetCmd.Flags().StringVarP(&credentialUsername, "username", "u", "", "username (basicAuth only)")
	credentialSetCmd.Flags().StringVar(&credentialKeyName, "key-name", domain.DefaultAPIKeyName,
		"header or query parameter name (apiKey only)")
	credentialSetCmd.Flags().StringVar(&credentialKeyLoc, "key-location", string(domain.LocationHeader),
		"key placement: header or query (apiKey only)")
	credentialSetCmd.Flags().StringVar(&credentialPrefix, "token-prefix", credentials.DefaultTokenPrefix,
		"Authorization prefix (oauth2 only)")

	credentialCmd.AddCommand(credentialSetCmd)
	credentialCmd.AddCommand(credentialListCmd)
	credentialCmd.AddCommand(credentialDeleteCmd)
	rootCmd.AddCommand(credentialCmd)
}

func runCredentialSet(cmd *cobra.Command, args []string) error {
	if credentialManager == nil {
		return ErrNoServices
	}
	credentialType := args[0]

	spec, err := buildSpec(cmd)
	if err != nil {
		return err
	}

	if err := credentialManager.Save(cmd.Context(), credentialType, spec); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	cmd.Printf("stored %s credential %q\n", spec.Kind, credentialType)
	return nil
}

// buildSpec assembles a credential spec from flags and a secret prompt.
func buildSpec(cmd *cobra.Command) (*domain.CredentialSpec, error) {
	switch domain.CredentialKind(credentialKind) {
	case domain.CredentialOAuth2:
		token, err := promptSecret(cmd, "Access token: ")
		if err != nil {
			return nil, err
		}
		return &domain.CredentialSpec{
			Kind:        domain.CredentialOAuth2,
			AccessToken: token,
			TokenPrefix: credentialPrefix,
		}, nil

	case domain.CredentialAPIKey:
		location := domain.KeyLocation(credentialKeyLoc)
		if location != domain.LocationHeader && location != domain.LocationQuery {
			return nil, fmt.Errorf("%w: unknown key location %q", domain.ErrInvalidInput, credentialKeyLoc)
		}
		key, err := promptSecret(cmd, "API key: ")
		if err != nil {
			return nil, err
		}
		return &domain.CredentialSpec{
			Kind:     domain.CredentialAPIKey,
			Key:      key,
			Location: location,
			Name:     credentialKeyName,
		}, nil

	case domain.CredentialBasicAuth:
		if credentialUsername == "" {
			return nil, fmt.Errorf("%w: --username is required for basicAuth", domain.ErrInvalidInput)
		}
		password, err := promptSecret(cmd, "Password: ")
		if err != nil {
			return nil, err
		}
		return &domain.CredentialSpec{
			Kind:     domain.CredentialBasicAuth,
			Username: credentialUsername,
			Password: password,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", credentials.ErrUnsupportedType, credentialKind)
	}
}

// promptSecret reads a secret without echoing when stdin is a terminal.
// Falls back to a plain line read for piped input.
func promptSecret(cmd *cobra.Command, prompt string) (string, error) {
	cmd.Print(prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return string(secret), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runCredentialList(cmd *cobra.Command, _ []string) error {
	if credentialManager == nil {
		return ErrNoServices
	}

	creds, err := credentialManager.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list credentials: %w", err)
	}
	if len(creds) == 0 {
		cmd.Println("no credentials stored")
		return nil
	}

	for _, c := range creds {
		cmd.Printf("%s\t%s\t(updated %s)\n", c.Type, c.Kind, c.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runCredentialDelete(cmd *cobra.Command, args []string) error {
	if credentialManager == nil {
		return ErrNoServices
	}

	if err := credentialManager.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	cmd.Printf("deleted credential %q\n", args[0])
	return nil
}
