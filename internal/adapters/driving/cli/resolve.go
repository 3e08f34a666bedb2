package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/credentials"
	"github.com/flowline-labs/nodekit/internal/credentials/zammad"
	"github.com/flowline-labs/nodekit/internal/params"
)

var (
	resolveParamsFile string
	resolveItemIndex  int
	resolveURL        string
	resolveMethod     string
	resolveZammad     bool
)

// resolveCmd dry-runs dynamic credential resolution against a parameter file.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Dry-run dynamic credential resolution for an item",
	Long: `Resolve loads a TOML parameter file, resolves dynamic credentials for the
given item index, and prints the request descriptor that would be sent.
Secret values are masked in the output.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveParamsFile, "params", "p", "", "path to the TOML parameter file (required)")
	resolveCmd.Flags().IntVarP(&resolveItemIndex, "item", "i", 0, "item index to resolve")
	resolveCmd.Flags().StringVar(&resolveURL, "url", "https://example.com/api/v1/resource", "request URL of the descriptor")
	resolveCmd.Flags().StringVar(&resolveMethod, "method", "GET", "request method of the descriptor")
	resolveCmd.Flags().BoolVar(&resolveZammad, "zammad", false, "use the Zammad resolver variant")
	_ = resolveCmd.MarkFlagRequired("params")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, _ []string) error {
	store, err := params.NewFileStore(resolveParamsFile)
	if err != nil {
		return err
	}
	defer store.Close()

	desc := domain.RequestDescriptor{
		Method: resolveMethod,
		URL:    resolveURL,
	}

	var out domain.RequestDescriptor
	if resolveZammad {
		resolver := zammad.NewResolver(store)
		if !resolver.IsDynamicEnabled(resolveItemIndex) {
			cmd.Println("dynamic credentials: disabled")
			return nil
		}
		out, err = resolver.Authenticate(desc, resolveItemIndex)
	} else {
		resolver := credentials.NewResolver(store)
		if !resolver.IsDynamicEnabled(resolveItemIndex) {
			cmd.Println("dynamic credentials: disabled")
			return nil
		}
		out, err = resolver.Authenticate(desc, resolveItemIndex)
	}
	if err != nil {
		return fmt.Errorf("resolve credentials: %w", err)
	}

	cmd.Println("dynamic credentials: enabled")
	cmd.Printf("%s %s\n", out.Method, out.URL)
	printPairs(cmd, "header", out.Headers)
	printPairs(cmd, "query", out.Query)
	if out.Auth != nil {
		cmd.Printf("auth: %s / %s\n", out.Auth.Username, maskSecret(out.Auth.Password))
	}
	if out.SkipTLSVerify {
		cmd.Println("tls: certificate verification disabled")
	}
	return nil
}

// printPairs prints a descriptor map with secret-looking values masked.
func printPairs(cmd *cobra.Command, label string, pairs map[string]string) {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		cmd.Printf("%s: %s: %s\n", label, k, maskSecret(pairs[k]))
	}
}

// maskSecret hides all but a short prefix of a credential value. Scheme
// prefixes like "Bearer" or "Basic" stay readable.
func maskSecret(v string) string {
	if v == "" {
		return ""
	}
	if scheme, rest, ok := strings.Cut(v, " "); ok && rest != "" {
		return scheme + " ****"
	}
	if len(v) <= 4 {
		return "****"
	}
	return v[:2] + "****"
}
