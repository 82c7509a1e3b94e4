package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VetSecItPro/styrby-app-sub006/internal/sessioncrypto"
)

// keygen prints a random key. Production keys are always derived from the
// master secret; this exists for tests and throwaway experiments.
func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a random 32-byte key (test/ephemeral use only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := sessioncrypto.GenerateRandomKey()
			if err != nil {
				return err
			}
			fmt.Println(base64.StdEncoding.EncodeToString(key))
			return nil
		},
	}
}
