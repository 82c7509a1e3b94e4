package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
)

// read <session>: fetch and decrypt the session's messages.
func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <session>",
		Short: "Fetch and decrypt a session's messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			session := domain.SessionID(args[0])

			msgs, err := wire.Messages.Fetch(cmd.Context(), session)
			if err != nil {
				return err
			}
			for _, m := range msgs {
				ts := time.Unix(m.CreatedUTC, 0).UTC().Format(time.RFC3339)
				fmt.Printf("[%s] %s\n", ts, m.Plaintext)
			}
			return nil
		},
	}
}
