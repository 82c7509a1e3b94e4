package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
)

// send <session> <message>: encrypt and store a message under <session>.
func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <session> <message>",
		Short: "Encrypt a message and store it under a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			session := domain.SessionID(args[0])

			id, err := wire.Messages.Send(cmd.Context(), session, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("stored %s\n", id)
			return nil
		},
	}
}
