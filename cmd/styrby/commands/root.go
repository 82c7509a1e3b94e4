package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/VetSecItPro/styrby-app-sub006/internal/app"
	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
)

var (
	home       string
	passphrase string
	machineID  string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "styrby",
		Short: "End-to-end encrypted session message store",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".styrby")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if machineID == "" {
				host, err := os.Hostname()
				if err != nil {
					return err
				}
				machineID = host
			}

			wire = app.NewWire(app.Config{
				Home:       home,
				MachineID:  domain.MachineID(machineID),
				Passphrase: passphrase,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.styrby)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the master secret")
	root.PersistentFlags().StringVar(&machineID, "machine-id", "", "device identifier (default hostname)")

	root.AddCommand(initCmd(), sendCmd(), readCmd(), keygenCmd())
	return root.Execute()
}
