package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/projectmap/internal/auth"
	"github.com/sells-group/projectmap/internal/model"
	"github.com/sells-group/projectmap/internal/store"
)

var userAddPassword string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage login credentials",
}

var userAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Add a user with a bcrypt-hashed password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]
		if userAddPassword == "" {
			return eris.New("user: password is required")
		}

		hash, err := auth.HashPassword(userAddPassword)
		if err != nil {
			return err
		}

		users := store.NewUserStore(cfg.Data.UsersPath())
		if err := users.Add(cmd.Context(), model.User{Email: email, Password: hash}); err != nil {
			return err
		}

		zap.L().Info("user added", zap.String("email", email))
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered user emails",
	RunE: func(cmd *cobra.Command, args []string) error {
		users := store.NewUserStore(cfg.Data.UsersPath())
		all, err := users.List(cmd.Context())
		if err != nil {
			return err
		}

		for _, u := range all {
			fmt.Fprintln(cmd.OutOrStdout(), u.Email)
		}
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userAddPassword, "password", "", "plaintext password to hash (required)")
	userAddCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userAddCmd, userListCmd)
	rootCmd.AddCommand(userCmd)
}
