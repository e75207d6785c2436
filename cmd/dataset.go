package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the GeoJSON catalog",
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded GeoJSON files",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openStores()
		if err != nil {
			return err
		}
		defer env.Close()

		names, err := env.catalog.List(cmd.Context())
		if err != nil {
			return err
		}
		active, err := env.catalog.ActiveFilename(cmd.Context())
		if err != nil {
			return err
		}

		for _, name := range names {
			marker := " "
			if name == active {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
		}
		return nil
	},
}

var datasetActivateCmd = &cobra.Command{
	Use:   "activate <filename>",
	Short: "Set the active GeoJSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openStores()
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.catalog.SetActive(cmd.Context(), args[0]); err != nil {
			return err
		}

		zap.L().Info("dataset activated", zap.String("filename", args[0]))
		return nil
	},
}

var datasetUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Copy a GeoJSON file into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openStores()
		if err != nil {
			return err
		}
		defer env.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return eris.Wrapf(err, "dataset: open %s", args[0])
		}
		defer f.Close()

		name := filepath.Base(args[0])
		if err := env.catalog.Save(cmd.Context(), name, f); err != nil {
			return err
		}

		zap.L().Info("dataset uploaded", zap.String("filename", name))
		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetListCmd, datasetActivateCmd, datasetUploadCmd)
	rootCmd.AddCommand(datasetCmd)
}
