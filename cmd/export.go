package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/projectmap/internal/export"
	"github.com/sells-group/projectmap/internal/geodata"
	"github.com/sells-group/projectmap/internal/model"
)

var (
	exportProjectID string
	exportOutput    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a project's comment spreadsheet to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openStores()
		if err != nil {
			return err
		}
		defer env.Close()

		var (
			datasetName string
			datasetData []byte
			comments    []model.Comment
		)

		// The dataset and the comment log live in separate files.
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			name, data, err := env.catalog.Active(ctx)
			if err != nil {
				return err
			}
			if name == "" {
				return eris.New("export: no active dataset")
			}
			datasetName, datasetData = name, data
			return nil
		})
		g.Go(func() error {
			cs, err := env.comments.List(ctx)
			if err != nil {
				return err
			}
			comments = cs
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		fc, err := geodata.Parse(datasetData)
		if err != nil {
			return err
		}

		project, ok := geodata.ProjectByID(fc, exportProjectID)
		if !ok {
			return eris.Errorf("export: project %q not found in %s", exportProjectID, datasetName)
		}

		wb, err := export.Workbook(*project, export.FilterByProject(comments, exportProjectID))
		if err != nil {
			return err
		}

		out := exportOutput
		if out == "" {
			out = export.Filename(exportProjectID)
		}
		if err := wb.Save(out); err != nil {
			return eris.Wrap(err, "export: save workbook")
		}

		zap.L().Info("export written",
			zap.String("project_id", exportProjectID),
			zap.String("dataset", datasetName),
			zap.String("output", out),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportProjectID, "project", "", "project ID to export (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path (default project_<id>_data.xlsx)")
	exportCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(exportCmd)
}
