// Package export materializes a project's comments as a spreadsheet:
// one row per comment, each carrying the full project metadata.
package export

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/projectmap/internal/model"
)

// SheetName is the single worksheet name in exported workbooks.
const SheetName = "ProjectData"

// ErrNoComments signals that a project has nothing to export. Callers
// surface this as a user-visible notice rather than an empty file.
var ErrNoComments = eris.New("export: no comments for project")

// Filename returns the download name for a project's export.
func Filename(projectID string) string {
	return fmt.Sprintf("project_%s_data.xlsx", projectID)
}

// FilterByProject returns the comments whose projectId matches exactly.
func FilterByProject(comments []model.Comment, projectID string) []model.Comment {
	matched := []model.Comment{}
	for _, c := range comments {
		if c.ProjectID == projectID {
			matched = append(matched, c)
		}
	}
	return matched
}

var header = []string{
	"project_id",
	"project_title",
	"cost",
	"project_type",
	"improvement",
	"locality",
	"product",
	"comment_name",
	"comment_text",
	"comment_timestamp",
}

// Workbook builds the export spreadsheet from a project and its already
// filtered comments. Zero comments is ErrNoComments.
func Workbook(project model.Project, comments []model.Comment) (*xlsx.File, error) {
	if len(comments) == 0 {
		return nil, ErrNoComments
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return nil, eris.Wrap(err, "export: add sheet")
	}

	headerRow := sheet.AddRow()
	for _, h := range header {
		headerRow.AddCell().SetString(h)
	}

	for _, c := range comments {
		row := sheet.AddRow()
		for _, v := range []string{
			project.ID,
			project.Title,
			project.Cost,
			project.Type,
			project.Improvement,
			project.Locality,
			project.Product,
			c.Name,
			c.Comment,
			c.Timestamp,
		} {
			row.AddCell().SetString(v)
		}
	}

	return f, nil
}
