package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ai-advantage/resources-api/internal/models"
)

// ValuesReader читает диапазон таблицы как матрицу значений.
type ValuesReader interface {
	Values(ctx context.Context, valueRange string) ([][]string, error)
}

// SheetSource читает каталог из листа Google Sheets.
// Колонки диапазона: id, name, source_url, short_description,
// screenshot_url, category, sector, type.
type SheetSource struct {
	Reader ValuesReader
	Range  string
}

// LoadAll загружает строки листа и маппит колонки на поля записи.
// Строки короче двух колонок пропускаются как служебные или пустые.
func (s SheetSource) LoadAll(ctx context.Context) ([]models.ToolRecord, error) {
	const op = "catalog.SheetSource.LoadAll"

	rows, err := s.Reader.Values(ctx, s.Range)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tools := make([]models.ToolRecord, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		tools = append(tools, models.ToolRecord{
			ID:               atoiOrZero(cell(row, 0)),
			Name:             cell(row, 1),
			SourceURL:        cell(row, 2),
			ShortDescription: cell(row, 3),
			ScreenshotURL:    cell(row, 4),
			Category:         cell(row, 5),
			Sector:           cell(row, 6),
			Type:             cell(row, 7),
		})
	}
	return tools, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
