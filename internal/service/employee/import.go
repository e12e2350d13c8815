package employee

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"lucky_wheel/internal/lib/sheet"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
)

// Import проверяет, что файл читается и содержит строки с кодами, и пересылает его бэкенду
func (s *serv) Import(ctx context.Context, filename string, data []byte) (model.ImportResult, error) {
	rows, err := sheet.Read(data)
	if err != nil {
		return model.ImportResult{}, fmt.Errorf("%w: %v", service.ErrInvalidImportFile, err)
	}

	valid := 0
	for _, row := range rows {
		if normalizeCode(row["employeeCode"]) != "" {
			valid++
		}
	}
	if valid == 0 {
		return model.ImportResult{}, service.ErrEmptyImport
	}

	res, err := s.repo.Import(ctx, filename, bytes.NewReader(data))
	if err != nil {
		return model.ImportResult{}, err
	}

	// Старые версии бэкенда не возвращают итогов
	if res.Total == 0 {
		res.Total = len(rows)
		res.Failed = len(rows) - valid
	}

	s.log.Info("employees imported",
		slog.String("file", filename),
		slog.Int("total", res.Total),
		slog.Int("created", res.Created),
		slog.Int("updated", res.Updated),
		slog.Int("failed", res.Failed),
	)

	return res, nil
}

// Template - пустой файл импорта с заголовками и строкой-примером
func (s *serv) Template() ([]byte, error) {
	example := []any{"NV001", "Nguyen Van A", "nva@example.com", "0901234567", "SHOP01", "Ho Chi Minh", 10, 5}

	return sheet.Write("Employees", columns, [][]any{example})
}
