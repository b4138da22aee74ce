package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dubhub/internal/shared/config"
	"dubhub/internal/shared/errors"
	"dubhub/internal/shared/logger"
)

// Output formats accepted by the service.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Service renders tables and writes export files into the configured
// directory. Rendering without writing is exposed separately for the HTTP
// download path.
type Service struct {
	cfg *config.ExportConfig
	log logger.Interface
}

func NewService(cfg *config.ExportConfig, log logger.Interface) *Service {
	return &Service{cfg: cfg, log: log.Named("export")}
}

// FileName derives the export file name for an entity kind, e.g.
// "tickets_export_05-15-2024.csv".
func FileName(entity, format string, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.%s", strings.ToLower(entity), now.Format("01-02-2006"), format)
}

// Render produces the document bytes for a table in the given format.
func (s *Service) Render(table Table, format string) ([]byte, error) {
	switch format {
	case FormatCSV:
		text, err := EncodeCSV(table)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	case FormatXLSX:
		return EncodeXLSX(table)
	default:
		return nil, errors.NewBadRequestError("unsupported export format", format)
	}
}

// WriteFile renders a table and writes it under the export directory,
// returning the written path.
func (s *Service) WriteFile(table Table, format string) (string, error) {
	data, err := s.Render(table, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return "", errors.NewInternalError("failed to create export directory", err.Error())
	}

	path := filepath.Join(s.cfg.Dir, FileName(table.Name, format, time.Now()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.NewInternalError("failed to write export file", err.Error())
	}

	s.log.Infow("export written", "path", path, "rows", len(table.Rows))
	return path, nil
}
