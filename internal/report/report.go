// Package report exports plain-text order summaries.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/safar/go-retail-store/internal/models"
)

type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// DefaultFilename names the report after the current date.
func DefaultFilename() string {
	return fmt.Sprintf("order-report-%s.txt", time.Now().Format("2006-01-02"))
}

// ExportOrders writes one line per order to a dated file in the exporter's
// directory, creating the directory if needed, and returns the file path.
func (e *Exporter) ExportOrders(orders []*models.Order) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	var b strings.Builder
	for _, order := range orders {
		fmt.Fprintf(&b, "%s | order #%d | %s | %s | total %s\n",
			order.CreatedAt.Format("2006-01-02 15:04:05"),
			order.ID,
			order.Customer.Name,
			order.Status,
			order.Total().StringFixed(2),
		)
	}

	path := filepath.Join(e.dir, DefaultFilename())
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return path, nil
}
