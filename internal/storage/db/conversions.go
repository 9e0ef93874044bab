package db

import (
	"fmt"

	"github.com/clipinski/gog-dosbox-setup/internal/domain"
)

// SaveConversion records a completed conversion in the library
func (d *DB) SaveConversion(c *domain.Conversion) error {
	result, err := d.Exec(`
		INSERT INTO conversions (name, kind, installer_path, output_path, size_bytes)
		VALUES (?, ?, ?, ?, ?)
	`, c.Name, c.Kind.String(), c.InstallerPath, c.OutputPath, c.SizeBytes)
	if err != nil {
		return fmt.Errorf("saving conversion: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		c.ID = id
	}
	return nil
}

// ListConversions returns all recorded conversions, newest first
func (d *DB) ListConversions() ([]domain.Conversion, error) {
	rows, err := d.Query(`
		SELECT id, name, kind, installer_path, output_path, size_bytes, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing conversions: %w", err)
	}
	defer rows.Close()

	var conversions []domain.Conversion
	for rows.Next() {
		var c domain.Conversion
		var kind string
		if err := rows.Scan(&c.ID, &c.Name, &kind, &c.InstallerPath, &c.OutputPath, &c.SizeBytes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		c.Kind = domain.ParseInstallerKind(kind)
		conversions = append(conversions, c)
	}
	return conversions, rows.Err()
}
