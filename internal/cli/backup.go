package cli

import (
	"fmt"
	"path/filepath"

	"github.com/FelixWeichselgartner/HealthAgent/internal/backup"
	"github.com/FelixWeichselgartner/HealthAgent/internal/storage"
)

// backupManager builds the snapshot manager for the configured store.
// Snapshots only make sense for the file-backed SQLite store.
func backupManager(ctx *Context) (*backup.Manager, error) {
	store, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return nil, fmt.Errorf("backups are only supported for SQLite stores; use pg_dump for PostgreSQL")
	}
	return backup.NewManager(store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	m, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := m.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	m, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := m.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup file name (as shown by 'backup list') or full path."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	m, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path := c.File
	if filepath.Base(path) == path {
		path = filepath.Join(m.BackupDir(), path)
	}
	if err := m.Restore(path); err != nil {
		return err
	}
	fmt.Println("Database restored.")
	return nil
}
