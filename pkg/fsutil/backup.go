package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to a document path for its sidecar backup.
const BackupSuffix = ".mdedit.bak"

// BackupPath returns the sidecar backup path for a document.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies the document to its sidecar backup path unless a
// backup already exists. Idempotent: repeated write-backs never clobber
// the first preserved original. Returns true when a backup was created.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path)

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}

	return true, nil
}

// RestoreBackup replaces the document with its sidecar backup. Returns
// false when no backup exists.
func RestoreBackup(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("restore backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path)

	content, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read backup: %w", err)
	}

	stat, err := os.Stat(backupPath)
	if err != nil {
		return false, fmt.Errorf("stat backup: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("restore from backup: %w", err)
	}

	return true, nil
}

// RemoveBackup deletes the sidecar backup if it exists. Returns true
// when one was removed.
func RemoveBackup(path string) (bool, error) {
	err := os.Remove(BackupPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove backup: %w", err)
	}
	return true, nil
}

// BackupExists reports whether a sidecar backup exists for path.
func BackupExists(path string) bool {
	_, err := os.Stat(BackupPath(path))
	return err == nil
}
