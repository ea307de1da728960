package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"salondesk/internal/dto"

	"gorm.io/gorm"
)

var ErrBackupNotFound = errors.New("backup not found")

// BackupService copies the SQLite file wholesale. Restores overwrite the live
// database file; callers are expected to restart the process afterwards so
// every open connection sees the restored state.
type BackupService interface {
	Create(ctx context.Context) (*dto.BackupResponse, error)
	List(ctx context.Context) ([]dto.BackupResponse, error)
	Restore(ctx context.Context, name string) error
}

type backupService struct {
	db        *gorm.DB
	dbPath    string
	backupDir string
}

func NewBackupService(db *gorm.DB, dbPath, backupDir string) BackupService {
	return &backupService{db: db, dbPath: dbPath, backupDir: backupDir}
}

func (s *backupService) Create(ctx context.Context) (*dto.BackupResponse, error) {
	if err := os.MkdirAll(s.backupDir, 0755); err != nil {
		return nil, err
	}

	// Flush the WAL so the main file alone is a complete snapshot.
	if s.db != nil {
		if err := s.db.WithContext(ctx).Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error; err != nil {
			return nil, fmt.Errorf("backup: checkpoint: %w", err)
		}
	}

	name := fmt.Sprintf("salon_%s.db", time.Now().Format("20060102_150405"))
	if err := copyFile(s.dbPath, filepath.Join(s.backupDir, name)); err != nil {
		return nil, fmt.Errorf("backup: copy: %w", err)
	}
	return &dto.BackupResponse{Name: name}, nil
}

func (s *backupService) List(ctx context.Context) ([]dto.BackupResponse, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []dto.BackupResponse{}, nil
		}
		return nil, err
	}
	out := make([]dto.BackupResponse, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".db") {
			continue
		}
		out = append(out, dto.BackupResponse{Name: e.Name()})
	}
	// newest first; names embed the timestamp
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func (s *backupService) Restore(ctx context.Context, name string) error {
	// Reject path traversal in the backup name.
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".db") {
		return ErrBackupNotFound
	}
	src := filepath.Join(s.backupDir, name)
	if _, err := os.Stat(src); err != nil {
		return ErrBackupNotFound
	}
	return copyFile(src, s.dbPath)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
