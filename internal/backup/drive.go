package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/2beens/lifearchitect/internal/store"
	"github.com/2beens/lifearchitect/internal/telemetry/metrics"
	"github.com/2beens/lifearchitect/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	RootFolderName = "lifearchitect-backup"
	folderMimeType = "application/vnd.google-apps.folder"
)

// Remote is the subset of drive operations a backup needs.
type Remote interface {
	FindFolder(ctx context.Context, name string) (string, error)
	CreateFolder(ctx context.Context, name string) (string, error)
	Upload(ctx context.Context, folderID, name string, content io.Reader) (string, error)
	ListFiles(ctx context.Context, folderID string) ([]*drive.File, error)
}

// DriveRemote talks to Google Drive.
type DriveRemote struct {
	service *drive.Service
}

func NewDriveRemote(ctx context.Context, credentialsJson []byte) (*DriveRemote, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJson))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}
	return &DriveRemote{service: driveService}, nil
}

func (d *DriveRemote) FindFolder(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, name)
	res, err := d.service.Files.List().
		Context(ctx).
		Q(query).
		Fields("files(id, name)").
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve files: %w", err)
	}

	switch len(res.Files) {
	case 0:
		return "", nil
	case 1:
		return res.Files[0].Id, nil
	default:
		log.Warnf("found %d backup folders named %s, will take the first one: %s", len(res.Files), name, res.Files[0].Id)
		return res.Files[0].Id, nil
	}
}

func (d *DriveRemote) CreateFolder(ctx context.Context, name string) (string, error) {
	folder, err := d.service.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}).Context(ctx).Fields("id").Do()
	if err != nil {
		return "", err
	}
	return folder.Id, nil
}

func (d *DriveRemote) Upload(ctx context.Context, folderID, name string, content io.Reader) (string, error) {
	file, err := d.service.Files.Create(&drive.File{
		Name:     name,
		MimeType: "application/json",
		Parents:  []string{folderID},
	}).Context(ctx).Fields("id, parents").Media(content).Do()
	if err != nil {
		return "", err
	}
	return file.Id, nil
}

func (d *DriveRemote) ListFiles(ctx context.Context, folderID string) ([]*drive.File, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false", folderID, folderMimeType)
	res, err := d.service.Files.List().
		Context(ctx).
		Q(query).
		Fields("files(id, name, createdTime)").
		Do()
	if err != nil {
		return nil, err
	}
	return res.Files, nil
}

// Service writes a JSON snapshot of every persisted key to a remote folder.
type Service struct {
	remote   Remote
	store    store.Store
	metrics  *metrics.Manager
	now      func() time.Time
	folderID string
}

func NewService(remote Remote, s store.Store, metricsManager *metrics.Manager, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		remote:  remote,
		store:   s,
		metrics: metricsManager,
		now:     now,
	}
}

func (s *Service) ensureFolder(ctx context.Context) (string, error) {
	if s.folderID != "" {
		return s.folderID, nil
	}

	folderID, err := s.remote.FindFolder(ctx, RootFolderName)
	if err != nil {
		return "", err
	}
	if folderID == "" {
		log.Println("root backups folder not found, recreating ...")
		folderID, err = s.remote.CreateFolder(ctx, RootFolderName)
		if err != nil {
			return "", fmt.Errorf("failed to create root backups folder: %w", err)
		}
		log.Printf("new root backups folder created: %s", folderID)
	}

	s.folderID = folderID
	return folderID, nil
}

// FileName is the name of the snapshot file taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("state-%s.json", t.UTC().Format("20060102T150405Z"))
}

// DoBackup uploads the current state snapshot and returns the new file ID.
func (s *Service) DoBackup(ctx context.Context) (_ string, err error) {
	ctx, span := tracing.GlobalBackupTracer.Start(ctx, "backup.do")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := s.now()

	folderID, err := s.ensureFolder(ctx)
	if err != nil {
		return "", err
	}

	snapshot, err := store.Snapshot(ctx, s.store)
	if err != nil {
		return "", fmt.Errorf("snapshot state: %w", err)
	}
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	name := FileName(start)
	fileID, err := s.remote.Upload(ctx, folderID, name, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}

	if s.metrics != nil {
		s.metrics.HistBackupDuration.Observe(s.now().Sub(start).Seconds())
	}
	log.Printf("state backup %s uploaded: %s (%d keys)", name, fileID, len(snapshot))

	return fileID, nil
}

// Files lists the snapshots already in the backup folder.
func (s *Service) Files(ctx context.Context) ([]*drive.File, error) {
	folderID, err := s.ensureFolder(ctx)
	if err != nil {
		return nil, err
	}
	return s.remote.ListFiles(ctx, folderID)
}
