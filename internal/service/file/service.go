package file

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/storage"
)

// Service handles uploads of supporting documents, currently leave
// attachments (medical certificates and similar).
type Service interface {
	UploadLeaveAttachment(ctx context.Context, userID uuid.UUID, r io.Reader, filename string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

var leaveAttachmentExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

type service struct {
	store storage.Storage
}

func NewService(store storage.Storage) Service {
	return &service{store: store}
}

func (s *service) UploadLeaveAttachment(ctx context.Context, userID uuid.UUID, r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !leaveAttachmentExts[ext] {
		return "", fmt.Errorf("invalid file type %q: only jpg, jpeg, png, pdf allowed", ext)
	}

	key := path.Join("leave-attachments", userID.String(), uuid.New().String()+ext)
	stored, err := s.store.Save(ctx, r, key)
	if err != nil {
		return "", err
	}

	return s.store.URL(stored), nil
}

func (s *service) DeleteFile(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}
