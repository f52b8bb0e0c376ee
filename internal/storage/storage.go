package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

const maxUploadSize = 5 * 1024 * 1024 // 5MB

var (
	ErrFileTooBig      = errors.New("file size exceeds 5MB limit")
	ErrInvalidFileType = errors.New("only JPEG and PNG images are allowed")
)

var allowedExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Store 媒体字节存储。Save 写入 relPath 对应的对象，URL 拼接交给 media.Resolver
type Store interface {
	Save(ctx context.Context, relPath string, r io.Reader, size int64, contentType string) error
}

// NewObjectPath 生成存储相对路径，如 uploads/avatars/<uuid>.jpg
func NewObjectPath(dir, filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if _, ok := allowedExt[ext]; !ok {
		return "", ErrInvalidFileType
	}
	return path.Join(dir, uuid.NewString()+ext), nil
}

func CheckSize(size int64) error {
	if size > maxUploadSize {
		return ErrFileTooBig
	}
	return nil
}

func ContentTypeByExt(relPath string) string {
	if ct, ok := allowedExt[strings.ToLower(path.Ext(relPath))]; ok {
		return ct
	}
	return "application/octet-stream"
}
