package hdfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/colinmarc/hdfs/v2"
	"github.com/listing-marketplace/internal/config"
	"github.com/listing-marketplace/internal/domain/repository"
	"go.uber.org/zap"
)

// copyChunkSize - granularity of progress events while streaming an object
const copyChunkSize = 32 * 1024

type storageRepository struct {
	client        *hdfs.Client
	rootDir       string
	publicBaseURL string
	logger        *zap.Logger
}

// NewStorageRepository creates the HDFS-backed blob storage repository
func NewStorageRepository(cfg *config.StorageConfig, logger *zap.Logger) (repository.StorageRepository, error) {
	client, err := hdfs.New(cfg.NameNodeAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to HDFS: %w", err)
	}

	if err := client.MkdirAll(cfg.RootDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %q: %w", cfg.RootDir, err)
	}

	logger.Info("HDFS connected",
		zap.String("namenode", cfg.NameNodeAddr),
		zap.String("root_dir", cfg.RootDir),
	)

	return &storageRepository{
		client:        client,
		rootDir:       cfg.RootDir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload streams content to a new object and returns its retrieval URL.
// Progress is reported after every chunk; the partially written object is
// removed when the transfer fails.
func (r *storageRepository) Upload(ctx context.Context, objectName string, content io.Reader, size int64, progress repository.ProgressFunc) (string, error) {
	objectPath := path.Join(r.rootDir, objectName)

	fw, err := r.client.Create(objectPath)
	if err != nil {
		r.logger.Error("Failed to create object",
			zap.String("object", objectName),
			zap.Error(err))
		return "", fmt.Errorf("create object %q: %w", objectName, err)
	}

	var transferred int64
	buf := make([]byte, copyChunkSize)

	for {
		if err := ctx.Err(); err != nil {
			fw.Close()
			_ = r.client.Remove(objectPath)
			return "", err
		}

		n, readErr := content.Read(buf)
		if n > 0 {
			if _, writeErr := fw.Write(buf[:n]); writeErr != nil {
				fw.Close()
				_ = r.client.Remove(objectPath)
				r.logger.Error("Failed to write object",
					zap.String("object", objectName),
					zap.Error(writeErr))
				return "", fmt.Errorf("write object %q: %w", objectName, writeErr)
			}

			transferred += int64(n)
			if progress != nil {
				progress(transferred, size)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			fw.Close()
			_ = r.client.Remove(objectPath)
			return "", fmt.Errorf("read content for %q: %w", objectName, readErr)
		}
	}

	// Flush before the object is considered durable
	if err := fw.Close(); err != nil {
		_ = r.client.Remove(objectPath)
		r.logger.Error("Failed to close object",
			zap.String("object", objectName),
			zap.Error(err))
		return "", fmt.Errorf("close object %q: %w", objectName, err)
	}

	objectURL := r.publicBaseURL + "/" + objectName

	r.logger.Debug("Object uploaded",
		zap.String("object", objectName),
		zap.Int64("bytes", transferred))

	return objectURL, nil
}

func (r *storageRepository) Delete(ctx context.Context, objectName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	objectPath := path.Join(r.rootDir, objectName)
	if err := r.client.Remove(objectPath); err != nil {
		// Deletes are retried by the cleanup worker, a missing object is fine
		if os.IsNotExist(err) {
			return nil
		}
		r.logger.Error("Failed to delete object",
			zap.String("object", objectName),
			zap.Error(err))
		return fmt.Errorf("delete object %q: %w", objectName, err)
	}

	r.logger.Debug("Object deleted", zap.String("object", objectName))
	return nil
}
