package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealfolio/backend/config"
	"github.com/mealfolio/backend/internal/logger"
	"github.com/mealfolio/backend/internal/model"
	"github.com/mealfolio/backend/internal/render"
)

// archiveLinkTTL is how long a presigned link to an archived document stays
// valid.
const archiveLinkTTL = 24 * time.Hour

// Document is a rendered PDF plus its optional archive location.
type Document struct {
	Data       []byte
	ArchiveURL string
}

// DocumentService renders recipe batches to PDF and archives copies to S3.
type DocumentService struct {
	renderer *render.PDFRenderer
	s3Config *config.S3Config
}

// NewDocumentService creates a new DocumentService instance. Pass a nil
// s3Config to disable archiving.
func NewDocumentService(renderer *render.PDFRenderer, s3Config *config.S3Config) *DocumentService {
	return &DocumentService{
		renderer: renderer,
		s3Config: s3Config,
	}
}

// PrintRecipes renders the batch into a single PDF. When archiving is
// configured a copy is uploaded as well; an upload failure is logged and the
// caller still gets the document.
func (s *DocumentService) PrintRecipes(ctx context.Context, recipes []model.Recipe) (*Document, error) {
	data, err := s.renderer.Render(recipes)
	if err != nil {
		return nil, err
	}

	doc := &Document{Data: data}
	if s.s3Config != nil {
		url, err := s.archive(ctx, data)
		if err != nil {
			logger.Warn("document archive failed", zap.Error(err))
		} else {
			doc.ArchiveURL = url
		}
	}

	return doc, nil
}

// archive uploads the document and returns a presigned link to it.
func (s *DocumentService) archive(ctx context.Context, data []byte) (string, error) {
	key := fmt.Sprintf("documents/%s.pdf", uuid.New().String())

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload document to S3: %w", err)
	}

	url, err := s.s3Config.GeneratePresignedURL(ctx, key, archiveLinkTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign document URL: %w", err)
	}

	logger.Info("archived document", zap.String("key", key), zap.Int("bytes", len(data)))
	return url, nil
}
