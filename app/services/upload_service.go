package services

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/nfnt/resize"
)

const (
	maxUploadBytes = 5 << 20
	thumbnailWidth = 320
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadService stores product images under <baseDir>/products and serves
// them from <baseURL>/uploads. Stands in for the hosted object storage the
// storefront used: same path prefix, same public-URL contract.
type UploadService struct {
	baseDir string
	baseURL string
}

func NewUploadService(baseDir, baseURL string) *UploadService {
	return &UploadService{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type UploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SaveImages persists each file and reports a per-file result, so one bad
// file does not fail the batch.
func (s *UploadService) SaveImages(files []*multipart.FileHeader) []UploadResult {
	results := make([]UploadResult, 0, len(files))
	for _, fh := range files {
		url, err := s.saveImage(fh)
		if err != nil {
			log.Printf("UploadService: failed to save %s: %v", fh.Filename, err)
			results = append(results, UploadResult{Success: false, Error: err.Error()})
			continue
		}
		results = append(results, UploadResult{Success: true, URL: url})
	}
	return results
}

func (s *UploadService) saveImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadBytes {
		return "", fmt.Errorf("file %s exceeds %d bytes", fh.Filename, int64(maxUploadBytes))
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExt[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFileName(fh.Filename))
	dir := filepath.Join(s.baseDir, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	dstPath := filepath.Join(dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if err := s.writeThumbnail(dstPath, ext); err != nil {
		// The full-size image is already stored; a missing thumbnail is not
		// worth failing the upload over.
		log.Printf("UploadService: thumbnail for %s failed: %v", name, err)
	}

	return s.baseURL + "/uploads/products/" + name, nil
}

func (s *UploadService) writeThumbnail(srcPath, ext string) error {
	if ext == ".webp" {
		return nil
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	thumb := resize.Resize(thumbnailWidth, 0, img, resize.Lanczos3)

	thumbDir := filepath.Join(s.baseDir, "products", "thumbs")
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(srcPath), ext)
	out, err := os.Create(filepath.Join(thumbDir, base+".jpg"))
	if err != nil {
		return err
	}
	defer out.Close()

	return jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
}

func sanitizeFileName(name string) string {
	return unsafeFileChars.ReplaceAllString(filepath.Base(name), "_")
}
