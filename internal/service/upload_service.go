package service

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emily-flower/api/internal/config"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

var allowedUploadScenes = map[string]struct{}{
	"product":  {},
	"category": {},
	"common":   {},
}

// UploadService 图片上传服务
type UploadService struct {
	cfg *config.Config
}

// NewUploadService 创建上传服务实例
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// SaveFile 校验并保存上传的图片，返回相对访问路径
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (string, error) {
	if file.Size > s.cfg.Upload.MaxSize {
		return "", fmt.Errorf("%w: file exceeds %d MB", ErrInvalidUpload, s.cfg.Upload.MaxSize/1024/1024)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.Upload.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.Upload.AllowedExtensions) {
			return "", fmt.Errorf("%w: extension %s not allowed", ErrInvalidUpload, ext)
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// 读文件头识别真实 MIME 类型，不信任客户端 Content-Type
	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil && err != io.EOF {
		return "", err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}

	contentType := http.DetectContentType(buffer)
	if len(s.cfg.Upload.AllowedTypes) > 0 && !isAllowedType(contentType, s.cfg.Upload.AllowedTypes) {
		return "", fmt.Errorf("%w: type %s not allowed", ErrInvalidUpload, contentType)
	}

	if strings.HasPrefix(contentType, "image/") {
		width, height, err := decodeImageDimensions(src)
		if err != nil {
			return "", fmt.Errorf("%w: unreadable image", ErrInvalidUpload)
		}
		if s.cfg.Upload.MaxWidth > 0 && width > s.cfg.Upload.MaxWidth {
			return "", fmt.Errorf("%w: width exceeds %d", ErrInvalidUpload, s.cfg.Upload.MaxWidth)
		}
		if s.cfg.Upload.MaxHeight > 0 && height > s.cfg.Upload.MaxHeight {
			return "", fmt.Errorf("%w: height exceeds %d", ErrInvalidUpload, s.cfg.Upload.MaxHeight)
		}
		if _, err := src.Seek(0, 0); err != nil {
			return "", err
		}
	}

	normalizedScene := normalizeUploadScene(scene)
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	now := time.Now()
	year := now.Format("2006")
	month := now.Format("01")
	savePath := filepath.Join("uploads", normalizedScene, year, month, filename)

	if err := os.MkdirAll(filepath.Dir(savePath), 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	// 返回相对路径，前端按环境拼接完整 URL
	return fmt.Sprintf("/uploads/%s/%s/%s/%s", normalizedScene, year, month, filename), nil
}

func normalizeUploadScene(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "common"
	}
	if _, ok := allowedUploadScenes[value]; ok {
		return value
	}
	return "common"
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.EqualFold(ext, normalized) {
			return true
		}
	}
	return false
}

func isAllowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(contentType, t) {
			return true
		}
	}
	return false
}

func decodeImageDimensions(src io.ReadSeeker) (int, int, error) {
	if _, err := src.Seek(0, 0); err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
