package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mwaniki-news/pkg/config"
)

// Cover images referenced by the articles' image field. Uploads land in a
// flat directory served under config.MediaURL.

type MediaFile struct {
	Name string `json:"name"`
	Path string `json:"path"` // Value for the article image field
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// SafeJoin joins target under root, refusing anything that climbs out.
func SafeJoin(root, target string) string {
	cleanTarget := filepath.Clean(target)
	if strings.Contains(cleanTarget, "..") || filepath.IsAbs(cleanTarget) {
		return ""
	}
	return filepath.Join(root, cleanTarget)
}

func ListMediaFiles() ([]MediaFile, error) {
	if _, err := os.Stat(config.MediaDir); os.IsNotExist(err) {
		os.MkdirAll(config.MediaDir, 0755)
	}

	entries, err := os.ReadDir(config.MediaDir)
	if err != nil {
		return nil, err
	}

	var files []MediaFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		usagePath := config.MediaURL + "/" + entry.Name()
		files = append(files, MediaFile{
			Name: entry.Name(),
			Path: usagePath,
			Size: info.Size(),
			URL:  usagePath,
		})
	}
	return files, nil
}

func SaveMediaFile(header *multipart.FileHeader) (*MediaFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := filepath.Base(header.Filename)
	filename = strings.ReplaceAll(filename, " ", "_")

	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	filename = fmt.Sprintf("%s_%d%s", name, time.Now().Unix(), ext)

	if err := os.MkdirAll(config.MediaDir, 0755); err != nil {
		return nil, err
	}
	fullPath := SafeJoin(config.MediaDir, filename)
	if fullPath == "" {
		return nil, fmt.Errorf("invalid media path")
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	usagePath := config.MediaURL + "/" + filename
	return &MediaFile{
		Name: filename,
		Path: usagePath,
		Size: header.Size,
		URL:  usagePath,
	}, nil
}

func DeleteMediaFile(filename string) error {
	fullPath := SafeJoin(config.MediaDir, filepath.Base(filename))
	if fullPath == "" {
		return fmt.Errorf("invalid media path")
	}
	return os.Remove(fullPath)
}
