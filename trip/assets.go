package trip

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// photoExts lists the image formats the renderer can place.
var photoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// FindStepFolder returns the asset folder for a step: the first directory
// under dir whose name ends in "_<stepID>". It returns "" when no folder
// matches.
func FindStepFolder(dir string, stepID int64) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("trip: listing %s: %w", dir, err)
	}
	suffix := fmt.Sprintf("_%d", stepID)
	for _, e := range entries {
		if e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", nil
}

// ListPhotos returns the photo files directly inside folder, in name order.
func ListPhotos(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("trip: listing %s: %w", folder, err)
	}
	var photos []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if photoExts[strings.ToLower(filepath.Ext(e.Name()))] {
			photos = append(photos, filepath.Join(folder, e.Name()))
		}
	}
	return photos, nil
}

// attachPhotos resolves each step's photo folder and fills in its photo
// list.
func attachPhotos(t *Trip, dir string) error {
	for _, s := range t.Steps {
		folder, err := FindStepFolder(dir, s.ID)
		if err != nil {
			return err
		}
		if folder == "" {
			continue
		}
		photos, err := ListPhotos(folder)
		if err != nil {
			return err
		}
		s.Photos = photos
	}
	return nil
}
