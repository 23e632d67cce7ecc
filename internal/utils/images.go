package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AirplaneImagePath builds a unique storage path for an uploaded airplane
// image: uploads/airplanes/<slugified-name>-<uuid><ext> under root.
func AirplaneImagePath(root, airplaneName, originalName string) string {
	ext := filepath.Ext(originalName)
	slug := strings.ToLower(strings.Join(strings.Fields(airplaneName), "-"))
	filename := fmt.Sprintf("%s-%s%s", slug, uuid.NewString(), ext)
	return filepath.Join(root, "uploads", "airplanes", filename)
}
