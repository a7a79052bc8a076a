package i18n

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/yargevad/filepathx"

	"medconsult/internal/utils"
)

// applyOverlays merges every <dir>/**/<lang>.json file into table. Each file is
// a flat {"key": "text"} object; the file name without extension is the
// language code. Unreadable or malformed files are skipped.
func applyOverlays(table map[string]map[string]string, dir string) error {
	if !utils.DirectoryExists(dir) {
		return fmt.Errorf("%s is not a directory", dir)
	}

	matches, err := filepathx.Glob(filepath.Join(dir, "**", "*.json"))
	if err != nil {
		return fmt.Errorf("glob overlays: %w", err)
	}

	for _, path := range matches {
		lang := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if lang == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("i18n: skipping overlay %s: %v", path, err)
			continue
		}

		var entries map[string]string
		if err := json.Unmarshal(data, &entries); err != nil {
			log.Printf("i18n: skipping malformed overlay %s: %v", path, err)
			continue
		}

		for key, text := range entries {
			if key == "" || text == "" {
				continue
			}
			if table[key] == nil {
				table[key] = make(map[string]string)
			}
			table[key][lang] = text
		}
		log.Printf("i18n: loaded %d overlay entries for %q from %s", len(entries), lang, path)
	}
	return nil
}
