package paths

import (
	"os"
	"path/filepath"
)

// Output layout of the VPK system directory, relative to the working
// directory. Slash-separated; callers convert with filepath.FromSlash.
const (
	SysDir         = "sce_sys"
	LiveAreaDir    = SysDir + "/livearea/contents"
	IconFile       = SysDir + "/icon0.png"
	BackgroundFile = LiveAreaDir + "/bg.png"
	StartupFile    = LiveAreaDir + "/startup.png"
	DirPerm        = 0755
	FilePerm       = 0644
)

// Under joins a slash-separated output path onto root.
func Under(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed. An existing
// file at path is replaced.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
