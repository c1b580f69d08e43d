package system

import (
	"path/filepath"
	"strings"
)

// Exclusions filters batch-mode candidates down to files worth scanning for
// dates. The anonymizer operates on raw text lines; running it over binary
// containers only corrupts the copy, so those are skipped wholesale unless
// the operator disables the filter.
type Exclusions struct {
	dirs    map[string]bool
	exts    map[string]bool
	names   map[string]bool
	enabled bool
}

func NewExclusions(enabled bool) *Exclusions {
	e := &Exclusions{
		dirs:    make(map[string]bool),
		exts:    make(map[string]bool),
		names:   make(map[string]bool),
		enabled: enabled,
	}

	if enabled {
		e.loadBinaryExclusions()
	}

	return e
}

func (e *Exclusions) loadBinaryExclusions() {
	// Directory trees holding build output, caches, or VCS metadata.
	// Their contents are either binary or regenerated, never worth shifting.
	skipDirs := []string{
		".git", ".hg", ".svn", ".bzr",
		"node_modules", "__pycache__", ".tox", ".venv", "venv",
		"vendor", ".idea", ".vscode", ".cache",
		"build", "dist", "target", "obj",
		".terraform", ".gradle", ".m2",
	}

	// Binary container extensions. Text inside these is not reachable by a
	// line-oriented filter.
	skipExts := []string{
		// Images and design files
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif", ".ico",
		".webp", ".heic", ".psd", ".ai", ".sketch", ".svgz",

		// Audio and video
		".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a",
		".mp4", ".mov", ".avi", ".mkv", ".webm", ".wmv",

		// Archives (except .lz4, which the pipeline handles transparently)
		".zip", ".tar", ".gz", ".tgz", ".bz2", ".tbz2", ".xz", ".7z",
		".rar", ".zst", ".br", ".cab",

		// Office and document containers
		".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".odt", ".ods",
		".odp", ".pdf", ".pages", ".numbers", ".epub", ".mobi",

		// Executables, libraries, bytecode
		".exe", ".dll", ".so", ".dylib", ".o", ".a", ".lib", ".bin",
		".class", ".pyc", ".pyo", ".jar", ".war", ".whl", ".wasm",

		// Databases and serialized blobs
		".db", ".sqlite", ".sqlite3", ".mdb", ".accdb", ".dat",
		".parquet", ".avro", ".orc", ".arrow", ".pkl", ".pickle",
		".npy", ".npz", ".h5", ".hdf5",

		// Disk and VM images
		".iso", ".img", ".dmg", ".vhd", ".vmdk", ".qcow2", ".vdi",

		// Fonts
		".ttf", ".otf", ".woff", ".woff2", ".eot",

		// Key material: text, but never safe to rewrite
		".pem", ".der", ".p12", ".pfx", ".crt", ".cer", ".key",
	}

	// Individual junk files that show up in user directories.
	skipNames := []string{
		".ds_store", "thumbs.db", "desktop.ini", ".localized",
	}

	for _, dir := range skipDirs {
		e.dirs[strings.ToLower(dir)] = true
	}
	for _, ext := range skipExts {
		e.exts[strings.ToLower(ext)] = true
	}
	for _, name := range skipNames {
		e.names[name] = true
	}
}

// ShouldSkip reports whether the file at path is excluded from batch
// processing. Every parent segment is checked against the directory list,
// then the base name and extension.
func (e *Exclusions) ShouldSkip(path string) bool {
	if !e.enabled {
		return false
	}

	clean := filepath.ToSlash(filepath.Clean(path))
	segments := strings.Split(clean, "/")

	// All but the last segment are directories.
	for i := 0; i < len(segments)-1; i++ {
		if e.dirs[strings.ToLower(segments[i])] {
			return true
		}
	}

	base := strings.ToLower(filepath.Base(clean))
	if e.names[base] {
		return true
	}

	ext := strings.ToLower(filepath.Ext(base))
	if ext != "" && e.exts[ext] {
		return true
	}

	return false
}

// IsEnabled reports whether the binary-file filter is active.
func (e *Exclusions) IsEnabled() bool {
	return e.enabled
}
