package fm

// FileInfo describes a directory entry as hosts exchange it.
// No helper in this package produces or consumes it yet; the shape is kept
// stable for hosts that serialize it. A nil Size means the size is unknown.
type FileInfo struct {
	Name        string  `json:"name" toml:"name"`
	Path        string  `json:"path" toml:"path"`
	IsDirectory bool    `json:"is_directory" toml:"is_directory"`
	Size        *uint64 `json:"size" toml:"size,omitempty"`
}
