package port

type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path    string // absolute
	RelPath string // '/'-separated, relative to the walked root
	Size    int64
}
