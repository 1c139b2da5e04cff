package domain

// ScanResult holds what a project scan found under the analysis root.
type ScanResult struct {
	RootPath   string   `json:"root_path"`
	DartFiles  []string `json:"dart_files"`
	Dirs       []string `json:"dirs"`
	HasPubspec bool     `json:"has_pubspec"`
	IsFlutter  bool     `json:"is_flutter"`
}

// ProjectScanner walks a Dart project directory and returns file metadata.
type ProjectScanner interface {
	Scan(root string, excludePaths ...string) (*ScanResult, error)
}
