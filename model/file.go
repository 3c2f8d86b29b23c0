package model

import (
	"path/filepath"
	"strings"
	"time"
)

// FileType classifies a scanned file by its role on disk.
type FileType int

const (
	FileCode FileType = iota
	FileConfig
	FileLog
	FileMedia
	FileArchive
	FileDocument
	FileData
	FileBinary
	FileNodeModules
	FileOther
)

func (t FileType) String() string {
	switch t {
	case FileCode:
		return "code"
	case FileConfig:
		return "config"
	case FileLog:
		return "log"
	case FileMedia:
		return "media"
	case FileArchive:
		return "archive"
	case FileDocument:
		return "doc"
	case FileData:
		return "data"
	case FileBinary:
		return "binary"
	case FileNodeModules:
		return "node_modules"
	}
	return "other"
}

// Icon returns a single-cell glyph for the type.
func (t FileType) Icon() rune {
	switch t {
	case FileCode:
		return '«'
	case FileConfig:
		return '⚙'
	case FileLog:
		return '≡'
	case FileMedia:
		return '♪'
	case FileArchive:
		return '◫'
	case FileDocument:
		return '¶'
	case FileData:
		return '▤'
	case FileBinary:
		return '●'
	case FileNodeModules:
		return 'ⓝ'
	}
	return '·'
}

// Color returns the stable palette color for the type.
func (t FileType) Color() RGB {
	switch t {
	case FileCode:
		return ColorCyan
	case FileConfig:
		return ColorMagenta
	case FileLog:
		return ColorYellow
	case FileMedia:
		return ColorGreen
	case FileArchive:
		return ColorOrange
	case FileDocument:
		return ColorWhite
	case FileData:
		return ColorBlue
	case FileBinary:
		return ColorRed
	case FileNodeModules:
		return ColorDarkGray
	}
	return ColorGray
}

var fileTypeByExt = map[string]FileType{
	".go": FileCode, ".rs": FileCode, ".c": FileCode, ".h": FileCode,
	".cpp": FileCode, ".py": FileCode, ".js": FileCode, ".ts": FileCode,
	".java": FileCode, ".rb": FileCode, ".sh": FileCode, ".lua": FileCode,

	".json": FileConfig, ".yaml": FileConfig, ".yml": FileConfig,
	".toml": FileConfig, ".ini": FileConfig, ".conf": FileConfig,
	".cfg": FileConfig, ".env": FileConfig,

	".log": FileLog, ".journal": FileLog,

	".png": FileMedia, ".jpg": FileMedia, ".jpeg": FileMedia,
	".gif": FileMedia, ".svg": FileMedia, ".mp3": FileMedia,
	".mp4": FileMedia, ".mkv": FileMedia, ".wav": FileMedia,

	".zip": FileArchive, ".tar": FileArchive, ".gz": FileArchive,
	".bz2": FileArchive, ".xz": FileArchive, ".zst": FileArchive,
	".7z": FileArchive, ".rar": FileArchive,

	".md": FileDocument, ".txt": FileDocument, ".pdf": FileDocument,
	".doc": FileDocument, ".docx": FileDocument, ".rst": FileDocument,

	".csv": FileData, ".parquet": FileData, ".db": FileData,
	".sqlite": FileData, ".avro": FileData, ".arrow": FileData,

	".so": FileBinary, ".a": FileBinary, ".o": FileBinary,
	".exe": FileBinary, ".dll": FileBinary, ".wasm": FileBinary,
	".bin": FileBinary,
}

// ClassifyPath maps a file path to its FileType.
func ClassifyPath(path string) FileType {
	norm := filepath.ToSlash(path)
	if strings.Contains(norm, "/node_modules/") || strings.HasSuffix(norm, "/node_modules") {
		return FileNodeModules
	}
	if t, ok := fileTypeByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return FileOther
}

// IoActivity is a coarse per-file I/O level derived from recency.
type IoActivity int

const (
	IoNone IoActivity = iota
	IoLow
	IoMedium
	IoHigh
)

func (a IoActivity) String() string {
	switch a {
	case IoHigh:
		return "high"
	case IoMedium:
		return "med"
	case IoLow:
		return "low"
	}
	return "none"
}

// Color returns the stable palette color for the activity level.
func (a IoActivity) Color() RGB {
	switch a {
	case IoHigh:
		return ColorRed
	case IoMedium:
		return ColorOrange
	case IoLow:
		return ColorYellow
	}
	return ColorGray
}

// Icon returns a single-cell glyph for the activity level.
func (a IoActivity) Icon() rune {
	switch a {
	case IoHigh:
		return '▲'
	case IoMedium:
		return '◆'
	case IoLow:
		return '▽'
	}
	return '·'
}

// EntropyLevel buckets a normalized Shannon entropy score.
type EntropyLevel int

const (
	EntropyUnknown EntropyLevel = iota
	EntropyLow
	EntropyMedium
	EntropyHigh
	EntropyVeryHigh
)

// EntropyLevelOf buckets a normalized [0,1] entropy score.
// A score of exactly 0 means the file was never sampled.
func EntropyLevelOf(score float64) EntropyLevel {
	switch {
	case score <= 0:
		return EntropyUnknown
	case score < 0.3:
		return EntropyLow
	case score < 0.7:
		return EntropyMedium
	case score < 0.9:
		return EntropyHigh
	default:
		return EntropyVeryHigh
	}
}

func (l EntropyLevel) String() string {
	switch l {
	case EntropyLow:
		return "low"
	case EntropyMedium:
		return "med"
	case EntropyHigh:
		return "high"
	case EntropyVeryHigh:
		return "vhigh"
	}
	return "?"
}

// Color returns the stable palette color for the entropy level.
func (l EntropyLevel) Color() RGB {
	switch l {
	case EntropyLow:
		return ColorGreen
	case EntropyMedium:
		return ColorYellow
	case EntropyHigh:
		return ColorOrange
	case EntropyVeryHigh:
		return ColorRed
	}
	return ColorGray
}

// FileEntry is one scanned file. Entries are created by a scan pass and
// replaced wholesale on re-scan; they are never mutated afterwards.
type FileEntry struct {
	Path         string
	Size         uint64
	Type         FileType
	Depth        int
	Modified     time.Time // zero when metadata was unavailable
	IsRecent     bool
	GrowthRate   float64 // bytes/s, nonzero only for watchlist entries
	IoActivity   IoActivity
	Entropy      float64 // normalized 0..1, 0 if unsampled
	EntropyLevel EntropyLevel
	IsDuplicate  bool
}

// DuplicateGroup is a set of files sharing an exact byte size.
type DuplicateGroup struct {
	Size        uint64
	Paths       []string
	WastedBytes uint64 // size × (count−1)
}

// SizeSample is one point in a watched file's growth history.
type SizeSample struct {
	Time time.Time
	Size uint64
}

// WatchedFileHistoryCap bounds the per-file growth history.
const WatchedFileHistoryCap = 60

// WatchedFile tracks one path across scans for growth alerting.
type WatchedFile struct {
	Path           string
	History        []SizeSample
	GrowthRate     float64 // bytes/s, fit from first and last sample
	AlertThreshold float64 // bytes/s
}

// Record appends a size sample, evicting the oldest beyond the cap,
// and refreshes the growth rate.
func (w *WatchedFile) Record(t time.Time, size uint64) {
	w.History = append(w.History, SizeSample{Time: t, Size: size})
	if len(w.History) > WatchedFileHistoryCap {
		w.History = w.History[len(w.History)-WatchedFileHistoryCap:]
	}
	w.GrowthRate = w.computeGrowthRate()
}

func (w *WatchedFile) computeGrowthRate() float64 {
	if len(w.History) < 2 {
		return 0
	}
	first := w.History[0]
	last := w.History[len(w.History)-1]
	dt := last.Time.Sub(first.Time).Seconds()
	if dt <= 0 {
		return 0
	}
	return (float64(last.Size) - float64(first.Size)) / dt
}

// IsAlerting reports whether the growth rate exceeds the threshold.
func (w *WatchedFile) IsAlerting() bool {
	return w.AlertThreshold > 0 && w.GrowthRate > w.AlertThreshold
}

// TimeToFull estimates how long until the file consumes the given free
// space. Defined only for a positive growth rate.
func (w *WatchedFile) TimeToFull(available uint64) (time.Duration, bool) {
	if w.GrowthRate <= 0 {
		return 0, false
	}
	secs := float64(available) / w.GrowthRate
	return time.Duration(secs * float64(time.Second)), true
}

// ActivityMetrics is the per-scan counter record fed to sparkline history.
type ActivityMetrics struct {
	Timestamp   time.Time
	HighIO      int
	HighEntropy int
	Duplicates  int
	Recent      int
	WastedBytes uint64
	AvgEntropy  float64 // mean over sampled files, already in [0,1]
}

// StatusLevel is the dataframe status cell enum.
type StatusLevel int

const (
	StatusUnknown StatusLevel = iota
	StatusOk
	StatusWarn
	StatusCrit
)

func (s StatusLevel) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusWarn:
		return "warn"
	case StatusCrit:
		return "crit"
	}
	return "?"
}

// Icon returns a single-cell glyph for the status.
func (s StatusLevel) Icon() rune {
	switch s {
	case StatusOk:
		return '●'
	case StatusWarn:
		return '▲'
	case StatusCrit:
		return '✖'
	}
	return '○'
}

// Color returns the stable palette color for the status.
func (s StatusLevel) Color() RGB {
	switch s {
	case StatusOk:
		return ColorGreen
	case StatusWarn:
		return ColorYellow
	case StatusCrit:
		return ColorRed
	}
	return ColorGray
}
