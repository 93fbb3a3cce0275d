package pipeline

import (
	"os"
	"path/filepath"

	"github.com/vidnote/audiofetch/internal/model"
	"github.com/vidnote/audiofetch/internal/session"
)

// collect lists the session directory non-recursively and assembles the
// success manifest. Entries are trusted as-is; stray files from a failed
// post-processing step are reported like any other asset. Only the
// store's own lock file is skipped.
func collect(sessionPath, title string) (model.PipelineResult, error) {
	entries, err := os.ReadDir(sessionPath)
	if err != nil {
		return model.PipelineResult{}, model.NewError(model.ErrStorage,
			"list session directory %s: %v", sessionPath, err)
	}

	assets := make([]model.MediaAsset, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == session.LockFileName {
			continue
		}
		asset := model.MediaAsset{Path: filepath.Join(sessionPath, entry.Name())}
		if info, err := entry.Info(); err == nil {
			asset.SizeBytes = info.Size()
		}
		assets = append(assets, asset)
	}

	return model.Ok(assets, sessionPath, title), nil
}
