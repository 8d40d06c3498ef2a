package catalog

import (
	"os"

	"gigawatt.io/errorlib"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrDirectorySwap marks any failure during the rename dance that commits a
// rewritten catalog directory.
var ErrDirectorySwap = errors.New("directory swap failed")

// ReplaceDir commits tmpdir as the new contents of target: the existing
// target is moved aside, tmpdir is renamed into place, and the old tree is
// removed.  There is a brief window where target does not exist; this tool is
// a single-writer batch process, so no reader is expected to observe it.
//
// If the second rename fails, the old directory is restored to target before
// the error is surfaced, so a failed swap never loses the existing catalog.
func ReplaceDir(target string, tmpdir string) error {
	olddir := target + ".old"

	// Clear any leftover move-aside from an interrupted previous run.
	if err := os.RemoveAll(olddir); err != nil {
		return errors.Wrapf(err, "clearing stale %v", olddir)
	}

	movedAside := false
	if _, err := os.Stat(target); err == nil {
		if err := os.Rename(target, olddir); err != nil {
			return errors.Wrapf(ErrDirectorySwap, "moving %v aside: %s", target, err)
		}
		movedAside = true
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "inspecting %v", target)
	}

	if renameErr := os.Rename(tmpdir, target); renameErr != nil {
		err := errors.Wrapf(ErrDirectorySwap, "moving %v into place: %s", tmpdir, renameErr)
		if movedAside {
			if restoreErr := os.Rename(olddir, target); restoreErr != nil {
				return errorlib.Merge([]error{
					err,
					errors.Wrapf(restoreErr, "restoring %v", target),
				})
			}
			log.WithField("dir", target).Warn("Swap failed, previous catalog directory restored")
		}
		return err
	}

	if movedAside {
		if err := os.RemoveAll(olddir); err != nil {
			return errors.Wrapf(err, "removing %v", olddir)
		}
	}
	return nil
}
