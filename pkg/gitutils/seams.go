package gitutils

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var (
	osStat      = os.Stat
	filepathAbs = filepath.Abs

	gitPlainOpen = git.PlainOpen

	repoHead = func(repo *git.Repository) (*plumbing.Reference, error) {
		return repo.Head()
	}
	worktreeStatus = func(repo *git.Repository) (git.Status, error) {
		wt, err := repo.Worktree()
		if err != nil {
			return nil, err
		}
		return wt.Status()
	}
)
