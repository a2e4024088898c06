// Package gitutils reports the branch of the repository a directory belongs to.
package gitutils

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DirGitStatus is the repository summary shown under a directory preview.
type DirGitStatus struct {
	Root         string
	Branch       string
	FilesChanged int
}

func (s *DirGitStatus) String() string {
	if s == nil {
		return ""
	}
	if s.FilesChanged == 0 {
		return fmt.Sprintf("[gray]rama %s, sin cambios[-]", s.Branch)
	}
	return fmt.Sprintf("[gray]rama %s, [yellow]%d cambios[-]", s.Branch, s.FilesChanged)
}

// GetGitStatus returns nil when dir is not inside a readable repository.
// countChanges walks the worktree, which is slow on large repositories.
func GetGitStatus(dir string, countChanges bool) *DirGitStatus {
	root := RepositoryRoot(dir)
	if root == "" {
		return nil
	}
	repo, err := gitPlainOpen(root)
	if err != nil {
		return nil
	}

	res := &DirGitStatus{Root: root}
	head, err := repoHead(repo)
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// Fresh repository without commits.
		res.Branch = "master"
	case err != nil:
		return nil
	case head.Name().IsBranch():
		res.Branch = head.Name().Short()
	default:
		res.Branch = head.Hash().String()[:7]
	}

	if !countChanges {
		return res
	}
	status, err := worktreeStatus(repo)
	if err != nil {
		return res
	}
	for _, fileStatus := range status {
		if fileStatus.Worktree != git.Unmodified || fileStatus.Staging != git.Unmodified {
			res.FilesChanged++
		}
	}
	return res
}
