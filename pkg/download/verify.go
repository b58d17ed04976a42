package download

import (
	"fmt"

	"github.com/acronis/go-stacktrace"

	"github.com/rmcl/rmcl/pkg/errkind"
	"github.com/rmcl/rmcl/pkg/filesys"
	"github.com/rmcl/rmcl/pkg/layout"
	"github.com/rmcl/rmcl/pkg/manifest"
	"github.com/rmcl/rmcl/pkg/platform"
)

type ProblemKind string

const (
	Missing  ProblemKind = "missing"
	Mismatch ProblemKind = "mismatch"
)

type Problem struct {
	Kind ProblemKind
	Name string
	Path string
}

// Report is the result of Verify.
type Report struct {
	VersionID string
	Checked   int
	Problems  []Problem
	// Fingerprint is the xxh3 hash of the version directory, empty when the
	// directory does not exist.
	Fingerprint string
}

func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Err returns the problems as a stack trace collection, or nil.
func (r *Report) Err() error {
	st := stacktrace.StackTrace{}
	for _, p := range r.Problems {
		_ = st.Append(stacktrace.New(fmt.Sprintf("%s %s", p.Kind, p.Name),
			stacktrace.WithInfo("path", p.Path),
			stacktrace.WithType("integrity")))
	}
	if len(st.List) > 0 {
		return &st
	}
	return nil
}

// Verify checks the client archive and every library allowed by filter
// against the SHA1 declared in desc. Nothing on disk is modified.
func Verify(root layout.Root, desc *manifest.Descriptor, filter platform.Filter) (*Report, error) {
	report := &Report{VersionID: desc.ID}

	check := func(name, path, sha1 string) error {
		report.Checked++
		exists, err := filesys.Exists(path)
		if err != nil {
			return errkind.Filesystemf(err, "check %s", name)
		}
		if !exists {
			report.Problems = append(report.Problems, Problem{Kind: Missing, Name: name, Path: path})
			return nil
		}
		ok, err := filesys.MatchesSHA1(path, sha1)
		if err != nil {
			return errkind.Filesystemf(err, "hash %s", name)
		}
		if !ok {
			report.Problems = append(report.Problems, Problem{Kind: Mismatch, Name: name, Path: path})
		}
		return nil
	}

	if err := check("client "+desc.ID, root.ClientJar(desc.ID), desc.Downloads.Client.SHA1); err != nil {
		return nil, err
	}
	for _, lib := range filter.Libraries(desc) {
		if lib.Downloads.Artifact == nil {
			continue
		}
		if err := check(lib.Name, root.Library(lib.Downloads.Artifact.Path), lib.Downloads.Artifact.SHA1); err != nil {
			return nil, err
		}
	}

	versionDir := root.VersionDir(desc.ID)
	exists, err := filesys.Exists(versionDir)
	if err != nil {
		return nil, errkind.Filesystemf(err, "check version directory")
	}
	if exists {
		fp, err := filesys.ComputeDirectoryHash(versionDir)
		if err != nil {
			return nil, errkind.Filesystemf(err, "fingerprint %s", versionDir)
		}
		report.Fingerprint = fp
	}

	return report, nil
}
