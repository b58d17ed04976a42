package download

import (
	"context"
	"os"
	"testing"

	"github.com/acronis/go-stacktrace"
	"github.com/rmcl/rmcl/pkg/layout"
	"github.com/rmcl/rmcl/pkg/manifest"
	"github.com/rmcl/rmcl/pkg/platform"
	"github.com/stretchr/testify/require"
)

func Test_Verify(t *testing.T) {
	s := newServer(t)
	root := layout.Root(t.TempDir())
	require.NoError(t, s.pipeline().Acquire(context.Background(), s.entry("1.21"), root))

	desc, err := manifest.DecodeDescriptor([]byte(s.descriptor("1.21")))
	require.NoError(t, err)
	linux := platform.Filter{OS: platform.Linux}

	report, err := Verify(root, desc, linux)
	require.NoError(t, err)
	require.True(t, report.OK())
	require.NoError(t, report.Err())
	require.Equal(t, 2, report.Checked)
	require.NotEmpty(t, report.Fingerprint)

	again, err := Verify(root, desc, linux)
	require.NoError(t, err)
	require.Equal(t, report.Fingerprint, again.Fingerprint)

	lib := root.Library("org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar")
	require.NoError(t, os.WriteFile(lib, []byte("truncated"), 0o644))
	require.NoError(t, os.Remove(root.ClientJar("1.21")))

	report, err = Verify(root, desc, linux)
	require.NoError(t, err)
	require.False(t, report.OK())
	require.Equal(t, []Problem{
		{Kind: Missing, Name: "client 1.21", Path: root.ClientJar("1.21")},
		{Kind: Mismatch, Name: "org.lwjgl:lwjgl:3.3.3", Path: lib},
	}, report.Problems)
	require.NotEqual(t, again.Fingerprint, report.Fingerprint)

	st, ok := report.Err().(*stacktrace.StackTrace)
	require.True(t, ok)
	require.Len(t, st.List, 2)

	// verification never repairs
	_, err = os.Stat(root.ClientJar("1.21"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func Test_VerifyEmptyRoot(t *testing.T) {
	s := newServer(t)
	desc, err := manifest.DecodeDescriptor([]byte(s.descriptor("1.21")))
	require.NoError(t, err)

	report, err := Verify(layout.Root(t.TempDir()), desc, platform.Filter{OS: platform.OSX})
	require.NoError(t, err)
	require.Equal(t, 3, report.Checked)
	require.Len(t, report.Problems, 3)
	require.Empty(t, report.Fingerprint)
	require.Zero(t, s.totalHits())
}
