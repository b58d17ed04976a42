package launch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmcl/rmcl/internal/pkg/execx"
	"github.com/rmcl/rmcl/pkg/errkind"
	"github.com/rmcl/rmcl/pkg/layout"
	"github.com/rmcl/rmcl/pkg/manifest"
	"github.com/rmcl/rmcl/pkg/platform"
	"github.com/rmcl/rmcl/pkg/testsupp"
	"github.com/stretchr/testify/require"
)

const descriptor = `{
  "assetIndex": {"id": "17", "sha1": "a", "url": "https://example.test/17.json"},
  "downloads": {"client": {"sha1": "b", "url": "https://example.test/client.jar"}},
  "id": "1.21",
  "libraries": [
    {"downloads": {"artifact": {"path": "org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar", "sha1": "c", "url": "u"}}, "name": "org.lwjgl:lwjgl:3.3.3"},
    {"downloads": {"artifact": {"path": "org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3-natives-linux.jar", "sha1": "d", "url": "u"}}, "name": "org.lwjgl:lwjgl:3.3.3:natives-linux", "rules": [{"action": "allow", "os": {"name": "linux"}}]},
    {"downloads": {"artifact": {"path": "ca/weblite/java-objc-bridge/1.1/java-objc-bridge-1.1.jar", "sha1": "e", "url": "u"}}, "name": "ca.weblite:java-objc-bridge:1.1", "rules": [{"action": "allow", "os": {"name": "osx"}}]}
  ],
  "mainClass": "net.minecraft.client.main.Main",
  "type": "release"
}`

func install(t *testing.T) layout.Root {
	t.Helper()

	root := layout.Root(t.TempDir())
	require.NoError(t, os.MkdirAll(root.VersionDir("1.21"), os.ModePerm))
	require.NoError(t, os.WriteFile(root.DescriptorFile("1.21", "1.21"), []byte(descriptor), 0o644))
	require.NoError(t, os.WriteFile(root.ClientJar("1.21"), []byte("client"), 0o644))

	testsupp.WriteZip(t, root.Library("org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3-natives-linux.jar"),
		testsupp.ZipEntry{Name: "linux/x64/org/lwjgl/liblwjgl.so", Body: "so"})

	return root
}

func Test_ReadInstalled(t *testing.T) {
	root := install(t)

	desc, err := ReadInstalled(root, "1.21")
	require.NoError(t, err)
	require.Equal(t, "net.minecraft.client.main.Main", desc.MainClass)

	_, err = ReadInstalled(root, "1.20")
	require.ErrorIs(t, err, errkind.ErrNotFound)
	require.EqualError(t, err, "version 1.20: not found")

	require.NoError(t, os.Remove(root.ClientJar("1.21")))
	_, err = ReadInstalled(root, "1.21")
	require.ErrorIs(t, err, errkind.ErrNotFound)
}

func Test_ReadInstalledAliased(t *testing.T) {
	root := install(t)
	require.NoError(t, os.Rename(root.DescriptorFile("1.21", "1.21"), root.DescriptorFile("1.21", "latest")))

	desc, err := ReadInstalled(root, "1.21")
	require.NoError(t, err)
	require.Equal(t, "1.21", desc.ID)

	require.NoError(t, os.Remove(root.DescriptorFile("1.21", "latest")))
	_, err = ReadInstalled(root, "1.21")
	require.ErrorIs(t, err, errkind.ErrNotFound)
}

func Test_Classpath(t *testing.T) {
	root := install(t)
	desc, err := ReadInstalled(root, "1.21")
	require.NoError(t, err)

	sep := string(os.PathListSeparator)
	require.Equal(t, strings.Join([]string{
		root.Library("org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar"),
		root.Library("org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3-natives-linux.jar"),
		root.ClientJar("1.21"),
	}, sep), Classpath(desc, root, platform.Filter{OS: platform.Linux}))

	require.Equal(t, strings.Join([]string{
		root.Library("org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar"),
		root.Library("ca/weblite/java-objc-bridge/1.1/java-objc-bridge-1.1.jar"),
		root.ClientJar("1.21"),
	}, sep), Classpath(desc, root, platform.Filter{OS: platform.OSX}))
}

func Test_Arguments(t *testing.T) {
	root := layout.Root(filepath.Join("games", ".minecraft"))
	desc := &manifest.Descriptor{
		ID:         "1.21",
		MainClass:  "net.minecraft.client.main.Main",
		AssetIndex: manifest.AssetIndexRef{ID: "17"},
	}

	args := Arguments(Options{
		Root:       root,
		Descriptor: desc,
		Username:   "steve",
		Classpath:  "a.jar",
		NativesDir: "natives",
	})

	require.Equal(t, []string{
		"-Djava.library.path=natives",
		"-cp", "a.jar",
		"net.minecraft.client.main.Main",
		"--username", "steve",
		"--version", "1.21",
		"--gameDir", root.String(),
		"--assetsDir", root.AssetsDir(),
		"--assetIndex", "17",
		"--accessToken", "0",
		"--versionType", "RMCL 0.1.0",
	}, args)
}

func Test_Launch(t *testing.T) {
	root := install(t)

	var got execx.Command
	l := NewLauncher(WithJava("/opt/jdk/bin/java"), WithFilter(platform.Filter{OS: platform.Linux}))
	l.exec = func(_ context.Context, cmd execx.Command) error {
		got = cmd
		return nil
	}

	require.NoError(t, l.Launch(context.Background(), root, "1.21", "steve"))

	require.Equal(t, root.String(), got.Dir)
	require.Equal(t, "/opt/jdk/bin/java", got.Args[0])
	require.Equal(t, "-Djava.library.path="+root.NativesDir("1.21"), got.Args[1])
	require.Contains(t, got.Args, "steve")

	data, err := os.ReadFile(filepath.Join(root.NativesDir("1.21"), "liblwjgl.so"))
	require.NoError(t, err)
	require.Equal(t, "so", string(data))
}

func Test_LaunchErrors(t *testing.T) {
	root := install(t)
	boom := errors.New("boom")

	l := NewLauncher(WithFilter(platform.Filter{OS: platform.Linux}))
	l.exec = func(context.Context, execx.Command) error { return boom }

	err := l.Launch(context.Background(), root, "1.21", "steve")
	require.ErrorIs(t, err, boom)

	err = l.Launch(context.Background(), root, "1.8.9", "steve")
	require.ErrorIs(t, err, errkind.ErrNotFound)

	require.NoError(t, os.Remove(root.Library("org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3-natives-linux.jar")))
	err = l.Launch(context.Background(), root, "1.21", "steve")
	require.ErrorIs(t, err, errkind.ErrFilesystem)
}
