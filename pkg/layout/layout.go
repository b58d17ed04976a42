package layout

import "path/filepath"

/*
  <root>/
	versions/
		<id>/ - named after the descriptor id
			<id>.jar - primary archive
			<requested id>.json - raw descriptor as fetched
			natives/ - extracted native payloads
			mods/ - version specific mods
	libraries/
		<artifact path> - dependency artifacts
	assets/
		indexes/
			<asset index id>.json
	mods/ - global mods
	screenshots/
*/

const (
	VersionsDirName    = "versions"
	LibrariesDirName   = "libraries"
	AssetsDirName      = "assets"
	IndexesDirName     = "indexes"
	ModsDirName        = "mods"
	ScreenshotsDirName = "screenshots"
	NativesDirName     = "natives"

	JarExt  = ".jar"
	JSONExt = ".json"
)

// Root is an installation root directory.
type Root string

func (r Root) String() string {
	return string(r)
}

func (r Root) VersionsDir() string {
	return filepath.Join(string(r), VersionsDirName)
}

func (r Root) VersionDir(id string) string {
	return filepath.Join(r.VersionsDir(), id)
}

func (r Root) ClientJar(id string) string {
	return filepath.Join(r.VersionDir(id), id+JarExt)
}

// DescriptorFile is the path of the descriptor written for requestedID under
// the directory of descriptorID. Both ids are equal unless the catalog aliases
// a version.
func (r Root) DescriptorFile(descriptorID, requestedID string) string {
	return filepath.Join(r.VersionDir(descriptorID), requestedID+JSONExt)
}

func (r Root) NativesDir(id string) string {
	return filepath.Join(r.VersionDir(id), NativesDirName)
}

func (r Root) VersionModsDir(id string) string {
	return filepath.Join(r.VersionDir(id), ModsDirName)
}

func (r Root) LibrariesDir() string {
	return filepath.Join(string(r), LibrariesDirName)
}

// Library resolves an artifact path, which always uses forward slashes.
func (r Root) Library(artifactPath string) string {
	return filepath.Join(r.LibrariesDir(), filepath.FromSlash(artifactPath))
}

func (r Root) AssetsDir() string {
	return filepath.Join(string(r), AssetsDirName)
}

func (r Root) AssetIndex(id string) string {
	return filepath.Join(r.AssetsDir(), IndexesDirName, id+JSONExt)
}

func (r Root) ModsDir() string {
	return filepath.Join(string(r), ModsDirName)
}

func (r Root) ScreenshotsDir() string {
	return filepath.Join(string(r), ScreenshotsDirName)
}
