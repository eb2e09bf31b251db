package uricodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathToFileURI(t *testing.T) {
	assert.Equal(t, "file:///tmp/x.cpp", PathToFileURI("/tmp/x.cpp"))
	assert.Equal(t, "file:///a%20b", PathToFileURI("/a b"))
	assert.Equal(t, "file:///weird%2521", PathToFileURI("/weird%21"))
}

func TestFileURIToPath(t *testing.T) {
	assert.Equal(t, "/tmp/x.cpp", FileURIToPath("file:///tmp/x.cpp"))
	assert.Equal(t, "/a b", FileURIToPath("file:///a%20b"))
	assert.Equal(t, "not-a-uri", FileURIToPath("not-a-uri"))
}

func TestFileURIToPath_MalformedTripletCopiedLiterally(t *testing.T) {
	assert.Equal(t, "/a%2", FileURIToPath("file:///a%2"))
	assert.Equal(t, "/a%zz", FileURIToPath("file:///a%zz"))
}

func TestRoundTrip(t *testing.T) {
	paths := []string{
		"/",
		"/tmp/x.cpp",
		"/a b/c",
		"/weird!@#$%^&*()chars",
		"/unicode/日本語.h",
	}
	for _, p := range paths {
		assert.Equal(t, p, FileURIToPath(PathToFileURI(p)), "round trip for %q", p)
	}
}
