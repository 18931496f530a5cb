package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaults(t *testing.T) {
	lib, err := New("jquery")
	require.NoError(t, err)

	assert.Equal(t, "jquery", lib.Name())
	assert.Equal(t, LatestVersion, lib.Version())
	assert.Equal(t, MainPath, lib.Path())
	assert.True(t, lib.IsLatest())
	assert.True(t, lib.UsesMain())
	assert.Equal(t, JavaScript, lib.ContentType())

	_, ok := lib.MinifiedPath()
	assert.False(t, ok)
}

func TestNewWithOptions(t *testing.T) {
	lib, err := New("bootstrap",
		WithVersion("^5.3"),
		WithPath("dist/css/bootstrap.css"),
		WithMinifiedPath("dist/css/bootstrap.min.css"),
		WithContentType(Stylesheet),
	)
	require.NoError(t, err)

	assert.Equal(t, "^5.3", lib.Version())
	assert.False(t, lib.IsLatest())
	assert.Equal(t, "dist/css/bootstrap.css", lib.Path())
	assert.False(t, lib.UsesMain())
	assert.Equal(t, Stylesheet, lib.ContentType())

	min, ok := lib.MinifiedPath()
	assert.True(t, ok)
	assert.Equal(t, "dist/css/bootstrap.min.css", min)
}

func TestNewEmptyOptionValuesKeepDefaults(t *testing.T) {
	lib := MustNew("jquery", WithVersion(""), WithPath(""), WithMinifiedPath(""))

	assert.True(t, lib.IsLatest())
	assert.True(t, lib.UsesMain())
	_, ok := lib.MinifiedPath()
	assert.False(t, ok)
}

func TestNewRejectsEmptyName(t *testing.T) {
	_, err := New("  ")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Panics(t, func() { MustNew("") })
}

func TestParseContentType(t *testing.T) {
	tests := []struct {
		in      string
		want    ContentType
		wantErr bool
	}{
		{"js", JavaScript, false},
		{"JavaScript", JavaScript, false},
		{"css", Stylesheet, false},
		{" stylesheet ", Stylesheet, false},
		{"html", JavaScript, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseContentType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentTypeFromPath(t *testing.T) {
	assert.Equal(t, Stylesheet, ContentTypeFromPath("dist/css/bootstrap.CSS"))
	assert.Equal(t, JavaScript, ContentTypeFromPath("dist/jquery.js"))
	assert.Equal(t, JavaScript, ContentTypeFromPath("index"))
}

func TestContentTypeStrings(t *testing.T) {
	assert.Equal(t, "js", JavaScript.String())
	assert.Equal(t, "css", Stylesheet.String())
	assert.Equal(t, "text/css", Stylesheet.MediaType())
	assert.Equal(t, "application/javascript", JavaScript.MediaType())
}

func TestString(t *testing.T) {
	assert.Equal(t, "jquery@latest", MustNew("jquery").String())
	assert.Equal(t, "jquery@3/dist/jquery.slim.js",
		MustNew("jquery", WithVersion("3"), WithPath("dist/jquery.slim.js")).String())
}
