package integrator

import (
	"strings"
	"testing"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/android"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectIntoSource_Kotlin(t *testing.T) {
	out, err := injectIntoSource(kotlinApplication, android.LanguageKotlin, "BuildConfig.UXCAM_KEY")
	require.NoError(t, err)

	// Imports land after the existing import line.
	lines := strings.Split(out, "\n")
	var existingIdx, uxcamIdx, classIdx int
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "import android.app.Application"):
			existingIdx = i
		case strings.HasPrefix(line, "import com.uxcam.UXCam"):
			uxcamIdx = i
		case strings.HasPrefix(line, "class DemoApplication"):
			classIdx = i
		}
	}
	assert.Greater(t, uxcamIdx, existingIdx)
	assert.Less(t, uxcamIdx, classIdx)

	// Statements land inside onCreate, before super.onCreate().
	initIdx := strings.Index(out, "val uxcamKey")
	superIdx := strings.Index(out, "super.onCreate()")
	onCreateIdx := strings.Index(out, "override fun onCreate")
	require.Greater(t, initIdx, onCreateIdx)
	assert.Less(t, initIdx, superIdx)
}

func TestInjectIntoSource_Java(t *testing.T) {
	out, err := injectIntoSource(javaApplication, android.LanguageJava, `"literal-key"`)
	require.NoError(t, err)

	assert.Contains(t, out, "import com.uxcam.UXCam;")
	assert.Contains(t, out, `String uxcamKey = "literal-key";`)
	assert.Contains(t, out, "UXCam.startWithConfiguration(config);")
}

func TestInjectIntoSource_NoOnCreate(t *testing.T) {
	src := "package com.example\n\nclass DemoApplication : Application()\n"
	_, err := injectIntoSource(src, android.LanguageKotlin, "K")
	assert.ErrorIs(t, err, errNoOnCreate)
}

func TestInjectIntoSource_NoImportSection(t *testing.T) {
	src := `package com.example

class DemoApplication : Application() {
    override fun onCreate() {
        super.onCreate()
    }
}
`
	out, err := injectIntoSource(src, android.LanguageKotlin, "K")
	require.NoError(t, err)

	// Imports go after the package declaration.
	pkgIdx := strings.Index(out, "package com.example")
	importIdx := strings.Index(out, "import com.uxcam.UXCam")
	classIdx := strings.Index(out, "class DemoApplication")
	require.GreaterOrEqual(t, importIdx, 0)
	assert.Greater(t, importIdx, pkgIdx)
	assert.Less(t, importIdx, classIdx)
}

func TestInjectIntoSource_PartialImportsPresent(t *testing.T) {
	src := `package com.example

import com.uxcam.UXCam

class DemoApplication : Application() {
    override fun onCreate() {
    }
}
`
	out, err := injectIntoSource(src, android.LanguageKotlin, "K")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "import com.uxcam.UXCam\n"))
	assert.Contains(t, out, "import com.uxcam.datamodel.UXConfig")
}
