package android

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
)

type manifestXML struct {
	XMLName     xml.Name       `xml:"manifest"`
	Application applicationXML `xml:"application"`
}

type applicationXML struct {
	Name string `xml:"http://schemas.android.com/apk/res/android name,attr"`
}

// manifestApplicationName extracts the android:name of the <application>
// element from the module's main manifest. It returns "" when the manifest
// is missing or carries no custom Application class.
func manifestApplicationName(root, module string) (string, error) {
	path := filepath.Join(root, module, "src", "main", "AndroidManifest.xml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	var m manifestXML
	if err := xml.Unmarshal(data, &m); err != nil {
		return "", err
	}
	return m.Application.Name, nil
}
