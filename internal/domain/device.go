package domain

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

// DeviceCategory is the device class reported in the payload.
type DeviceCategory string

const (
	DeviceDesktop DeviceCategory = "desktop"
	DeviceTablet  DeviceCategory = "tablet"
	DeviceMobile  DeviceCategory = "mobile"
	DeviceSmartTV DeviceCategory = "smart TV"
)

// ScreenResolution is a screen size in pixels.
type ScreenResolution struct {
	Width  int
	Height int
}

func (s ScreenResolution) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Software names an operating system or browser and its version.
type Software struct {
	Name    string
	Version string
}

// Device describes the user's device at the payload level.
type Device struct {
	Category         DeviceCategory
	Language         language.Tag
	ScreenResolution *ScreenResolution
	OS               Software
	Model            string
	Brand            string
	Browser          Software
}

func (d Device) IsZero() bool {
	return d.Category == "" && d.Language.IsRoot() && d.ScreenResolution == nil &&
		d.OS == Software{} && d.Model == "" && d.Brand == "" && d.Browser == Software{}
}

func (d Device) EncodeFields() Fields {
	f := Fields{}.String("category", string(d.Category))
	if !d.Language.IsRoot() {
		f = f.Set("language", d.Language.String())
	}
	if d.ScreenResolution != nil {
		f = f.Set("screen_resolution", d.ScreenResolution.String())
	}
	return f.
		String("operating_system", d.OS.Name).
		String("operating_system_version", d.OS.Version).
		String("model", d.Model).
		String("brand", d.Brand).
		String("browser", d.Browser.Name).
		String("browser_version", d.Browser.Version)
}

func (d Device) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.EncodeFields())
}
