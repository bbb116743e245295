package domain

import "strings"

// Platform identifies a build platform of the editor.
type Platform string

// Supported platforms.
const (
	PlatformWindows Platform = "windows"
	PlatformOSX     Platform = "osx"
	PlatformLinux   Platform = "linux"
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWebGL   Platform = "webgl"
	PlatformUWP     Platform = "uwp"
	PlatformLumin   Platform = "lumin"
)

// DefaultPlatform is used when a project declares no targets at all.
const DefaultPlatform = PlatformWindows

var platformAliases = map[string]Platform{
	"w":       PlatformWindows,
	"win":     PlatformWindows,
	"windows": PlatformWindows,
	"o":       PlatformOSX,
	"osx":     PlatformOSX,
	"l":       PlatformLinux,
	"lin":     PlatformLinux,
	"linux":   PlatformLinux,
	"a":       PlatformAndroid,
	"and":     PlatformAndroid,
	"android": PlatformAndroid,
	"i":       PlatformIOS,
	"ios":     PlatformIOS,
	"g":       PlatformWebGL,
	"webgl":   PlatformWebGL,
	"uwp":     PlatformUWP,
	"lumin":   PlatformLumin,
}

// AllPlatforms returns every supported platform in a stable order.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformWindows, PlatformOSX, PlatformLinux, PlatformAndroid,
		PlatformIOS, PlatformWebGL, PlatformUWP, PlatformLumin,
	}
}

// ParsePlatform converts a platform name or short alias into a Platform.
func ParsePlatform(value string) (Platform, error) {
	p, ok := platformAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return "", Annotate(ErrUnknownPlatform, "platform", value)
	}
	return p, nil
}

// String returns the canonical platform name.
func (p Platform) String() string {
	return string(p)
}
