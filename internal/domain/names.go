package domain

import "strings"

// ExtensionlessFiles lists well-known project files that carry no extension
var ExtensionlessFiles = []string{
	"LICENSE", "LICENCE", "README", "CHANGELOG", "CONTRIBUTING",
	"AUTHORS", "CREDITS", "INSTALL", "MANIFEST", "NOTICE",
	"Dockerfile", "Makefile", "Procfile", "Rakefile",
	"Gemfile", "Podfile", "Fastfile", "Appfile",
	"CODEOWNERS", "Vagrantfile", "Brewfile", "Jenkinsfile",
	"Containerfile", "Caddyfile", "Justfile", "Pipfile", "Taskfile",
}

var extensionlessSet = func() map[string]bool {
	set := make(map[string]bool, len(ExtensionlessFiles))
	for _, name := range ExtensionlessFiles {
		set[strings.ToUpper(name)] = true
	}
	return set
}()

// IsExtensionlessFile reports whether name is a known extensionless project file (case-insensitive)
func IsExtensionlessFile(name string) bool {
	return extensionlessSet[strings.ToUpper(name)]
}

// IsDotfile reports whether name is a dotfile such as ".env"
func IsDotfile(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".") && name != ".."
}

var reservedDeviceNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsReservedDeviceName reports whether name is a Windows device name.
// Only the part before the first dot counts, so "con.txt" is reserved too.
func IsReservedDeviceName(name string) bool {
	base, _, _ := strings.Cut(name, ".")
	return reservedDeviceNames[strings.ToUpper(strings.TrimSpace(base))]
}

// HasIllegalChars reports whether name contains characters that are not
// allowed in file names on common filesystems
func HasIllegalChars(name string) bool {
	for _, r := range name {
		if r < 0x20 {
			return true
		}
		switch r {
		case '<', '>', ':', '"', '|', '?', '*':
			return true
		}
	}
	return false
}
