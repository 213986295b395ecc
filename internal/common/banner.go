package common

import (
	"github.com/ternarybob/banner"
)

// PrintBanner displays the application banner
func PrintBanner(name, version string) {
	banner.Print(name, version)
}
