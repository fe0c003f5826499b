package trailhead

// Version is the library release identifier. Overridable at build time
// via -ldflags "-X github.com/fieldset/trailhead.Version=...".
var Version = "0.1.0"
