package version

// BuildVersion contains the build version number. Set at build time
var BuildVersion = "change-me"
