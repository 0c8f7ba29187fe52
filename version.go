package modthree

// Version is the release of the library and the modthree CLI.
var Version = "0.1.0"
