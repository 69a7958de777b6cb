package ffiprobe

// Version/BuildDate are stamped by the release build; defaults cover
// source builds.
var (
	Version   = "0.2.0"
	BuildDate = "unknown"
)
