package unitfile

// Version is the current version of the go-unitfile library
const Version = "1.0.0"
