package config

import "errors"

// ErrMissingEnvironment indicates the base directory is not set or does not
// point at a directory. The merge core itself runs headless given a valid
// directory; only this configuration layer raises it.
var ErrMissingEnvironment = errors.New("OMERODIR not set or not a directory")
