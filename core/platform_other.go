//go:build !windows && !darwin && !linux

package core

// Everything else behaves like Linux for validation purposes.
const targetPlatform = Linux
