//go:build !gldebug

package core

const buildMode = Release
