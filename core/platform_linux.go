//go:build linux

package core

const targetPlatform = Linux
